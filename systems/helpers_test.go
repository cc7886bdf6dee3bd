package systems

import (
	"testing"

	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/logging"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const tick = 1.0 / 60

// testWorld is a world running the fixed-tick simulation without rendering or
// device input. Tests write player input samples directly.
type testWorld struct {
	t   *testing.T
	ecs *ecs.ECS
	w   donburi.World
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	space := archetypes.Space.Spawn(e)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(64*16, 64*16, 16, 16),
		OriginX: -32,
		OriginZ: -32,
		Scale:   16,
	})
	for _, s := range Simulation() {
		e.AddSystem(s)
	}
	return &testWorld{t: t, ecs: e, w: e.World}
}

// step runs one tick with the given input held. Actions held on consecutive
// steps do not retrigger.
func (tw *testWorld) step(player *donburi.Entry, moveX, moveY float64, held ...cfg.ActionID) {
	if player != nil {
		in := components.PlayerInput.Get(player)
		in.Latch()
		in.MoveX, in.MoveY = moveX, moveY
		for _, a := range held {
			in.Current[a] = true
		}
	}
	tw.ecs.Update()
}

// idle runs n ticks with no input.
func (tw *testWorld) idle(player *donburi.Entry, n int) {
	for i := 0; i < n; i++ {
		tw.step(player, 0, 0)
	}
}

func (tw *testWorld) solid(b gamemath.AABB) *donburi.Entry {
	e := archetypes.Solid.Spawn(tw.ecs)
	components.Collider.SetValue(e, components.ColliderData{
		Bounds: b, Shape: components.ShapeBox, Enabled: true, Layer: cfg.LayerDefault,
	})
	AddObject(tw.w, e, b, tags.ResolvSolid)
	return e
}

// ground lays a wide floor with its top at y = 0.
func (tw *testWorld) ground() *donburi.Entry {
	return tw.solid(gamemath.AABB{Min: mgl64.Vec3{-20, -1, -20}, Max: mgl64.Vec3{20, 0, 20}})
}

// deadZone and hazard spawn trigger volumes covering b.
func (tw *testWorld) deadZone(b gamemath.AABB) *donburi.Entry {
	return tw.trigger(archetypes.DeadZone.Spawn(tw.ecs), b, tags.ResolvDeadZone)
}

func (tw *testWorld) hazard(b gamemath.AABB) *donburi.Entry {
	return tw.trigger(archetypes.Hazard.Spawn(tw.ecs), b, tags.ResolvHazard)
}

func (tw *testWorld) trigger(e *donburi.Entry, b gamemath.AABB, resolvTag string) *donburi.Entry {
	components.Collider.SetValue(e, components.ColliderData{
		Bounds: b, Shape: components.ShapeBox, Trigger: true, Enabled: true, Layer: cfg.LayerTrigger,
	})
	AddObject(tw.w, e, b, resolvTag)
	return e
}

func (tw *testWorld) player(pos mgl64.Vec3) *donburi.Entry {
	bag := components.NewItemBag()
	return tw.playerWithStore(pos, bag, bag)
}

func (tw *testWorld) playerWithStore(pos mgl64.Vec3, bag *components.ItemBag, store components.ItemStore) *donburi.Entry {
	p := archetypes.Player.Spawn(tw.ecs)
	tr := components.NewTransform(pos)
	components.Transform.SetValue(p, tr)
	components.Body.SetValue(p, components.BodyData{
		Radius:     cfg.Player.Radius,
		Height:     cfg.Player.Height,
		StepOffset: cfg.Player.StepOffset,
	})
	AddObject(tw.w, p, components.Body.Get(p).Bounds(&tr), tags.ResolvPlayer)
	components.Locomotion.SetValue(p, components.NewLocomotion(components.MovementSpeeds{
		Walk:   cfg.Player.WalkSpeed,
		Sprint: cfg.Player.SprintSpeed,
		Jump:   cfg.Player.JumpHeight,
	}))
	components.Climb.SetValue(p, components.ClimbData{Vine: donburi.Null})
	components.TriggerState.SetValue(p, components.NewTriggerState())
	components.Lives.SetValue(p, components.LivesData{
		Lives: cfg.Player.StartingLives, MaxLives: cfg.Player.StartingLives, Spawn: pos,
	})
	components.Inventory.SetValue(p, components.InventoryData{Special: bag})
	components.ScalePowerUp.SetValue(p, components.ScalePowerUpData{Store: store})
	return p
}

// settledPlayer spawns a player on fresh ground and lets it land.
func (tw *testWorld) settledPlayer(pos mgl64.Vec3) *donburi.Entry {
	tw.ground()
	p := tw.player(pos)
	tw.idle(p, 3)
	if m := components.Locomotion.Get(p).Mode; m != components.ModeGrounded {
		tw.t.Fatalf("player did not settle: mode %v", m)
	}
	return p
}

func (tw *testWorld) vine(base mgl64.Vec3, height, radius float64, shape components.ColliderShape) *donburi.Entry {
	v := archetypes.Vine.Spawn(tw.ecs)
	components.Transform.SetValue(v, components.NewTransform(base))
	components.Climbable.SetValue(v, components.ClimbableData{Bottom: base.Y(), Top: base.Y() + height})
	b := gamemath.AABB{
		Min: base.Sub(mgl64.Vec3{radius, 0, radius}),
		Max: base.Add(mgl64.Vec3{radius, height, radius}),
	}
	components.Collider.SetValue(v, components.ColliderData{
		Bounds: b, Shape: shape, Radius: radius, Trigger: true, Enabled: true, Layer: cfg.LayerTrigger,
	})
	AddObject(tw.w, v, b, tags.ResolvClimbable)
	return v
}

// crate spawns a destructible filling b: a root, one container named
// container, and a cols x rows grid of leaf pieces one layer deep.
func (tw *testWorld) crate(b gamemath.AABB, container string, cols, rows int, mesh bool) *donburi.Entry {
	root := archetypes.Destructible.Spawn(tw.ecs)
	components.Transform.SetValue(root, components.NewTransform(b.Center()))
	components.Collider.SetValue(root, components.ColliderData{
		Bounds: b, Shape: components.ShapeBox, Enabled: true, Layer: cfg.LayerDestructible,
	})
	AddObject(tw.w, root, b, tags.ResolvDestructible)

	box := archetypes.Part.Spawn(tw.ecs)
	components.Transform.SetValue(box, components.NewTransform(b.Center()))
	cd := components.PartData{Name: container, Root: root.Entity(), Parent: root.Entity()}

	size := b.Max.Sub(b.Min)
	half := mgl64.Vec3{size.X() / float64(cols) / 2, size.Y() / float64(rows) / 2, size.Z() / 2}
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			centre := b.Min.Add(mgl64.Vec3{
				(2*float64(i) + 1) * half.X(),
				(2*float64(j) + 1) * half.Y(),
				half.Z(),
			})
			piece := archetypes.Part.Spawn(tw.ecs, components.Visual)
			components.Transform.SetValue(piece, components.NewTransform(centre))
			components.Part.SetValue(piece, components.PartData{
				Name: "piece", Root: root.Entity(), Parent: box.Entity(),
			})
			components.Visual.SetValue(piece, components.VisualData{
				Alpha: 1, HalfExtents: half, HasMesh: mesh, HasMaterial: true,
			})
			cd.Children = append(cd.Children, piece.Entity())
		}
	}
	components.Part.SetValue(box, cd)
	components.Destructible.SetValue(root, components.DestructibleData{Parts: []donburi.Entity{box.Entity()}})
	return root
}

// observeLogs captures everything logged until the test ends.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.Set(zap.New(core))
	t.Cleanup(func() { logging.Set(zap.NewNop()) })
	return logs
}

func approx(a, b, eps float64) bool {
	d := a - b
	return d <= eps && d >= -eps
}

// vecApprox compares per component with an absolute tolerance.
func vecApprox(a, b mgl64.Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if !approx(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func horizontalDistance(a, b mgl64.Vec3) float64 {
	return gamemath.Flatten(a.Sub(b)).Len()
}
