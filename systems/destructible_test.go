package systems

import (
	"sync"
	"testing"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// piecesOf returns the leaf pieces that belong to root, attached or not.
func piecesOf(w donburi.World, root *donburi.Entry) []*donburi.Entry {
	var out []*donburi.Entry
	components.Part.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Visual) && components.Part.Get(e).Root == root.Entity() {
			out = append(out, e)
		}
	})
	return out
}

func containerOf(w donburi.World, root *donburi.Entry) *donburi.Entry {
	return w.Entry(components.Destructible.Get(root).Parts[0])
}

var crateBox = gamemath.AABB{Min: mgl64.Vec3{-0.75, 0, 2.5}, Max: mgl64.Vec3{0.75, 1, 3.5}}

func TestTriggerDestruction(t *testing.T) {
	tw := newTestWorld(t)
	root := tw.crate(crateBox, "shelf", 3, 1, false)
	container := containerOf(tw.w, root)

	var started []components.DecompositionStarted
	components.DecompositionStartedEvent.Subscribe(tw.w, func(w donburi.World, e components.DecompositionStarted) {
		started = append(started, e)
	})

	source := mgl64.Vec3{0, 0.5, 1}
	if !TriggerDestruction(tw.w, root, mgl64.Vec3{0, 0.5, 2.5}, source) {
		t.Fatal("first trigger refused")
	}
	if TriggerDestruction(tw.w, root, mgl64.Vec3{0, 0.5, 2.5}, source) {
		t.Error("second trigger accepted")
	}

	c := cfg.Destructible
	if !container.HasComponent(components.AutoDestroy) {
		t.Fatal("container not scheduled for removal")
	}
	if r := components.AutoDestroy.Get(container).Remaining; !approx(r, c.FadeDelay+c.FadeDuration+c.ContainerGrace, 1e-9) {
		t.Errorf("container removal in %v", r)
	}
	if r := components.AutoDestroy.Get(root).Remaining; !approx(r, c.RootRemoveDelay, 1e-9) {
		t.Errorf("root removal in %v", r)
	}
	tw.idle(nil, 1)

	if len(started) != 1 || started[0].Pieces != 3 || started[0].ForceSource != source {
		t.Fatalf("decomposition events = %+v", started)
	}
	if s := components.Destructible.Get(root).State; s != components.Decomposing {
		t.Errorf("root state = %v", s)
	}
	if components.Collider.Get(root).Enabled {
		t.Error("root collider still enabled")
	}
	if n := len(components.Part.Get(container).Children); n != 0 {
		t.Errorf("container still holds %d pieces", n)
	}

	pieces := piecesOf(tw.w, root)
	if len(pieces) != 3 {
		t.Fatalf("pieces = %d, want 3", len(pieces))
	}
	for _, p := range pieces {
		pd := components.Part.Get(p)
		if !pd.Detached || pd.Parent != donburi.Null {
			t.Errorf("piece not detached: %+v", pd)
		}
		if !p.HasComponent(tags.Debris) || !p.HasComponent(components.RigidBody) {
			t.Error("piece has no rigid body")
		}
		col := components.Collider.Get(p)
		if !col.Enabled || col.Trigger || col.Layer != cfg.LayerDebris {
			t.Errorf("piece collider = %+v", col)
		}
	}
}

func TestTriggerDestructionIgnoresOthers(t *testing.T) {
	tw := newTestWorld(t)
	wall := tw.solid(gamemath.AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}})
	if TriggerDestruction(tw.w, wall, mgl64.Vec3{}, mgl64.Vec3{}) {
		t.Error("broke a plain solid")
	}
	if TriggerDestruction(tw.w, nil, mgl64.Vec3{}, mgl64.Vec3{}) {
		t.Error("broke nothing")
	}
}

func TestPiecesScatterFromSource(t *testing.T) {
	tw := newTestWorld(t)
	root := tw.crate(crateBox, "caja", 3, 1, false)
	source := mgl64.Vec3{0, 0.5, 1}

	TriggerDestruction(tw.w, root, mgl64.Vec3{0, 0.5, 2.5}, source)

	for _, p := range piecesOf(tw.w, root) {
		v := components.RigidBody.Get(p).Velocity
		out := gamemath.Flatten(components.Transform.Get(p).Position.Sub(source))
		if gamemath.Flatten(v).Dot(out) <= 0 {
			t.Errorf("piece thrown %v, toward the source", v)
		}
		if v.Y() <= 0 {
			t.Errorf("piece thrown %v, not upward", v)
		}
	}
}

func TestPiecesGetColliders(t *testing.T) {
	tests := []struct {
		name   string
		mesh   bool
		shape  components.ColliderShape
		convex bool
	}{
		{name: "plain", mesh: false, shape: components.ShapeBox},
		{name: "mesh", mesh: true, shape: components.ShapeMesh, convex: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)
			tw := newTestWorld(t)
			root := tw.crate(crateBox, "caja", 2, 1, tt.mesh)

			TriggerDestruction(tw.w, root, crateBox.Center(), mgl64.Vec3{0, 0.5, 1})

			for _, p := range piecesOf(tw.w, root) {
				col := components.Collider.Get(p)
				if col.Shape != tt.shape || col.Convex != tt.convex {
					t.Errorf("collider shape %v convex %v, want %v %v", col.Shape, col.Convex, tt.shape, tt.convex)
				}
			}
			if n := logs.FilterMessage("added collider to piece").Len(); n != 2 {
				t.Errorf("collider warnings = %d, want 2", n)
			}
		})
	}
}

func TestKeptContainerGoesWithRoot(t *testing.T) {
	tw := newTestWorld(t)
	root := tw.crate(crateBox, "Caja_01", 2, 1, false)
	container := containerOf(tw.w, root)
	pieces := piecesOf(tw.w, root)

	TriggerDestruction(tw.w, root, crateBox.Center(), mgl64.Vec3{0, 0.5, 1})
	tw.idle(nil, int(cfg.Destructible.RootRemoveDelay/tick)+2)

	if root.Valid() {
		t.Error("root not removed")
	}
	if container.Valid() {
		t.Error("kept container outlived the root")
	}
	for _, p := range pieces {
		if !p.Valid() {
			t.Error("piece removed with the root")
		}
	}
}

func TestContainerOutlivesPieces(t *testing.T) {
	tw := newTestWorld(t)
	root := tw.crate(crateBox, "shelf", 2, 1, false)
	container := containerOf(tw.w, root)
	pieces := piecesOf(tw.w, root)

	TriggerDestruction(tw.w, root, crateBox.Center(), mgl64.Vec3{0, 0.5, 1})

	c := cfg.Destructible
	tw.idle(nil, int((c.FadeDelay+c.FadeDuration)/tick)+5)
	if root.Valid() {
		t.Error("root not removed")
	}
	if !container.Valid() {
		t.Fatal("container removed before its grace period")
	}
	for _, p := range pieces {
		if p.Valid() {
			t.Error("piece not removed after fading")
		}
	}

	tw.idle(nil, int(c.ContainerGrace/tick)+10)
	if container.Valid() {
		t.Error("container not removed")
	}
}

func TestPiecesFadeOut(t *testing.T) {
	tw := newTestWorld(t)
	root := tw.crate(crateBox, "caja", 2, 1, false)
	pieces := piecesOf(tw.w, root)
	TriggerDestruction(tw.w, root, crateBox.Center(), mgl64.Vec3{0, 0.5, 1})

	c := cfg.Destructible
	tw.idle(nil, int(c.FadeDelay/tick)-5)
	for _, p := range pieces {
		if a := components.Visual.Get(p).Alpha; a != 1 {
			t.Errorf("alpha %v before the fade delay", a)
		}
	}

	tw.idle(nil, int(c.FadeDuration/2/tick)+5)
	for _, p := range pieces {
		if a := components.Visual.Get(p).Alpha; a <= 0.3 || a >= 0.7 {
			t.Errorf("alpha %v halfway through the fade", a)
		}
	}
}

func TestCheckAreaDamage(t *testing.T) {
	tw := newTestWorld(t)
	near := tw.crate(gamemath.AABB{Min: mgl64.Vec3{1, 0, -0.5}, Max: mgl64.Vec3{2, 1, 0.5}}, "caja", 1, 1, false)
	far := tw.crate(gamemath.AABB{Min: mgl64.Vec3{4, 0, -0.5}, Max: mgl64.Vec3{5, 1, 0.5}}, "caja", 1, 1, false)
	other := tw.crate(gamemath.AABB{Min: mgl64.Vec3{-2, 0, -0.5}, Max: mgl64.Vec3{-1, 1, 0.5}}, "caja", 1, 1, false)
	components.Collider.Get(other).Layer = cfg.LayerDefault

	mask := uint32(1 << cfg.LayerDestructible)
	broken := CheckAreaDamage(tw.w, mgl64.Vec3{0, 0.5, 0}, 1.5, mask, mgl64.Vec3{0, 0.5, 0})

	if len(broken) != 1 || broken[0] != near.Entity() {
		t.Fatalf("broke %v, want only %v", broken, near.Entity())
	}
	if components.Destructible.Get(far).State != components.Intact {
		t.Error("broke a destructible out of range")
	}
	if components.Destructible.Get(other).State != components.Intact {
		t.Error("broke a destructible on an unselected layer")
	}

	// Already decomposing objects are skipped.
	if again := CheckAreaDamage(tw.w, mgl64.Vec3{0, 0.5, 0}, 1.5, mask, mgl64.Vec3{}); len(again) != 0 {
		t.Errorf("broke %v twice", again)
	}

	both := CheckAreaDamage(tw.w, mgl64.Vec3{0, 0.5, 0}, 5, mask|1<<cfg.LayerDefault, mgl64.Vec3{})
	if len(both) != 2 {
		t.Errorf("wide check broke %v, want far and other", both)
	}
}

func TestCheckAreaDamageReachesNextCell(t *testing.T) {
	tw := newTestWorld(t)
	// The crate starts just past the cell edge at x = 1; the damage box reaches
	// only a fraction of a grid unit into that cell.
	crate := tw.crate(gamemath.AABB{Min: mgl64.Vec3{1.01, 0, -0.5}, Max: mgl64.Vec3{2, 1, 0.5}}, "caja", 1, 1, false)

	mask := uint32(1 << cfg.LayerDestructible)
	broken := CheckAreaDamage(tw.w, mgl64.Vec3{0, 0.5, 0}, 1.03125, mask, mgl64.Vec3{})

	if len(broken) != 1 || broken[0] != crate.Entity() {
		t.Fatalf("broke %v, want %v", broken, crate.Entity())
	}
	if s := components.Destructible.Get(crate).State; s != components.Decomposing {
		t.Errorf("crate state = %v, want decomposing", s)
	}
}

func TestCheckAreaDamageZeroMask(t *testing.T) {
	zeroMaskWarning = sync.Once{}
	logs := observeLogs(t)
	tw := newTestWorld(t)
	crate := tw.crate(crateBox, "caja", 1, 1, false)

	for i := 0; i < 3; i++ {
		if broken := CheckAreaDamage(tw.w, crateBox.Center(), 5, 0, mgl64.Vec3{}); broken != nil {
			t.Errorf("zero mask broke %v", broken)
		}
	}
	if components.Destructible.Get(crate).State != components.Intact {
		t.Error("zero mask broke the crate")
	}
	if n := logs.FilterMessage("area damage mask selects no layers").Len(); n != 1 {
		t.Errorf("mask warnings = %d, want 1", n)
	}
}
