package systems

import (
	"testing"

	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func (tw *testWorld) collectible(base mgl64.Vec3, kind components.CollectibleKind, item string) *donburi.Entry {
	e := archetypes.Collectible.Spawn(tw.ecs)
	components.Transform.SetValue(e, components.NewTransform(base))
	components.Collectible.SetValue(e, components.CollectibleData{Kind: kind, Item: item, Base: base})
	b := gamemath.BoxFromCenter(base, mgl64.Vec3{0.25, 0.25, 0.25})
	components.Collider.SetValue(e, components.ColliderData{
		Bounds: b, Shape: components.ShapeBox, Trigger: true, Enabled: true, Layer: cfg.LayerTrigger,
	})
	AddObject(tw.w, e, b, tags.ResolvItem)
	return e
}

// teleport moves a body without sweeping it.
func teleport(p *donburi.Entry, pos mgl64.Vec3) {
	components.Transform.Get(p).Position = pos
}

func zoneAround(p mgl64.Vec3) gamemath.AABB {
	return gamemath.AABB{Min: p.Sub(mgl64.Vec3{1, 1, 1}), Max: p.Add(mgl64.Vec3{1, 2, 1})}
}

func TestDeadZoneRespawns(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	away := mgl64.Vec3{10, 0, 0}
	tw.deadZone(zoneAround(away))

	var lost []components.LifeLost
	components.LifeLostEvent.Subscribe(tw.w, func(w donburi.World, e components.LifeLost) {
		lost = append(lost, e)
	})

	teleport(p, away)
	tw.idle(p, 1)

	if n := components.Lives.Get(p).Lives; n != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want %d", n, cfg.Player.StartingLives-1)
	}
	if pos := components.Transform.Get(p).Position; pos != (mgl64.Vec3{0, 0, 0}) {
		t.Errorf("respawned at %v", pos)
	}
	if len(lost) != 1 || lost[0].Remaining != cfg.Player.StartingLives-1 {
		t.Errorf("life lost events = %+v", lost)
	}

	tw.idle(p, 5)
	if m := components.Locomotion.Get(p).Mode; m != components.ModeGrounded {
		t.Errorf("mode after respawn = %v, want grounded", m)
	}
}

func TestHazardSparesInvulnerable(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	tw.hazard(zoneAround(mgl64.Vec3{0, 0, 0}))

	components.Overlay.Get(p).Invulnerable = true
	tw.idle(p, 3)
	if n := components.Lives.Get(p).Lives; n != cfg.Player.StartingLives {
		t.Fatalf("invulnerable body lost a life, %d left", n)
	}

	// Losing invulnerability inside the hazard does not count as entering it.
	components.Overlay.Get(p).Invulnerable = false
	tw.idle(p, 3)
	if n := components.Lives.Get(p).Lives; n != cfg.Player.StartingLives {
		t.Errorf("lives = %d, want %d", n, cfg.Player.StartingLives)
	}
}

func TestHazardCostsLife(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	spot := mgl64.Vec3{-10, 0, 0}
	tw.hazard(zoneAround(spot))

	teleport(p, spot)
	tw.idle(p, 1)
	if n := components.Lives.Get(p).Lives; n != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want %d", n, cfg.Player.StartingLives-1)
	}
}

func TestLastLifeEndsRun(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	spot := mgl64.Vec3{10, 0, 0}
	tw.deadZone(zoneAround(spot))
	components.Lives.Get(p).Lives = 1

	teleport(p, spot)
	tw.idle(p, 1)

	if o := GetGameState(tw.w).Outcome; o != components.OutcomeLost {
		t.Errorf("outcome = %v, want lost", o)
	}
	if s := GetClock(tw.w).Scale; s != 0 {
		t.Errorf("time scale = %v, want frozen", s)
	}
	if n := components.Lives.Get(p).Lives; n != 0 {
		t.Errorf("lives = %d", n)
	}

	// Frozen: nothing moves and no more lives are taken.
	tw.step(p, 0, 1)
	if pos := components.Transform.Get(p).Position; pos != spot {
		t.Errorf("body moved to %v after the run ended", pos)
	}
}

func TestCollectNormal(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	carrot := tw.collectible(mgl64.Vec3{0, 1, 1}, components.CollectibleNormal, "")
	components.Inventory.Get(p).NormalTotal = 2

	var got []components.ItemCollected
	components.ItemCollectedEvent.Subscribe(tw.w, func(w donburi.World, e components.ItemCollected) {
		got = append(got, e)
	})

	for i := 0; i < 20 && carrot.Valid(); i++ {
		tw.step(p, 0, 1)
	}

	if carrot.Valid() {
		t.Fatal("carrot not picked up")
	}
	inv := components.Inventory.Get(p)
	if inv.NormalCollected != 1 || inv.AllNormalCollected() {
		t.Errorf("inventory = %d/%d", inv.NormalCollected, inv.NormalTotal)
	}
	if len(got) != 1 || got[0].Kind != components.CollectibleNormal {
		t.Errorf("collected events = %+v", got)
	}
}

func TestCollectSpecialArmsPowerUp(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	tw.collectible(mgl64.Vec3{0, 1, 0}, components.CollectibleSpecial, cfg.ScalePowerUp.Item)

	tw.idle(p, 2)

	inv := components.Inventory.Get(p)
	if inv.Special.Count(cfg.ScalePowerUp.Item) != 1 {
		t.Errorf("bag holds %d", inv.Special.Count(cfg.ScalePowerUp.Item))
	}
	if s := components.ScalePowerUp.Get(p).State; s != components.PowerUpArmed {
		t.Errorf("power-up state = %v, want armed", s)
	}
	if GetGameState(tw.w).Ended() {
		t.Error("run ended on a power-up pickup")
	}
}

func TestCollectWinItem(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	tw.collectible(mgl64.Vec3{0, 1, 0}, components.CollectibleSpecial, cfg.Collectible.WinItem)

	tw.idle(p, 1)

	if o := GetGameState(tw.w).Outcome; o != components.OutcomeWon {
		t.Errorf("outcome = %v, want won", o)
	}
	if s := GetClock(tw.w).Scale; s != 0 {
		t.Errorf("time scale = %v, want frozen", s)
	}
}

func TestBoost(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	loco := components.Locomotion.Get(p)
	inv := components.Inventory.Get(p)
	base := loco.Speeds()

	inv.NormalTotal = 2
	inv.NormalCollected = 1
	tw.step(p, 0, 0, cfg.ActionBoost)
	if components.Boost.Get(p).Active {
		t.Fatal("boost granted before every carrot was in")
	}

	inv.NormalCollected = 2
	tw.idle(p, 1)
	tw.step(p, 0, 0, cfg.ActionBoost)

	b := components.Boost.Get(p)
	if !b.Active {
		t.Fatal("boost not granted")
	}
	m := cfg.Boost.Multiplier
	want := components.MovementSpeeds{Walk: base.Walk * m, Sprint: base.Sprint * m, Jump: base.Jump * m}
	if got := loco.Speeds(); got != want {
		t.Errorf("boosted speeds = %+v, want %+v", got, want)
	}
	if inv.NormalCollected != 0 {
		t.Errorf("collected count = %d, want reset", inv.NormalCollected)
	}

	tw.idle(p, int(cfg.Boost.Duration/tick)+2)
	if b.Active {
		t.Error("boost still active")
	}
	if got := loco.Speeds(); got != base {
		t.Errorf("speeds after boost = %+v, want %+v", got, base)
	}
	if loco.SpeedOwner() != components.SpeedOwnerNone {
		t.Errorf("speed owner = %v", loco.SpeedOwner())
	}
}

func TestBoostWaitsForSpeedLease(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	inv := components.Inventory.Get(p)
	inv.NormalTotal, inv.NormalCollected = 1, 1
	components.Locomotion.Get(p).LeaseSpeeds(components.SpeedOwnerScale)

	tw.step(p, 0, 0, cfg.ActionBoost)
	if components.Boost.Get(p).Active {
		t.Error("boost granted while the speeds were leased")
	}
	if inv.NormalCollected != 1 {
		t.Error("collected count spent on a refused boost")
	}
}

func TestPlatformCarriesRider(t *testing.T) {
	tw := newTestWorld(t)

	pl := archetypes.Platform.Spawn(tw.ecs)
	centre := mgl64.Vec3{0, -0.5, 0}
	box := gamemath.BoxFromCenter(centre, mgl64.Vec3{2, 0.5, 2})
	components.Transform.SetValue(pl, components.NewTransform(centre))
	components.Collider.SetValue(pl, components.ColliderData{
		Bounds: box, Shape: components.ShapeBox, Enabled: true, Layer: cfg.LayerDefault,
	})
	components.MovingPlatform.SetValue(pl, components.MovingPlatformData{
		Axis:     gamemath.Right,
		Base:     centre,
		Sequence: gween.NewSequence(gween.New(0, 4, 2, ease.Linear)),
	})
	AddObject(tw.w, pl, box, tags.ResolvPlatform)

	p := tw.player(mgl64.Vec3{0, 0, 0})
	tw.idle(p, 3)
	if g := components.Body.Get(p).Ground; g != pl.Entity() {
		t.Fatalf("standing on %v, want the platform", g)
	}

	if v := components.MovingPlatform.Get(pl).Velocity; !vecApprox(v, mgl64.Vec3{2, 0, 0}, 1e-4) {
		t.Errorf("platform velocity = %v, want 2 m/s along x", v)
	}

	platformStart := components.Transform.Get(pl).Position
	riderStart := components.Transform.Get(p).Position
	tw.idle(p, 30)
	platformMoved := components.Transform.Get(pl).Position.Sub(platformStart)
	riderMoved := components.Transform.Get(p).Position.Sub(riderStart)

	if !approx(platformMoved.X(), 1, 1e-3) {
		t.Errorf("platform moved %v", platformMoved)
	}
	if !vecApprox(riderMoved, platformMoved, 1e-4) {
		t.Errorf("rider moved %v, platform moved %v", riderMoved, platformMoved)
	}
}
