package systems

import (
	"math"
	"testing"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// climbingPlayer settles a player just south of a capsule vine at the origin
// and lets it grip.
func climbingPlayer(t *testing.T, tw *testWorld) (*donburi.Entry, *donburi.Entry) {
	t.Helper()
	p := tw.settledPlayer(mgl64.Vec3{0, 0, -0.6})
	vine := tw.vine(mgl64.Vec3{0, 0, 0}, 4, 0.4, components.ShapeCapsule)
	tw.idle(p, 1)
	if !components.Overlay.Get(p).Climbing {
		t.Fatal("player did not grip the vine")
	}
	return p, vine
}

func TestStartClimbing(t *testing.T) {
	tw := newTestWorld(t)
	p, vine := climbingPlayer(t, tw)

	climb := components.Climb.Get(p)
	if climb.Vine != vine.Entity() {
		t.Errorf("climbing %v, want %v", climb.Vine, vine.Entity())
	}
	if !approx(climb.OrbitRadius, 0.39, 1e-9) {
		t.Errorf("orbit radius = %v, want 0.39", climb.OrbitRadius)
	}
	pos := components.Transform.Get(p).Position
	if d := horizontalDistance(pos, climb.Anchor); !approx(d, 0.39, 1e-6) {
		t.Errorf("distance to anchor = %v, want 0.39", d)
	}
	if v := components.Locomotion.Get(p).VerticalVelocity; v != 0 {
		t.Errorf("vertical velocity = %v, want 0 while climbing", v)
	}
}

func TestBoxVineUsesFallbackRadius(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, -0.6})
	tw.vine(mgl64.Vec3{0, 0, 0}, 4, 0.4, components.ShapeBox)
	tw.idle(p, 1)

	if r := components.Climb.Get(p).OrbitRadius; r != cfg.Climb.FallbackOrbitRadius {
		t.Errorf("orbit radius = %v, want fallback %v", r, cfg.Climb.FallbackOrbitRadius)
	}
}

func TestClimbOrbitKeepsRadius(t *testing.T) {
	tw := newTestWorld(t)
	p, _ := climbingPlayer(t, tw)
	climb := components.Climb.Get(p)
	start := components.Transform.Get(p).Position

	for i := 0; i < 30; i++ {
		tw.step(p, 1, 0)
		tr := components.Transform.Get(p)
		if d := horizontalDistance(tr.Position, climb.Anchor); !approx(d, climb.OrbitRadius, 1e-6) {
			t.Fatalf("tick %d: distance to anchor = %v, want %v", i, d, climb.OrbitRadius)
		}
		toAnchor := gamemath.Flatten(climb.Anchor.Sub(tr.Position)).Normalize()
		if dot := gamemath.Flatten(tr.Forward()).Normalize().Dot(toAnchor); dot < 0.999 {
			t.Fatalf("tick %d: not facing the vine, dot %v", i, dot)
		}
	}

	end := components.Transform.Get(p).Position
	a := gamemath.Flatten(start.Sub(climb.Anchor))
	b := gamemath.Flatten(end.Sub(climb.Anchor))
	angle := mgl64.RadToDeg(math.Acos(mgl64.Clamp(a.Normalize().Dot(b.Normalize()), -1, 1)))
	want := 30 * cfg.Climb.RotationSpeed * tick
	if !approx(angle, want, 0.01) {
		t.Errorf("orbited %v degrees, want %v", angle, want)
	}
}

func TestClimbUp(t *testing.T) {
	tw := newTestWorld(t)
	p, _ := climbingPlayer(t, tw)

	for i := 0; i < 30; i++ {
		tw.step(p, 0, 1)
	}
	want := 30 * cfg.Climb.Speed * tick
	if y := components.Transform.Get(p).Position.Y(); !approx(y, want, 1e-9) {
		t.Errorf("climbed to %v, want %v", y, want)
	}
	if !components.Overlay.Get(p).Climbing {
		t.Error("lost grip while climbing")
	}
}

func TestJumpOff(t *testing.T) {
	tw := newTestWorld(t)
	p, _ := climbingPlayer(t, tw)
	for i := 0; i < 20; i++ {
		tw.step(p, 0, 1)
	}
	climb := components.Climb.Get(p)
	before := components.Transform.Get(p).Position
	away := gamemath.Flatten(before.Sub(climb.Anchor)).Normalize()

	var jumpedOff int
	components.LocomotionEvents.Subscribe(tw.w, func(w donburi.World, e components.LocomotionEvent) {
		if e.Kind == components.EventJumpedOff {
			jumpedOff++
		}
	})

	tw.step(p, 0, 0, cfg.ActionJump)

	loco := components.Locomotion.Get(p)
	if components.Overlay.Get(p).Climbing {
		t.Fatal("still climbing after jump-off")
	}
	if climb.Vine != donburi.Null {
		t.Errorf("vine still held: %v", climb.Vine)
	}
	if loco.Mode != components.ModeAirborne {
		t.Errorf("mode = %v, want airborne", loco.Mode)
	}
	carry := cfg.Player.SprintSpeed * cfg.Player.JumpOffCarry
	if !approx(loco.Carry.Len(), carry, 1e-9) {
		t.Errorf("carry = %v, want %v", loco.Carry.Len(), carry)
	}
	if dot := loco.Carry.Normalize().Dot(away); dot < 0.999 {
		t.Errorf("carry %v does not point away from the vine", loco.Carry)
	}
	jv := gamemath.JumpVelocity(cfg.Player.JumpHeight, cfg.Player.Gravity)
	if !approx(loco.VerticalVelocity, jv+cfg.Player.Gravity*tick, 1e-9) {
		t.Errorf("vertical velocity = %v, want %v", loco.VerticalVelocity, jv+cfg.Player.Gravity*tick)
	}
	if jumpedOff != 1 {
		t.Errorf("jumped-off events = %d, want 1", jumpedOff)
	}

	// The carry lasts until landing.
	tw.idle(p, 10)
	if loco.Mode == components.ModeAirborne && !approx(loco.Carry.Len(), carry, 1e-9) {
		t.Errorf("carry changed in flight: %v", loco.Carry)
	}
	tw.idle(p, 120)
	if loco.Mode != components.ModeGrounded || loco.Carry.Len() != 0 {
		t.Errorf("after landing mode %v carry %v", loco.Mode, loco.Carry)
	}
}

func TestNoDashWhileClimbing(t *testing.T) {
	tw := newTestWorld(t)
	p, _ := climbingPlayer(t, tw)

	if StartDash(tw.w, p) {
		t.Error("dash started while climbing")
	}
	tw.step(p, 0, 0, cfg.ActionDash)
	if m := components.Locomotion.Get(p).Mode; m == components.ModeDashing {
		t.Error("dash input started a dash while climbing")
	}
}

func TestClimbCancelsDash(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, -2})
	tw.vine(mgl64.Vec3{0, 0, 0}, 4, 0.4, components.ShapeCapsule)

	tw.step(p, 0, 0, cfg.ActionDash)
	for i := 0; i < 12 && !components.Overlay.Get(p).Climbing; i++ {
		tw.idle(p, 1)
	}
	if !components.Overlay.Get(p).Climbing {
		t.Fatal("dash through the vine did not grip it")
	}
	if m := components.Locomotion.Get(p).Mode; m == components.ModeDashing {
		t.Errorf("mode = %v, dash should end on grip", m)
	}
}

func TestClimbingBodyIgnoresLedgeBelow(t *testing.T) {
	tw := newTestWorld(t)
	p, _ := climbingPlayer(t, tw)
	for i := 0; i < 30; i++ {
		tw.step(p, 0, 1)
	}
	tr := components.Transform.Get(p)
	height := tr.Position.Y()

	// A ledge just under the feet, within ground snap reach.
	top := height - cfg.Player.GroundSnap/2
	tw.solid(gamemath.AABB{Min: mgl64.Vec3{-1, top - 0.5, -2}, Max: mgl64.Vec3{1, top, -0.2}})

	// Knock the body off its orbit so the climb correction moves it with no
	// vertical input.
	climb := components.Climb.Get(p)
	away := gamemath.Flatten(tr.Position.Sub(climb.Anchor)).Normalize()
	tr.Position = mgl64.Vec3{climb.Anchor.X(), height, climb.Anchor.Z()}.Add(away.Mul(climb.OrbitRadius + 0.05))
	tw.idle(p, 1)

	if !components.Overlay.Get(p).Climbing {
		t.Fatal("lost grip")
	}
	if y := tr.Position.Y(); !approx(y, height, 1e-9) {
		t.Errorf("feet at %v, want held at %v instead of snapping onto the ledge at %v", y, height, top)
	}
	if d := horizontalDistance(tr.Position, climb.Anchor); !approx(d, climb.OrbitRadius, 1e-6) {
		t.Errorf("distance to anchor = %v, want %v", d, climb.OrbitRadius)
	}
}
