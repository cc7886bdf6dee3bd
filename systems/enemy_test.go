package systems

import (
	"testing"

	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func (tw *testWorld) enemy(pos mgl64.Vec3, roam, detect float64) *donburi.Entry {
	e := archetypes.Enemy.Spawn(tw.ecs)
	tr := components.NewTransform(pos)
	components.Transform.SetValue(e, tr)
	components.Body.SetValue(e, components.BodyData{
		Radius: cfg.Enemy.Radius, Height: cfg.Enemy.Height, StepOffset: cfg.Enemy.StepOffset,
	})
	b := components.Body.Get(e).Bounds(&tr)
	components.Collider.SetValue(e, components.ColliderData{
		Bounds: b, Shape: components.ShapeBox, Trigger: true, Enabled: true, Layer: cfg.LayerTrigger,
	})
	AddObject(tw.w, e, b, tags.ResolvEnemy)
	components.Enemy.SetValue(e, components.EnemyData{
		Origin:          pos,
		RoamRadius:      roam,
		RoamSpeed:       cfg.Enemy.RoamSpeed,
		ChaseSpeed:      cfg.Enemy.ChaseSpeed,
		DetectionRadius: detect,
		LastPosition:    pos,
	})
	return e
}

func TestEnemyChasesPlayerInRange(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	en := tw.enemy(mgl64.Vec3{5, 0, 0}, 3, 10)

	tw.idle(p, 1)

	if !components.Enemy.Get(en).Chasing {
		t.Fatal("enemy is not chasing a player in range")
	}
	pos := components.Transform.Get(en).Position
	if want := 5 - cfg.Enemy.ChaseSpeed*tick; !approx(pos.X(), want, 1e-9) || !approx(pos.Z(), 0, 1e-9) {
		t.Errorf("enemy at %v, want x=%v", pos, want)
	}
	if f := components.Transform.Get(en).Forward(); !vecApprox(f, mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("enemy faces %v, want the player", f)
	}
}

func TestEnemyRoamsWithinRadius(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	origin := mgl64.Vec3{10, 0, 0}
	en := tw.enemy(origin, 3, 2)

	tw.idle(p, 1)
	enemy := components.Enemy.Get(en)
	if enemy.Chasing {
		t.Fatal("chasing a player out of range")
	}
	if !enemy.HasTarget {
		t.Fatal("no roam target picked")
	}
	if d := horizontalDistance(enemy.Target, origin); d > 3+1e-9 {
		t.Errorf("roam target %v is %v from the spawn, want within 3", enemy.Target, d)
	}

	for i := 0; i < 600; i++ {
		tw.idle(p, 1)
		pos := components.Transform.Get(en).Position
		if d := horizontalDistance(pos, origin); d > 3+1e-6 {
			t.Fatalf("tick %d: enemy %v from the spawn, want within 3", i, d)
		}
	}
}

func TestEnemyLosesPlayer(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	origin := mgl64.Vec3{3, 0, 0}
	en := tw.enemy(origin, 2, 5)

	tw.idle(p, 1)
	if !components.Enemy.Get(en).Chasing {
		t.Fatal("enemy is not chasing")
	}

	teleport(p, mgl64.Vec3{-15, 0, 0})
	tw.idle(p, 1)

	enemy := components.Enemy.Get(en)
	if enemy.Chasing {
		t.Fatal("still chasing a player out of range")
	}
	if !enemy.HasTarget || horizontalDistance(enemy.Target, origin) > 2+1e-9 {
		t.Errorf("roam target %v (set %v), want within 2 of %v", enemy.Target, enemy.HasTarget, origin)
	}
}

func TestEnemyContactCostsLife(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	tw.enemy(mgl64.Vec3{2, 0, 0}, 1, 10)

	var lost []components.LifeLost
	components.LifeLostEvent.Subscribe(tw.w, func(w donburi.World, e components.LifeLost) {
		lost = append(lost, e)
	})

	for i := 0; i < 60 && len(lost) == 0; i++ {
		tw.idle(p, 1)
	}
	if len(lost) != 1 {
		t.Fatalf("life lost events = %d, want 1", len(lost))
	}
	if n := components.Lives.Get(p).Lives; n != cfg.Player.StartingLives-1 {
		t.Errorf("lives = %d, want %d", n, cfg.Player.StartingLives-1)
	}
}

func TestEnemySparesInvulnerable(t *testing.T) {
	tw := newTestWorld(t)
	p := tw.settledPlayer(mgl64.Vec3{0, 0, 0})
	en := tw.enemy(mgl64.Vec3{2, 0, 0}, 1, 10)
	components.Overlay.Get(p).Invulnerable = true

	tw.idle(p, 60)

	body := components.Body.Get(p).Bounds(components.Transform.Get(p))
	if !body.Overlaps(components.Collider.Get(en).Bounds) {
		t.Fatal("enemy never reached the player")
	}
	if n := components.Lives.Get(p).Lives; n != cfg.Player.StartingLives {
		t.Errorf("invulnerable body lost a life, %d left", n)
	}
}

func TestEnemyWithoutPlayerStopsAtWall(t *testing.T) {
	logs := observeLogs(t)
	tw := newTestWorld(t)
	tw.ground()
	tw.solid(gamemath.AABB{Min: mgl64.Vec3{1, 0, -5}, Max: mgl64.Vec3{2, 3, 5}})
	en := tw.enemy(mgl64.Vec3{0, 0, 0}, 5, 10)
	enemy := components.Enemy.Get(en)
	enemy.Target = mgl64.Vec3{4, 0, 0}
	enemy.HasTarget = true

	tw.idle(nil, 60)

	front := components.Transform.Get(en).Position.X() + cfg.Enemy.Radius
	if front > 1+1e-6 {
		t.Errorf("enemy front at x=%v went into the wall at 1", front)
	}
	if enemy.Wait <= 0 {
		t.Errorf("wait = %v, want a pause after being blocked", enemy.Wait)
	}
	if n := logs.FilterMessage("no player to chase; roaming only").Len(); n != 1 {
		t.Errorf("missing player warnings = %d, want 1", n)
	}
}
