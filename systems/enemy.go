package systems

import (
	"math"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/logging"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies steers every enemy in a straight line toward its goal: the
// player while it is within detection range, otherwise a roam point around the
// spawn. The step is left in the body's pending displacement.
// Must run before UpdateKinematics.
func UpdateEnemies(ecs *ecs.ECS) {
	w := ecs.World
	dt := GetClock(w).Delta()
	if dt == 0 {
		return
	}

	player, _ := tags.Player.First(w)
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		updateEnemy(w, e, player, dt)
	})
}

func updateEnemy(w donburi.World, e *donburi.Entry, player *donburi.Entry, dt float64) {
	enemy := components.Enemy.Get(e)
	tr := components.Transform.Get(e)
	body := components.Body.Get(e)
	log := logging.Named("enemy")

	// Less progress than a share of the last step means a wall is in the way.
	moved := gamemath.Flatten(tr.Position.Sub(enemy.LastPosition)).Len()
	blocked := enemy.LastStep > 0 && moved < enemy.LastStep*cfg.Enemy.StuckFraction

	if player == nil {
		if !enemy.WarnedNoTarget {
			log.Warnw("no player to chase; roaming only", "entity", e.Entity())
			enemy.WarnedNoTarget = true
		}
		enemy.Chasing = false
	} else {
		inRange := components.Transform.Get(player).Position.Sub(tr.Position).Len() <= enemy.DetectionRadius
		switch {
		case inRange && !enemy.Chasing:
			log.Debugw("player detected", "entity", e.Entity())
		case !inRange && enemy.Chasing:
			log.Debugw("player lost, roaming", "entity", e.Entity())
			pickRoamTarget(w, enemy)
		}
		enemy.Chasing = inRange
	}

	var goal mgl64.Vec3
	speed := 0.0
	if enemy.Chasing {
		goal = components.Transform.Get(player).Position
		speed = enemy.ChaseSpeed
	} else {
		if !enemy.HasTarget {
			pickRoamTarget(w, enemy)
		}
		goal = enemy.Target
		switch {
		case enemy.Wait > 0:
			enemy.Wait -= dt
			if enemy.Wait <= 0 {
				pickRoamTarget(w, enemy)
			}
		case blocked || gamemath.Flatten(goal.Sub(tr.Position)).Len() <= cfg.Enemy.ArriveDistance:
			rng := GetRandom(w)
			enemy.Wait = cfg.Enemy.MinRoamWait + rng.Float64()*(cfg.Enemy.MaxRoamWait-cfg.Enemy.MinRoamWait)
		default:
			speed = enemy.RoamSpeed
		}
	}

	var step mgl64.Vec3
	toGoal := gamemath.Flatten(goal.Sub(tr.Position))
	if dist := toGoal.Len(); speed > 0 && dist > cfg.Enemy.ArriveDistance/2 {
		step = toGoal.Mul(math.Min(speed*dt, dist) / dist)
		if rot, ok := gamemath.LookRotation(toGoal); ok {
			tr.Rotation = rot
		}
	}

	if body.Grounded {
		enemy.VerticalVelocity = cfg.Player.StickVelocity
	} else {
		enemy.VerticalVelocity += cfg.Player.Gravity * dt
	}
	step[1] = enemy.VerticalVelocity * dt

	enemy.LastPosition = tr.Position
	enemy.LastStep = gamemath.Flatten(step).Len()
	body.Pending = step
}

// pickRoamTarget chooses a point within the roam radius of the spawn, on the
// spawn's level.
func pickRoamTarget(w donburi.World, enemy *components.EnemyData) {
	offset := gamemath.Flatten(gamemath.RandomInUnitSphere(GetRandom(w))).Mul(enemy.RoamRadius)
	enemy.Target = enemy.Origin.Add(offset)
	enemy.HasTarget = true
	enemy.Wait = 0
}
