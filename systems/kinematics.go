package systems

import (
	"math"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKinematics applies each body's pending displacement and clears the
// external velocity it was built from.
// Must run after UpdateLocomotion and before UpdatePowerUps.
func UpdateKinematics(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !e.HasComponent(components.ScalePowerUp) {
			body.Hits = body.Hits[:0]
		}

		// Climbing bodies are moved by the climb system.
		if e.HasComponent(components.Overlay) && components.Overlay.Get(e).Climbing {
			body.Pending = mgl64.Vec3{}
			body.External = mgl64.Vec3{}
			return
		}

		MoveBody(ecs.World, e, body.Pending)
		body.Pending = mgl64.Vec3{}
		body.External = mgl64.Vec3{}
	})
}

// MoveBody moves e by delta against solid geometry. A body already inside a
// blocker is first pushed out of it. Horizontal motion stops at walls and
// steps over ledges no higher than the step offset; vertical motion lands on
// the highest surface within reach. Climbing bodies neither step nor snap.
// The grounded flag is refreshed and contacts are appended to the body's hits.
func MoveBody(w donburi.World, e *donburi.Entry, delta mgl64.Vec3) {
	body := components.Body.Get(e)
	tr := components.Transform.Get(e)
	climbing := e.HasComponent(components.Overlay) && components.Overlay.Get(e).Climbing

	m := &mover{
		halfX:  body.Radius * tr.Scale.X(),
		halfZ:  body.Radius * tr.Scale.Z(),
		height: body.Height * tr.Scale.Y(),
		step:   body.StepOffset * tr.Scale.Y(),
		snap:   cfg.Player.GroundSnap,
	}
	if climbing {
		m.step, m.snap = 0, 0
	}

	start := m.boundsAt(tr.Position)
	reach := start.Union(start.Translate(delta))
	reach.Min[1] -= m.snap
	reach.Max[1] += m.step
	m.blockers = gatherBlockers(w, e, reach)

	pos := m.depenetrate(tr.Position)
	for _, axis := range [2]int{0, 2} {
		if delta[axis] == 0 {
			continue
		}
		pos = m.moveHorizontal(pos, axis, delta[axis], body.Grounded && !climbing)
	}
	pos = m.moveVertical(pos, delta[1])

	tr.Position = pos
	body.Grounded = m.grounded
	body.Ground = m.ground
	body.Hits = append(body.Hits, m.hits...)
	box := m.boundsAt(pos)
	if e.HasComponent(components.Collider) {
		// Moving triggers such as enemies carry their volume along.
		components.Collider.Get(e).Bounds = box
	}
	syncObject(w, e, box)
}

type blocker struct {
	entry *donburi.Entry
	box   gamemath.AABB
}

func gatherBlockers(w donburi.World, self *donburi.Entry, reach gamemath.AABB) []blocker {
	var found []blocker
	for _, entry := range queryBox(w, reach, tags.Blocking...) {
		if entry.Entity() == self.Entity() || !entry.HasComponent(components.Collider) {
			continue
		}
		col := components.Collider.Get(entry)
		if !col.Enabled || col.Trigger {
			continue
		}
		found = append(found, blocker{entry: entry, box: col.Bounds})
	}
	return found
}

type mover struct {
	halfX, halfZ, height float64
	step, snap           float64
	blockers             []blocker

	grounded bool
	ground   donburi.Entity
	hits     []components.Hit
}

func (m *mover) boundsAt(p mgl64.Vec3) gamemath.AABB {
	return gamemath.BoxFromFeet(p, m.halfX, m.halfZ, m.height)
}

func (m *mover) overlapsAny(box gamemath.AABB) bool {
	for _, b := range m.blockers {
		if box.Overlaps(b.box) {
			return true
		}
	}
	return false
}

func (m *mover) addHit(b *blocker, pos, normal mgl64.Vec3) {
	center := m.boundsAt(pos).Center()
	m.hits = append(m.hits, components.Hit{
		Point:  b.box.ClosestPoint(center),
		Normal: normal,
		Entity: b.entry.Entity(),
	})
}

// depenetrate pushes the box out of every blocker it interpenetrates, along the
// shallowest way out (sideways or up), and records each as a contact.
func (m *mover) depenetrate(pos mgl64.Vec3) mgl64.Vec3 {
	for i := range m.blockers {
		b := &m.blockers[i]
		box := m.boundsAt(pos)
		if !box.Overlaps(b.box) {
			continue
		}
		normal, depth := exitDirection(box, b.box)
		pos = pos.Add(normal.Mul(depth))
		m.addHit(b, pos, normal)
	}
	return pos
}

func exitDirection(box, blocker gamemath.AABB) (mgl64.Vec3, float64) {
	axis, sign := 1, 1.0
	depth := blocker.Max.Y() - box.Min.Y()
	for _, i := range [2]int{0, 2} {
		if d := blocker.Max[i] - box.Min[i]; d < depth {
			axis, sign, depth = i, 1, d
		}
		if d := box.Max[i] - blocker.Min[i]; d < depth {
			axis, sign, depth = i, -1, d
		}
	}
	var n mgl64.Vec3
	n[axis] = sign
	return n, depth
}

// sweep moves along one axis until the nearest blocker in the way. Blockers the
// box still overlaps after depenetration are skipped so a body wedged between
// two of them can move out.
func (m *mover) sweep(pos mgl64.Vec3, axis int, d float64) (mgl64.Vec3, *blocker) {
	box := m.boundsAt(pos)
	travel := math.Abs(d)
	var hit *blocker
	for i := range m.blockers {
		b := &m.blockers[i]
		if box.Overlaps(b.box) || !overlapsOtherAxes(box, b.box, axis) {
			continue
		}
		var gap float64
		if d > 0 {
			gap = b.box.Min[axis] - box.Max[axis]
		} else {
			gap = box.Min[axis] - b.box.Max[axis]
		}
		if gap < -gamemath.Skin || gap >= travel {
			continue
		}
		travel = math.Max(gap, 0)
		hit = b
	}
	pos[axis] += math.Copysign(travel, d)
	return pos, hit
}

func (m *mover) moveHorizontal(pos mgl64.Vec3, axis int, d float64, canStep bool) mgl64.Vec3 {
	moved, hit := m.sweep(pos, axis, d)
	if hit == nil {
		return moved
	}

	if canStep {
		rise := hit.box.Max.Y() - pos.Y()
		if rise > 0 && rise <= m.step {
			raised := pos
			raised[1] = hit.box.Max.Y()
			if !m.overlapsAny(m.boundsAt(raised)) {
				stepped, next := m.sweep(raised, axis, d)
				if math.Abs(stepped[axis]-pos[axis]) > math.Abs(moved[axis]-pos[axis]) {
					if next != nil {
						m.addHit(next, stepped, axisNormal(axis, d))
					}
					return stepped
				}
			}
		}
	}

	m.addHit(hit, moved, axisNormal(axis, d))
	return moved
}

func (m *mover) moveVertical(pos mgl64.Vec3, d float64) mgl64.Vec3 {
	box := m.boundsAt(pos)

	if d > 0 {
		travel := d
		var hit *blocker
		for i := range m.blockers {
			b := &m.blockers[i]
			if !box.OverlapsXZ(b.box) || box.Overlaps(b.box) {
				continue
			}
			gap := b.box.Min.Y() - box.Max.Y()
			if gap < -gamemath.Skin || gap >= travel {
				continue
			}
			travel = math.Max(gap, 0)
			hit = b
		}
		pos[1] += travel
		if hit != nil {
			m.addHit(hit, pos, gamemath.Up.Mul(-1))
		}
		return pos
	}

	// Falling or resting: stand on the highest surface within reach. Surfaces
	// that rose into the feet by up to a step are climbed back onto.
	low := pos.Y() + math.Min(d, -m.snap)
	high := pos.Y() + math.Max(m.snap, m.step)
	var ground *blocker
	best := math.Inf(-1)
	for i := range m.blockers {
		b := &m.blockers[i]
		if !box.OverlapsXZ(b.box) {
			continue
		}
		top := b.box.Max.Y()
		if top < low-gamemath.Skin || top > high || top <= best {
			continue
		}
		ground = b
		best = top
	}
	if ground == nil {
		pos[1] += d
		return pos
	}

	pos[1] = best
	m.grounded = true
	m.ground = ground.entry.Entity()
	m.addHit(ground, pos, gamemath.Up)
	return pos
}

func overlapsOtherAxes(a, b gamemath.AABB, axis int) bool {
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if a.Min[i] >= b.Max[i]-gamemath.Skin || a.Max[i] <= b.Min[i]+gamemath.Skin {
			return false
		}
	}
	return true
}

func axisNormal(axis int, d float64) mgl64.Vec3 {
	var n mgl64.Vec3
	n[axis] = -math.Copysign(1, d)
	return n
}
