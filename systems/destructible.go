package systems

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/logging"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

var zeroMaskWarning sync.Once

// TriggerDestruction breaks root into its pieces. The first call wins: calls on
// an object that is already decomposing, or on anything that is not a
// destructible, do nothing and report false.
func TriggerDestruction(w donburi.World, root *donburi.Entry, impact, forceSource mgl64.Vec3) bool {
	if root == nil || !root.Valid() || !root.HasComponent(components.Destructible) {
		return false
	}
	d := components.Destructible.Get(root)
	if d.State == components.Decomposing {
		return false
	}
	d.State = components.Decomposing

	if root.HasComponent(components.Collider) {
		components.Collider.Get(root).Enabled = false
	}
	removeObject(root)

	rng := GetRandom(w)
	parts := append([]donburi.Entity(nil), d.Parts...)
	pieces := 0
	for _, id := range parts {
		if w.Valid(id) {
			pieces += breakPart(w, w.Entry(id), forceSource, rng)
		}
	}

	scheduleRemoval(root, cfg.Destructible.RootRemoveDelay, true)

	components.DecompositionStartedEvent.Publish(w, components.DecompositionStarted{
		Entity:      root.Entity(),
		Impact:      impact,
		ForceSource: forceSource,
		Pieces:      pieces,
	})
	logging.Named("destructible").Debugw("decomposition started", "entity", root.Entity(), "pieces", pieces)
	return true
}

// CheckAreaDamage breaks every intact destructible on a layer selected by mask
// whose collider lies within radius of impact. It returns the objects it broke.
func CheckAreaDamage(w donburi.World, impact mgl64.Vec3, radius float64, mask uint32, forceSource mgl64.Vec3) []donburi.Entity {
	if mask == 0 {
		zeroMaskWarning.Do(func() {
			logging.Named("destructible").Warnw("area damage mask selects no layers")
		})
		return nil
	}

	reach := gamemath.BoxFromCenter(impact, mgl64.Vec3{radius, radius, radius})
	var targets []*donburi.Entry
	for _, e := range queryBox(w, reach, tags.ResolvDestructible) {
		if !e.HasComponent(components.Destructible) || !e.HasComponent(components.Collider) {
			continue
		}
		if components.Destructible.Get(e).State != components.Intact {
			continue
		}
		col := components.Collider.Get(e)
		if !col.Enabled || !cfg.LayerInMask(col.Layer, mask) {
			continue
		}
		if col.Bounds.DistanceTo(impact) > radius {
			continue
		}
		targets = append(targets, e)
	}

	var broken []donburi.Entity
	for _, e := range targets {
		if TriggerDestruction(w, e, impact, forceSource) {
			broken = append(broken, e.Entity())
		}
	}
	return broken
}

// breakPart detaches the pieces under part and returns how many it let go.
// Containers outlive their pieces briefly unless their name carries the keep
// tag, in which case they go with the root.
func breakPart(w donburi.World, part *donburi.Entry, source mgl64.Vec3, rng *rand.Rand) int {
	if !part.HasComponent(components.Part) {
		return 0
	}
	pd := components.Part.Get(part)
	if pd.Detached {
		return 0
	}

	if part.HasComponent(components.Visual) {
		detachPiece(w, part, source, rng)
		return 1
	}

	name := pd.Name
	children := append([]donburi.Entity(nil), pd.Children...)
	n := 0
	for _, id := range children {
		if w.Valid(id) {
			n += breakPart(w, w.Entry(id), source, rng)
		}
	}
	if !keepContainer(name) {
		c := cfg.Destructible
		scheduleRemoval(part, c.FadeDelay+c.FadeDuration+c.ContainerGrace, false)
	}
	return n
}

func keepContainer(name string) bool {
	tag := cfg.Destructible.KeepTag
	return tag != "" && strings.Contains(strings.ToLower(name), strings.ToLower(tag))
}

// detachPiece turns a leaf part into free debris: it leaves the tree in place,
// gets a rigid body and a collider, is thrown away from source and starts
// fading out.
func detachPiece(w donburi.World, piece *donburi.Entry, source mgl64.Vec3, rng *rand.Rand) {
	log := logging.Named("destructible")
	c := cfg.Destructible

	unlinkPart(w, piece)

	// Structural changes first; component pointers are read afterwards.
	if !piece.HasComponent(tags.Debris) {
		piece.AddComponent(tags.Debris)
	}
	if !piece.HasComponent(components.RigidBody) {
		piece.AddComponent(components.RigidBody)
	}
	if piece.HasComponent(components.Collider) {
		col := components.Collider.Get(piece)
		if col.Shape == components.ShapeMesh && !col.Convex {
			log.Warnw("piece has a non-convex mesh collider; contacts will be approximate",
				"piece", components.Part.Get(piece).Name)
		}
	} else {
		piece.AddComponent(components.Collider)
		shape, convex := components.ShapeBox, false
		if components.Visual.Get(piece).HasMesh {
			shape, convex = components.ShapeMesh, true
		}
		components.Collider.SetValue(piece, components.ColliderData{Shape: shape, Convex: convex})
		log.Warnw("added collider to piece", "piece", components.Part.Get(piece).Name)
	}
	fades := components.Visual.Get(piece).HasMaterial
	if fades && !piece.HasComponent(components.Fade) {
		piece.AddComponent(components.Fade)
	}

	vis := components.Visual.Get(piece)
	tr := components.Transform.Get(piece)
	half := mgl64.Vec3{
		vis.HalfExtents.X() * tr.Scale.X(),
		vis.HalfExtents.Y() * tr.Scale.Y(),
		vis.HalfExtents.Z() * tr.Scale.Z(),
	}

	col := components.Collider.Get(piece)
	col.Enabled = true
	col.Trigger = false
	col.Layer = cfg.LayerDebris
	col.Bounds = gamemath.OrientedBounds(tr.Position, half, tr.Rotation)
	removeObject(piece)
	AddObject(w, piece, col.Bounds, tags.ResolvDebris)

	rb := components.RigidBody.Get(piece)
	if rb.Mass <= 0 {
		rb.Mass = c.PieceMass
	}
	rb.HalfExtents = half
	rb.Inertia = gamemath.BoxInertia(rb.Mass, half)
	rb.AddImpulse(gamemath.ExplosionImpulse(c.ExplosionForce, source, c.ExplosionRadius,
		c.UpwardsModifier, tr.Position, col.Bounds.ClosestPoint(source)))
	rb.AddTorqueImpulse(gamemath.RandomInUnitSphere(rng).Mul(c.TorqueStrength))

	if fades {
		components.Fade.SetValue(piece, components.FadeData{Delay: c.FadeDelay, Duration: c.FadeDuration})
	} else {
		scheduleRemoval(piece, c.FadeDelay+c.FadeDuration, false)
	}
}

// unlinkPart removes part from its parent's child list, keeping its world pose.
func unlinkPart(w donburi.World, part *donburi.Entry) {
	pd := components.Part.Get(part)
	id := part.Entity()
	if pd.Parent != donburi.Null && w.Valid(pd.Parent) {
		parent := w.Entry(pd.Parent)
		if parent.HasComponent(components.Part) {
			pp := components.Part.Get(parent)
			pp.Children = withoutEntity(pp.Children, id)
		}
		if parent.HasComponent(components.Destructible) {
			dd := components.Destructible.Get(parent)
			dd.Parts = withoutEntity(dd.Parts, id)
		}
	}
	pd.Parent = donburi.Null
	pd.Detached = true
}

func withoutEntity(ids []donburi.Entity, id donburi.Entity) []donburi.Entity {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

// scheduleRemoval removes e after the given scaled time. An earlier schedule
// wins.
func scheduleRemoval(e *donburi.Entry, after float64, cascade bool) {
	if e.HasComponent(components.AutoDestroy) {
		ad := components.AutoDestroy.Get(e)
		if after < ad.Remaining {
			ad.Remaining = after
		}
		ad.Cascade = ad.Cascade || cascade
		return
	}
	e.AddComponent(components.AutoDestroy)
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{Remaining: after, Cascade: cascade})
}
