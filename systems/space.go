package systems

import (
	"github.com/automoto/vinehop/components"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GetSpace returns the broadphase singleton, or nil before one is created.
func GetSpace(w donburi.World) *components.SpaceData {
	e, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// AddObject registers a broadphase proxy covering b for e.
func AddObject(w donburi.World, e *donburi.Entry, b gamemath.AABB, tags ...string) *resolv.Object {
	sp := GetSpace(w)
	if sp == nil {
		return nil
	}
	x, y, bw, bh := sp.Footprint(b)
	obj := resolv.NewObject(x, y, bw, bh, tags...)
	obj.Data = e // Link for O(1) lookup

	if !e.HasComponent(components.Object) {
		e.AddComponent(components.Object)
	}
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	sp.Add(obj)
	return obj
}

// syncObject moves e's proxy onto b.
func syncObject(w donburi.World, e *donburi.Entry, b gamemath.AABB) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	sp := GetSpace(w)
	if obj.Object == nil || sp == nil {
		return
	}
	obj.X, obj.Y, obj.W, obj.H = sp.Footprint(b)
	obj.Update()
}

// removeObject takes e's proxy out of the broadphase.
func removeObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

// destroyEntry removes e and its proxy.
func destroyEntry(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	removeObject(e)
	e.Remove()
}

// queryBox returns the entries whose proxies share a broadphase cell with the
// ground-plane footprint of box. Callers do their own exact test.
func queryBox(w donburi.World, box gamemath.AABB, tags ...string) []*donburi.Entry {
	sp := GetSpace(w)
	if sp == nil {
		return nil
	}

	x, y, bw, bh := sp.Footprint(box)
	query := resolv.NewObject(x, y, bw, bh)
	sp.Add(query)
	defer sp.Remove(query)

	col := query.Check(0, 0, tags...)
	if col == nil {
		return nil
	}
	found := make([]*donburi.Entry, 0, len(col.Objects))
	for _, o := range col.Objects {
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			found = append(found, entry)
		}
	}
	return found
}
