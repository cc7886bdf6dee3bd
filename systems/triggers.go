package systems

import (
	"sort"

	"github.com/automoto/vinehop/components"
	"github.com/automoto/vinehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers refreshes which trigger volumes each body overlaps and records
// the volumes entered and left since the previous tick.
// Must run before any system that reacts to trigger changes.
func UpdateTriggers(ecs *ecs.ECS) {
	w := ecs.World
	components.TriggerState.Each(w, func(e *donburi.Entry) {
		state := components.TriggerState.Get(e)
		if state.Inside == nil {
			state.Inside = map[donburi.Entity]struct{}{}
		}
		state.Entered = state.Entered[:0]
		state.Exited = state.Exited[:0]

		now := overlappingTriggers(w, e)

		for id := range now {
			if _, ok := state.Inside[id]; !ok {
				state.Entered = append(state.Entered, id)
			}
		}
		for id := range state.Inside {
			if _, ok := now[id]; !ok {
				state.Exited = append(state.Exited, id)
			}
		}
		sortEntities(state.Entered)
		sortEntities(state.Exited)
		state.Inside = now
	})
}

func overlappingTriggers(w donburi.World, e *donburi.Entry) map[donburi.Entity]struct{} {
	found := map[donburi.Entity]struct{}{}
	if !e.HasComponent(components.Body) {
		return found
	}
	box := components.Body.Get(e).Bounds(components.Transform.Get(e))
	for _, other := range queryBox(w, box, tags.Triggers...) {
		if other.Entity() == e.Entity() || !other.HasComponent(components.Collider) {
			continue
		}
		col := components.Collider.Get(other)
		if !col.Enabled || !col.Trigger || !box.Overlaps(col.Bounds) {
			continue
		}
		found[other.Entity()] = struct{}{}
	}
	return found
}

func sortEntities(ids []donburi.Entity) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
