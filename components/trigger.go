package components

import "github.com/yohamta/donburi"

// TriggerStateData tracks which trigger volumes a body is inside. Entered and
// Exited hold this tick's changes only.
type TriggerStateData struct {
	Inside  map[donburi.Entity]struct{}
	Entered []donburi.Entity
	Exited  []donburi.Entity
}

var TriggerState = donburi.NewComponentType[TriggerStateData]()

func NewTriggerState() TriggerStateData {
	return TriggerStateData{Inside: map[donburi.Entity]struct{}{}}
}

// HasEntered reports whether e was entered this tick.
func (t *TriggerStateData) HasEntered(e donburi.Entity) bool {
	for _, x := range t.Entered {
		if x == e {
			return true
		}
	}
	return false
}

// HasExited reports whether e was left this tick.
func (t *TriggerStateData) HasExited(e donburi.Entity) bool {
	for _, x := range t.Exited {
		if x == e {
			return true
		}
	}
	return false
}
