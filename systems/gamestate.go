package systems

import (
	"github.com/automoto/vinehop/components"
	"github.com/automoto/vinehop/logging"
	"github.com/yohamta/donburi"
)

// GetGameState returns the run state singleton, creating it on first use.
func GetGameState(w donburi.World) *components.GameStateData {
	entry, ok := components.GameState.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.GameState))
	}
	return components.GameState.Get(entry)
}

// EndGame records the outcome and freezes scaled time. Only the first outcome
// counts.
func EndGame(w donburi.World, outcome components.GameOutcome) {
	gs := GetGameState(w)
	if gs.Ended() {
		return
	}
	gs.Outcome = outcome
	SetTimeScale(w, 0)
	logging.Named("game").Infow("run ended", "outcome", outcome)
}
