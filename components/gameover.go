package components

import "github.com/yohamta/donburi"

// GameOutcome is how a run ended.
type GameOutcome int

const (
	OutcomePlaying GameOutcome = iota
	OutcomeWon
	OutcomeLost
)

func (o GameOutcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "unknown"
}

// GameStateData is the run state singleton. Ending a run freezes scaled time.
type GameStateData struct {
	Outcome GameOutcome
}

var GameState = donburi.NewComponentType[GameStateData]()

func (g *GameStateData) Ended() bool {
	return g.Outcome != OutcomePlaying
}
