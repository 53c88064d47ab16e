package awakening

import "github.com/exile7/ExileBot_Go/internal/domain"

// Pool names as stored and reported.
const (
	PoolNormal = "normal"
	PoolBuffed = "buffed"
)

// CrystalsPerPull is the CSG cost of a single awakening attempt.
const CrystalsPerPull = 100

// Outcome order matters: rolls walk the cumulative probability from the
// first entry. Probabilities in each pool sum to 1.
var normalPool = []domain.AwakeningOutcome{
	{Answer: "E", Emoji: "<:awakene:1042217867377311764>", Probability: 0.70, Retire: 30, Points: 1},
	{Answer: "D", Emoji: "<:awakend:1042217865343074405>", Probability: 0.25, Retire: 90, Points: 3},
	{Answer: "SSS", Emoji: "<:awakensss:1042217869671596093>", Probability: 0.05, Retire: 600, Points: 15},
}

var buffedPool = []domain.AwakeningOutcome{
	{Answer: "E", Emoji: "<:awakene:1042217867377311764>", Probability: 0.55, Retire: 30, Points: 1},
	{Answer: "D", Emoji: "<:awakend:1042217865343074405>", Probability: 0.32, Retire: 90, Points: 3},
	{Answer: "SSS", Emoji: "<:awakensss:1042217869671596093>", Probability: 0.13, Retire: 600, Points: 15},
}

func poolFor(state domain.AwakeningPoolState) (string, []domain.AwakeningOutcome) {
	if state.Normal {
		return PoolNormal, normalPool
	}
	return PoolBuffed, buffedPool
}
