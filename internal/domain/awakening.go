package domain

// AwakeningPoolState is the persisted flag selecting which awakening pool
// is in effect. Normal == false means the buffed (event) odds are active.
type AwakeningPoolState struct {
	Normal bool `json:"normal"`
}

// AwakeningOutcome is one entry of a gacha pool: a grade with its draw
// probability and payout values.
type AwakeningOutcome struct {
	Answer      string  `json:"answer"`
	Emoji       string  `json:"emoji"`
	Probability float64 `json:"probability"`
	Retire      int     `json:"retire"`
	Points      int     `json:"points"`
}
