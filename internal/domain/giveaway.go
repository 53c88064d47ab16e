package domain

import "time"

// Giveaway winner count bounds
const (
	MinGiveawayWinners = 1
	MaxGiveawayWinners = 3
)

// Giveaway is one persisted giveaway record.
// At most one record has Active == true at any time; the creation path
// enforces that, not storage.
type Giveaway struct {
	ID              string    `json:"id"`
	Prize           string    `json:"prize"`
	HostID          string    `json:"host_id"`
	HostName        string    `json:"host_name"`
	Winners         int       `json:"winners"`
	DurationSeconds int64     `json:"duration_seconds"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Message         string    `json:"message,omitempty"`
	Mention         bool      `json:"mention"`
	ChannelID       string    `json:"channel_id"`
	MessageID       string    `json:"message_id,omitempty"`
	Active          bool      `json:"active"`
	Participants    []string  `json:"participants"`
	WinnerIDs       []string  `json:"winner_ids"`
}

// Ended reports whether the giveaway has been concluded.
func (g *Giveaway) Ended() bool {
	return !g.Active
}

// Expired reports whether the record is past its end time.
func (g *Giveaway) Expired(now time.Time) bool {
	return !g.EndTime.After(now)
}
