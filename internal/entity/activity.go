package entity

import "time"

const (
	ActionWin     = "WIN"
	ActionLoss    = "LOSS"
	ActionDraw    = "DRAW"
	ActionMessage = "MESSAGE"
)

// Activity is one append-only entry of the players log.
type Activity struct {
	Timestamp time.Time         `json:"timestamp"`
	UserID    string            `json:"user_id"`
	Username  string            `json:"username"`
	FirstName string            `json:"first_name"`
	Action    string            `json:"action"`
	Details   map[string]string `json:"details,omitempty"`
}

func NewActivity(player *Player, action string, details map[string]string) *Activity {
	return &Activity{
		Timestamp: time.Now().UTC(),
		UserID:    player.ID,
		Username:  player.Username,
		FirstName: player.FirstName,
		Action:    action,
		Details:   details,
	}
}

type PlayerSummary struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	LastActivity time.Time `json:"last_activity"`
}

type PlayersSummary struct {
	TotalEvents   int              `json:"total_events"`
	UniquePlayers int              `json:"unique_players"`
	Players       []*PlayerSummary `json:"players"`
}
