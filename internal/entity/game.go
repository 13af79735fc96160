package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
	StatusDraw    Status = "draw"
)

// Mode is the opponent difficulty, fixed for the whole session.
type Mode string

const (
	ModeOptimal Mode = "optimal"
	ModeBiased  Mode = "biased"
)

// Game is a single-player session: the human plays X against the bot playing O.
type Game struct {
	ID        string  `json:"id"`
	Player    *Player `json:"player,omitempty"`
	Board     Board   `json:"board"`
	Status    Status  `json:"status"`
	Turn      Mark    `json:"player_turn"`
	Mode      Mode    `json:"mode"`
	PlayCount int     `json:"play_count"`
	WinLine   []int   `json:"win_line,omitempty"`
	PromoCode string  `json:"promo_code,omitempty"`
}

func NewGame(id string, player *Player, mode Mode, playCount int) *Game {
	return &Game{
		ID:        id,
		Player:    player,
		Status:    StatusPlaying,
		Turn:      PlayerX,
		Mode:      mode,
		PlayCount: playCount,
	}
}

func (that *Game) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Game) IsFinished() bool {
	switch that.Status {
	case StatusWon, StatusLost, StatusDraw:
		return true
	default:
		return false
	}
}

// ConfirmPlaying returns nil only while the session accepts moves.
func (that *Game) ConfirmPlaying() error {
	switch {
	case that.IsPlaying():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
