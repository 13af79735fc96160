package tictactoe

import (
	"fmt"
	"html"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

type EffectKind string

const (
	EffectReward EffectKind = "reward"
	EffectLoss   EffectKind = "loss"
	EffectDraw   EffectKind = "draw"
)

// Effect is produced by a terminal transition. The caller dispatches it after the new
// state is committed; a failed dispatch never rolls the state back.
type Effect struct {
	Kind   EffectKind
	Player *entity.Player
	Code   string
}

// Message renders the Telegram text (HTML parse mode) for the player, or "" when the
// effect does not notify anyone.
func (that *Effect) Message() string {
	if that.Player == nil {
		return ""
	}

	name := html.EscapeString(that.Player.FirstName)

	switch that.Kind {
	case EffectReward:
		return fmt.Sprintf("🎉 Congratulations, %s!\n\nYou won the tic-tac-toe game!\n\n"+
			"🎁 Your discount promo code: <b>%s</b>", name, html.EscapeString(that.Code))
	case EffectLoss:
		return fmt.Sprintf("😔 %s, unfortunately you lost this time.\n\n"+
			"Try again, luck is bound to smile on you!", name)
	default:
		return ""
	}
}

// Action is the activity log kind for the effect.
func (that *Effect) Action() string {
	switch that.Kind {
	case EffectReward:
		return entity.ActionWin
	case EffectLoss:
		return entity.ActionLoss
	default:
		return entity.ActionDraw
	}
}
