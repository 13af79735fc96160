package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/bot"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

var ErrGameNotFinished = errors.New("game is not finished yet")

// CodeGenerator returns a fresh reward code.
type CodeGenerator func() (string, error)

// GameController owns every state transition of a game session. It performs no I/O:
// anything that has to reach the outside world is returned as an Effect.
type GameController struct {
	rnd      bot.Rand
	newCodes CodeGenerator
}

func NewGameController(rnd bot.Rand, newCodes CodeGenerator) *GameController {
	return &GameController{
		rnd:      rnd,
		newCodes: newCodes,
	}
}

// NewGame starts a session whose difficulty is fixed by playCount.
func (that *GameController) NewGame(id string, player *entity.Player, playCount int) *entity.Game {
	return entity.NewGame(id, player, bot.ModeFor(playCount, that.rnd), playCount)
}

// PlaceHumanMark puts X on cell. On error the game is left untouched.
func (that *GameController) PlaceHumanMark(game *entity.Game, cell int) (*Effect, error) {
	if err := validateMove(game, entity.PlayerX); err != nil {
		return nil, err
	}

	if !entity.IsValidCell(cell) {
		return nil, illegal(fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell))
	}

	if game.Board[cell] != entity.EmptyCell {
		return nil, illegal(apperror.ErrCellOccupied)
	}

	return that.apply(game, entity.PlayerX, cell)
}

// OpponentMove lets the bot answer with the session's difficulty.
func (that *GameController) OpponentMove(game *entity.Game) (*Effect, error) {
	if err := validateMove(game, entity.PlayerO); err != nil {
		return nil, err
	}

	cell, err := bot.SelectMove(game.Board, game.Mode, that.rnd)
	if err != nil {
		return nil, fmt.Errorf("bot failed to select a move: %w", err)
	}

	return that.apply(game, entity.PlayerO, cell)
}

// Reset starts a new round in the same session. playCount is the stored number of finished
// games before this reset; the new difficulty is derived from it and the incremented value,
// which the caller must persist, is returned.
func (that *GameController) Reset(game *entity.Game, playCount int) (int, error) {
	if !game.IsFinished() {
		return 0, illegal(ErrGameNotFinished)
	}

	playCount = max(playCount, 0)

	*game = *entity.NewGame(game.ID, game.Player, bot.ModeFor(playCount, that.rnd), playCount+1)

	return game.PlayCount, nil
}

// NewPromoCode replaces a code that turned out to be taken.
func (that *GameController) NewPromoCode() (string, error) {
	code, err := that.newCodes()
	if err != nil {
		return "", fmt.Errorf("failed to generate promo code: %w", err)
	}
	return code, nil
}

func (that *GameController) apply(game *entity.Game, mark entity.Mark, cell int) (*Effect, error) {
	board := game.Board
	board[cell] = mark

	result := entity.Evaluate(board)

	var effect *Effect
	switch {
	case result.Outcome == entity.Win && mark == entity.PlayerX:
		code, err := that.NewPromoCode()
		if err != nil {
			return nil, err
		}

		game.Status = entity.StatusWon
		game.PromoCode = code
		effect = &Effect{Kind: EffectReward, Player: game.Player, Code: code}
	case result.Outcome == entity.Win:
		game.Status = entity.StatusLost
		effect = &Effect{Kind: EffectLoss, Player: game.Player}
	case result.Outcome == entity.Draw:
		game.Status = entity.StatusDraw
		effect = &Effect{Kind: EffectDraw, Player: game.Player}
	}

	game.Board = board
	if result.IsTerminal() {
		game.Turn = entity.EmptyCell
		if result.Outcome == entity.Win {
			game.WinLine = result.Line[:]
		}
	} else {
		game.Turn = mark.Opponent()
	}

	return effect, nil
}

func validateMove(game *entity.Game, mark entity.Mark) error {
	if err := game.ConfirmPlaying(); err != nil {
		return illegal(err)
	}

	if game.Turn != mark {
		return illegal(apperror.ErrNotYourTurn)
	}

	return nil
}

func illegal(reason error) error {
	return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, reason)
}
