package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/telegramauth"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/tictactoe"
)

const (
	// SummaryWindow is how far back the players summary looks.
	SummaryWindow = 7 * 24 * time.Hour

	maxPromoAttempts = 5
	dispatchTimeout  = 10 * time.Second
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
}

type playCountRepo interface {
	Get(ctx context.Context, playerID string) (int, error)
	Set(ctx context.Context, playerID string, playCount int) error
}

type promoRepo interface {
	Reserve(ctx context.Context, code, playerID string) (bool, error)
}

type lockRepo interface {
	Acquire(ctx context.Context, playerID string) (repository.Release, error)
}

type activityRepo interface {
	Append(ctx context.Context, activity *entity.Activity) error
	Summary(ctx context.Context, since time.Time) (*entity.PlayersSummary, error)
}

type assertionVerifier interface {
	Verify(assertion telegramauth.Assertion) (*entity.Player, error)
}

type tokenIssuer interface {
	GenerateToken(player *entity.Player) (string, error)
}

type messenger interface {
	GetMe(ctx context.Context) (string, error)
	SendMessage(ctx context.Context, chatID, text string) error
}

// TurnResult is the session after a turn plus the side effects that could not be delivered.
type TurnResult struct {
	Game     *entity.Game `json:"game"`
	Warnings []string     `json:"warnings"`
}

// Repositories groups the storage the manager works with.
type Repositories struct {
	Players    playerRepo
	Games      gameRepo
	PlayCounts playCountRepo
	Promos     promoRepo
	Locks      lockRepo
	Activity   activityRepo
}

type GameManager struct {
	logger *slog.Logger

	playerRepo    playerRepo
	gameRepo      gameRepo
	playCountRepo playCountRepo
	promoRepo     promoRepo
	lockRepo      lockRepo
	activityRepo  activityRepo

	verifier   assertionVerifier
	auth       tokenIssuer
	messenger  messenger
	controller *tictactoe.GameController

	now func() time.Time
}

func NewGameManager(
	logger *slog.Logger,
	repos Repositories,
	verifier assertionVerifier,
	auth tokenIssuer,
	messenger messenger,
	controller *tictactoe.GameController,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		playerRepo:    repos.Players,
		gameRepo:      repos.Games,
		playCountRepo: repos.PlayCounts,
		promoRepo:     repos.Promos,
		lockRepo:      repos.Locks,
		activityRepo:  repos.Activity,

		verifier:   verifier,
		auth:       auth,
		messenger:  messenger,
		controller: controller,

		now: time.Now,
	}
}

// Login verifies the identity assertion, remembers the profile and issues a session token.
func (that *GameManager) Login(ctx context.Context, assertion telegramauth.Assertion) (*entity.Player, string, error) {
	player, err := that.verifier.Verify(assertion)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify assertion: %w", err)
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, "", fmt.Errorf("failed to save player: %w", err)
	}

	token, err := that.auth.GenerateToken(player)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	that.logger.Info("player logged in", "player", player.DisplayName())

	return player, token, nil
}

// StartGame returns the player's session, creating one when there is none.
func (that *GameManager) StartGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	release, err := that.lockRepo.Acquire(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}
	defer that.release(ctx, release)

	game, err := that.gameRepo.GetByPlayerID(ctx, player.ID)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return that.createGame(ctx, player, false)
}

func (that *GameManager) GetGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	game, err := that.gameRepo.GetByPlayerID(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn places the player's mark and, while the game goes on, the bot's answer.
// The new state is saved before rewards and notifications go out.
func (that *GameManager) MakeTurn(ctx context.Context, player *entity.Player, cell int) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "player", player.DisplayName())

	release, err := that.lockRepo.Acquire(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}
	defer that.release(ctx, release)

	game, err := that.gameRepo.GetByPlayerID(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	effect, err := that.controller.PlaceHumanMark(game, cell)
	if err != nil {
		return nil, err
	}

	if game.IsPlaying() {
		effect, err = that.controller.OpponentMove(game)
		if err != nil {
			return nil, err
		}
	}

	var warnings []string
	if effect != nil && effect.Kind == tictactoe.EffectReward {
		warnings = append(warnings, that.reservePromoCode(ctx, game, effect)...)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if effect != nil {
		log.Info("game finished", "status", game.Status, "mode", game.Mode)
		warnings = append(warnings, that.dispatch(ctx, game, effect)...)
	}

	return &TurnResult{Game: game, Warnings: nonNil(warnings)}, nil
}

// Reset starts the next round once the current one is over.
func (that *GameManager) Reset(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	release, err := that.lockRepo.Acquire(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}
	defer that.release(ctx, release)

	// an expired session still counts as a finished round
	game, err := that.gameRepo.GetByPlayerID(ctx, player.ID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return that.createGame(ctx, player, true)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	playCount, err := that.playCountRepo.Get(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get play count: %w", err)
	}

	playCount, err = that.controller.Reset(game, playCount)
	if err != nil {
		return nil, err
	}

	if err = that.playCountRepo.Set(ctx, player.ID, playCount); err != nil {
		return nil, fmt.Errorf("failed to set play count: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Debug("game reset", "player", player.DisplayName(), "mode", game.Mode, "play_count", playCount)

	return game, nil
}

// PlayersSummary reports the activity of the last week.
func (that *GameManager) PlayersSummary(ctx context.Context) (*entity.PlayersSummary, error) {
	summary, err := that.activityRepo.Summary(ctx, that.now().Add(-SummaryWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to get players summary: %w", err)
	}

	return summary, nil
}

// BotInfo returns the username of the bot players log in with.
func (that *GameManager) BotInfo(ctx context.Context) (string, error) {
	username, err := that.messenger.GetMe(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get bot info: %w", err)
	}

	return username, nil
}

// createGame opens a new session. With countRound set the previous round is counted first,
// so the difficulty comes from the count before it, as on a regular reset.
func (that *GameManager) createGame(ctx context.Context, player *entity.Player, countRound bool) (*entity.Game, error) {
	// the token only carries the identity, the stored profile has the rest
	profile, err := that.playerRepo.GetByID(ctx, player.ID)
	switch {
	case err == nil:
		player = profile
	case !errors.Is(err, repository.ErrPlayerNotFound):
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	playCount, err := that.playCountRepo.Get(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get play count: %w", err)
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate game id: %w", err)
	}

	game := that.controller.NewGame(gameID, player, playCount)
	if countRound {
		game.PlayCount = max(playCount, 0) + 1
		if err = that.playCountRepo.Set(ctx, player.ID, game.PlayCount); err != nil {
			return nil, fmt.Errorf("failed to set play count: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Debug("game created", "player", player.DisplayName(), "mode", game.Mode, "play_count", game.PlayCount)

	return game, nil
}

// reservePromoCode makes the won code unique, drawing a new one on collision.
// The game keeps its code even if no reservation could be made.
func (that *GameManager) reservePromoCode(ctx context.Context, game *entity.Game, effect *tictactoe.Effect) []string {
	log := that.logger.With("method", "reservePromoCode", "player", game.Player.DisplayName())

	for attempt := range maxPromoAttempts {
		if attempt > 0 {
			code, err := that.controller.NewPromoCode()
			if err != nil {
				log.Error("failed to regenerate promo code", "error", err)
				return []string{"promo code could not be regenerated"}
			}

			game.PromoCode = code
			effect.Code = code
		}

		reserved, err := that.promoRepo.Reserve(ctx, game.PromoCode, game.Player.ID)
		if err != nil {
			log.Error("failed to reserve promo code", "error", err)
			return []string{"promo code could not be registered"}
		}

		if reserved {
			return nil
		}

		log.Warn("promo code collision", "attempt", attempt+1)
	}

	return []string{"promo code could not be registered"}
}

// dispatch delivers the outcome of a finished game. Failures are only reported back.
func (that *GameManager) dispatch(ctx context.Context, game *entity.Game, effect *tictactoe.Effect) []string {
	log := that.logger.With("method", "dispatch", "player", game.Player.DisplayName(), "kind", effect.Kind)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
	defer cancel()

	var warnings []string

	details := map[string]string{"game_id": game.ID, "mode": string(game.Mode)}
	if effect.Code != "" {
		details["promo_code"] = effect.Code
	}

	if err := that.activityRepo.Append(ctx, entity.NewActivity(game.Player, effect.Action(), details)); err != nil {
		log.Error("failed to log activity", "error", err)
		warnings = append(warnings, "activity could not be logged")
	}

	message := effect.Message()
	if message == "" {
		return warnings
	}

	if err := that.messenger.SendMessage(ctx, game.Player.ID, message); err != nil {
		log.Error("failed to send message", "error", err)
		return append(warnings, "telegram message could not be delivered")
	}

	if effect.Kind != tictactoe.EffectReward {
		return warnings
	}

	sent := entity.NewActivity(game.Player, entity.ActionMessage, map[string]string{"promo_code": effect.Code})
	if err := that.activityRepo.Append(ctx, sent); err != nil {
		log.Error("failed to log message", "error", err)
		warnings = append(warnings, "activity could not be logged")
	}

	return warnings
}

func (that *GameManager) release(ctx context.Context, release repository.Release) {
	if err := release(context.WithoutCancel(ctx)); err != nil {
		that.logger.Warn("failed to release session lock", "error", err)
	}
}

func nonNil(warnings []string) []string {
	if warnings == nil {
		return []string{}
	}
	return warnings
}
