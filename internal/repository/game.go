package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

const DefaultSessionTTL = 24 * time.Hour

var (
	ErrGameNotFound = fmt.Errorf("game %w", apperror.ErrNotFound)
	ErrGameNoPlayer = errors.New("game has no player")
)

// GameRepository keeps the single active session of every player.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(playerID string) string {
	return "game:" + playerID
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	if game.Player == nil || game.Player.ID == "" {
		return ErrGameNoPlayer
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(game.Player.ID), gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(playerID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by player id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}
