package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var ErrNegativePlayCount = errors.New("play count must not be negative")

// PlayCountRepository stores how many games each player has finished.
type PlayCountRepository interface {
	Get(ctx context.Context, playerID string) (int, error)
	Set(ctx context.Context, playerID string, playCount int) error
}

type dbPlayCount struct {
	client *redis.Client
}

func NewPlayCountRepository(client *redis.Client) PlayCountRepository {
	return &dbPlayCount{
		client: client,
	}
}

func playCountKey(playerID string) string {
	return "playcount:" + playerID
}

// Get returns 0 for a player that never finished a game.
func (that *dbPlayCount) Get(ctx context.Context, playerID string) (int, error) {
	response, err := that.client.Get(ctx, playCountKey(playerID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get play count: %w", err)
	}

	playCount, err := strconv.Atoi(response)
	if err != nil {
		return 0, fmt.Errorf("failed to parse play count %q: %w", response, err)
	}

	return max(playCount, 0), nil
}

func (that *dbPlayCount) Set(ctx context.Context, playerID string, playCount int) error {
	if playCount < 0 {
		return ErrNegativePlayCount
	}

	if err := that.client.Set(ctx, playCountKey(playerID), playCount, 0).Err(); err != nil {
		return fmt.Errorf("failed to set play count: %w", err)
	}

	return nil
}
