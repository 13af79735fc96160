package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/pkg"
)

const DefaultLockTTL = 5 * time.Second

// releaseScript deletes the lock only if it still holds our token, so an expired lock
// taken over by another request is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Release frees a lock taken by LockRepository.Acquire.
type Release func(ctx context.Context) error

// LockRepository serializes mutations of one player's session across requests.
type LockRepository interface {
	Acquire(ctx context.Context, playerID string) (Release, error)
}

type dbLock struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLockRepository(client *redis.Client, ttl time.Duration) LockRepository {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}

	return &dbLock{
		client: client,
		ttl:    ttl,
	}
}

func lockKey(playerID string) string {
	return "lock:game:" + playerID
}

// Acquire fails with apperror.ErrSessionBusy when another request holds the lock.
func (that *dbLock) Acquire(ctx context.Context, playerID string) (Release, error) {
	token, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate lock token: %w", err)
	}

	key := lockKey(playerID)

	acquired, err := that.client.SetNX(ctx, key, token, that.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !acquired {
		return nil, apperror.ErrSessionBusy
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, that.client, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock: %w", err)
		}
		return nil
	}, nil
}
