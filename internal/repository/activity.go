package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

// ActivityRepository is the append-only players log.
type ActivityRepository interface {
	Append(ctx context.Context, activity *entity.Activity) error
	Summary(ctx context.Context, since time.Time) (*entity.PlayersSummary, error)
}

type activityRepository struct {
	conn *sql.DB
}

func NewActivityRepository(conn *sql.DB) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (that *activityRepository) Append(ctx context.Context, activity *entity.Activity) error {
	query := `INSERT INTO activity (created_at, user_id, username, first_name, action, details)
		VALUES (?, ?, ?, ?, ?, ?)`

	details, err := json.Marshal(activity.Details)
	if err != nil {
		return fmt.Errorf("can't marshal activity details: %w", err)
	}

	_, err = that.conn.ExecContext(ctx, query,
		activity.Timestamp.UnixMilli(),
		activity.UserID,
		activity.Username,
		activity.FirstName,
		activity.Action,
		string(details),
	)
	if err != nil {
		return fmt.Errorf("can't append activity: %w", err)
	}

	return nil
}

// Summary aggregates wins and losses per player for entries not older than since.
// Name fields come from the player's latest entry.
func (that *activityRepository) Summary(ctx context.Context, since time.Time) (*entity.PlayersSummary, error) {
	summary := &entity.PlayersSummary{Players: []*entity.PlayerSummary{}}

	err := that.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM activity WHERE created_at >= ?`, since.UnixMilli(),
	).Scan(&summary.TotalEvents)
	if err != nil {
		return nil, fmt.Errorf("can't count activity: %w", err)
	}

	query := `SELECT user_id, username, first_name,
			SUM(CASE WHEN action = ? THEN 1 ELSE 0 END),
			SUM(CASE WHEN action = ? THEN 1 ELSE 0 END),
			MAX(created_at)
		FROM activity
		WHERE created_at >= ?
		GROUP BY user_id
		ORDER BY MAX(created_at) DESC, user_id`

	rows, err := that.conn.QueryContext(ctx, query, entity.ActionWin, entity.ActionLoss, since.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("can't summarize activity: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			player       entity.PlayerSummary
			lastActivity int64
		)

		err = rows.Scan(&player.UserID, &player.Username, &player.FirstName, &player.Wins, &player.Losses, &lastActivity)
		if err != nil {
			return nil, fmt.Errorf("can't scan activity summary: %w", err)
		}

		player.LastActivity = time.UnixMilli(lastActivity).UTC()
		summary.Players = append(summary.Players, &player)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read activity summary: %w", err)
	}

	summary.UniquePlayers = len(summary.Players)

	return summary, nil
}
