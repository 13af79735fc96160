package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type PlayersHandler interface {
	Summary(ctx echo.Context) error
	BotInfo(ctx echo.Context) error
}

type playersHandler struct {
	logger *slog.Logger
	games  gameManager
}

func NewPlayersHandler(logger *slog.Logger, games gameManager) PlayersHandler {
	return &playersHandler{
		logger: logger.With("handler", "players"),
		games:  games,
	}
}

// Summary reports wins and losses of the last week, most recently active first.
func (that *playersHandler) Summary(ctx echo.Context) error {
	summary, err := that.games.PlayersSummary(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, that.logger.With("method", "Summary"), err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

func (that *playersHandler) BotInfo(ctx echo.Context) error {
	username, err := that.games.BotInfo(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, that.logger.With("method", "BotInfo"), err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"username": username})
}
