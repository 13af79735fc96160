package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type GameHandler interface {
	Start(ctx echo.Context) error
	Get(ctx echo.Context) error
	Turn(ctx echo.Context) error
	Reset(ctx echo.Context) error
}

type gameHandler struct {
	logger *slog.Logger
	games  gameManager
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

func NewGameHandler(logger *slog.Logger, games gameManager) GameHandler {
	return &gameHandler{
		logger: logger.With("handler", "game"),
		games:  games,
	}
}

func (that *gameHandler) Start(ctx echo.Context) error {
	game, err := that.games.StartGame(ctx.Request().Context(), playerFrom(ctx))
	if err != nil {
		return respondError(ctx, that.logger.With("method", "Start"), err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *gameHandler) Get(ctx echo.Context) error {
	game, err := that.games.GetGame(ctx.Request().Context(), playerFrom(ctx))
	if err != nil {
		return respondError(ctx, that.logger.With("method", "Get"), err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *gameHandler) Turn(ctx echo.Context) error {
	var req turnRequest
	if err := ctx.Bind(&req); err != nil || req.Cell == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cell is required"})
	}

	result, err := that.games.MakeTurn(ctx.Request().Context(), playerFrom(ctx), *req.Cell)
	if err != nil {
		return respondError(ctx, that.logger.With("method", "Turn"), err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func (that *gameHandler) Reset(ctx echo.Context) error {
	game, err := that.games.Reset(ctx.Request().Context(), playerFrom(ctx))
	if err != nil {
		return respondError(ctx, that.logger.With("method", "Reset"), err)
	}

	return ctx.JSON(http.StatusOK, game)
}
