package rest

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/telegramauth"
)

const maxAssertionSize = 16 << 10

type AuthHandler interface {
	TelegramLogin(ctx echo.Context) error
}

type authHandler struct {
	logger *slog.Logger
	games  gameManager
}

type loginResponse struct {
	Success bool           `json:"success"`
	User    *entity.Player `json:"user"`
	Token   string         `json:"token"`
}

func NewAuthHandler(logger *slog.Logger, games gameManager) AuthHandler {
	return &authHandler{
		logger: logger.With("handler", "auth"),
		games:  games,
	}
}

// TelegramLogin exchanges a Telegram Login Widget payload for a session token.
func (that *authHandler) TelegramLogin(ctx echo.Context) error {
	log := that.logger.With("method", "TelegramLogin")

	body, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxAssertionSize))
	if err != nil {
		log.Error("failed to read request body", "error", err)
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	assertion, err := telegramauth.ParseAssertion(body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	player, token, err := that.games.Login(ctx.Request().Context(), assertion)
	if err != nil {
		log.Warn("login rejected", "error", err)
		return respondError(ctx, log, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Success: true,
		User:    player,
		Token:   token,
	})
}
