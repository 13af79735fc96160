package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrIllegalMove), errors.Is(err, apperror.ErrSessionBusy):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidAssertion), errors.Is(err, apperror.ErrAssertionExpired),
		errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError hides internal failures from the client and logs them instead.
func respondError(ctx echo.Context, log *slog.Logger, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "path", ctx.Path(), "error", err)
		return ctx.JSON(status, errorResponse{Error: "Internal Server Error"})
	}

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}
