package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

const playerKey = "player"

// RequirePlayer admits requests that carry a valid "Authorization: Bearer <jwt>" header
// and stores the player in the echo context.
func RequirePlayer(auth tokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			}

			player, err := auth.ParseToken(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			}

			ctx.Set(playerKey, player)

			return next(ctx)
		}
	}
}

func playerFrom(ctx echo.Context) *entity.Player {
	player, _ := ctx.Get(playerKey).(*entity.Player)
	return player
}
