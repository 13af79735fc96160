package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/telegramauth"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/usecase"
)

type gameManager interface {
	Login(ctx context.Context, assertion telegramauth.Assertion) (*entity.Player, string, error)
	StartGame(ctx context.Context, player *entity.Player) (*entity.Game, error)
	GetGame(ctx context.Context, player *entity.Player) (*entity.Game, error)
	MakeTurn(ctx context.Context, player *entity.Player, cell int) (*usecase.TurnResult, error)
	Reset(ctx context.Context, player *entity.Player) (*entity.Game, error)
	PlayersSummary(ctx context.Context) (*entity.PlayersSummary, error)
	BotInfo(ctx context.Context) (string, error)
}

type tokenParser interface {
	ParseToken(token string) (*entity.Player, error)
}

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

func New(logger *slog.Logger, games gameManager, auth tokenParser, corsOrigins []string) *Server {
	log := logger.With("component", "rest")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	ping := NewPingHandler()
	authHandler := NewAuthHandler(log, games)
	gameHandler := NewGameHandler(log, games)
	playersHandler := NewPlayersHandler(log, games)

	e.GET("/ping", ping.Ping)

	api := e.Group("/api")
	api.POST("/auth/telegram", authHandler.TelegramLogin)
	api.GET("/bot-info", playersHandler.BotInfo)
	api.GET("/players", playersHandler.Summary)

	game := api.Group("/game", RequirePlayer(auth))
	game.POST("", gameHandler.Start)
	game.GET("", gameHandler.Get)
	game.POST("/turn", gameHandler.Turn)
	game.POST("/reset", gameHandler.Reset)

	return &Server{
		logger: log,
		echo:   e,
	}
}

func (that *Server) Start(port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := that.echo.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	return that.echo.Shutdown(ctx)
}

// ServeHTTP lets the routes be driven without a listener.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.echo.ServeHTTP(w, r)
}
