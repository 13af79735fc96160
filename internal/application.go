package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/bot"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/config"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/service"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/telegramauth"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/transport/telegram"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-rewards/transport/rest"
)

const shutdownTimeout = 10 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	verifier, err := telegramauth.NewVerifier(conf.Telegram.BotToken, conf.Game.AuthMaxAge, time.Now)
	if err != nil {
		return fmt.Errorf("invalid telegram configuration: %w", err)
	}

	authService, err := service.NewAuthService(conf.JWTSecretKey, conf.Game.TokenTTL)
	if err != nil {
		return fmt.Errorf("invalid jwt configuration: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	repos := usecase.Repositories{
		Players:    repository.NewPlayerRepository(redisStorage.Connection),
		Games:      repository.NewGameRepository(redisStorage.Connection, conf.Game.SessionTTL),
		PlayCounts: repository.NewPlayCountRepository(redisStorage.Connection),
		Promos:     repository.NewPromoRepository(redisStorage.Connection, repository.DefaultPromoTTL),
		Locks:      repository.NewLockRepository(redisStorage.Connection, repository.DefaultLockTTL),
		Activity:   repository.NewActivityRepository(sqliteStorage.Connection),
	}

	telegramClient, err := telegram.NewClient(conf.Telegram.APIURL, conf.Telegram.BotToken, conf.Telegram.Timeout)
	if err != nil {
		return fmt.Errorf("invalid telegram configuration: %w", err)
	}

	gameController := tictactoe.NewGameController(bot.NewRand(), pkg.GeneratePromoCode)
	gameManager := usecase.NewGameManager(logger, repos, verifier, authService, telegramClient, gameController)

	server := rest.New(logger, gameManager, authService, conf.CORSOrigins)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := server.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	return nil
}
