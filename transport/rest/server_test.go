package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/telegramauth"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-rewards/testing/suite"
)

const validToken = "valid-token"

var anna = &entity.Player{ID: "42", FirstName: "Anna", Username: "anna"}

type fakeGames struct {
	mock.Mock
}

func (that *fakeGames) Login(ctx context.Context, assertion telegramauth.Assertion) (*entity.Player, string, error) {
	args := that.Called(ctx, assertion)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.String(1), args.Error(2)
}

func (that *fakeGames) StartGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	args := that.Called(ctx, player)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *fakeGames) GetGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	args := that.Called(ctx, player)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *fakeGames) MakeTurn(ctx context.Context, player *entity.Player, cell int) (*usecase.TurnResult, error) {
	args := that.Called(ctx, player, cell)
	result, _ := args.Get(0).(*usecase.TurnResult)
	return result, args.Error(1)
}

func (that *fakeGames) Reset(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	args := that.Called(ctx, player)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *fakeGames) PlayersSummary(ctx context.Context) (*entity.PlayersSummary, error) {
	args := that.Called(ctx)
	summary, _ := args.Get(0).(*entity.PlayersSummary)
	return summary, args.Error(1)
}

func (that *fakeGames) BotInfo(ctx context.Context) (string, error) {
	args := that.Called(ctx)
	return args.String(0), args.Error(1)
}

type fakeTokens struct{}

func (fakeTokens) ParseToken(token string) (*entity.Player, error) {
	if token != validToken {
		return nil, fmt.Errorf("%w: bad token", apperror.ErrUnauthorized)
	}
	return anna, nil
}

func newServer(t *testing.T) (*Server, *fakeGames) {
	t.Helper()

	games := &fakeGames{}
	t.Cleanup(func() { games.AssertExpectations(t) })

	return New(suite.NewLogger(), games, fakeTokens{}, []string{"https://example.org"}), games
}

func do(server *Server, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	return rec
}

func TestPing(t *testing.T) {
	server, _ := newServer(t)

	rec := do(server, http.MethodGet, "/ping", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestTelegramLogin(t *testing.T) {
	body := `{"id":42,"first_name":"Anna","auth_date":1700000000,"hash":"abc"}`

	t.Run("Returns the player and a token", func(t *testing.T) {
		// Given: an accepted assertion
		server, games := newServer(t)
		games.On("Login", mock.Anything, mock.MatchedBy(func(assertion telegramauth.Assertion) bool {
			return assertion["hash"] == "abc" && assertion["id"] == json.Number("42")
		})).Return(anna, "jwt", nil).Once()

		// When: it is posted
		rec := do(server, http.MethodPost, "/api/auth/telegram", body, "")

		// Then: the response carries the session token
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"token":"jwt","user":{"id":"42","first_name":"Anna","username":"anna"}}`, rec.Body.String())
	})

	t.Run("Expired assertion is unauthorized", func(t *testing.T) {
		server, games := newServer(t)
		games.On("Login", mock.Anything, mock.Anything).
			Return(nil, "", fmt.Errorf("%w: %w", apperror.ErrInvalidAssertion, apperror.ErrAssertionExpired)).Once()

		rec := do(server, http.MethodPost, "/api/auth/telegram", body, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("Malformed body", func(t *testing.T) {
		server, _ := newServer(t)

		rec := do(server, http.MethodPost, "/api/auth/telegram", `{"id":`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGameRoutes(t *testing.T) {
	game := entity.NewGame("game-1", anna, entity.ModeBiased, 0)

	t.Run("Requires a bearer token", func(t *testing.T) {
		server, _ := newServer(t)

		assert.Equal(t, http.StatusUnauthorized, do(server, http.MethodGet, "/api/game", "", "").Code)
		assert.Equal(t, http.StatusUnauthorized, do(server, http.MethodGet, "/api/game", "", "forged").Code)
	})

	t.Run("Start", func(t *testing.T) {
		server, games := newServer(t)
		games.On("StartGame", mock.Anything, anna).Return(game, nil).Once()

		rec := do(server, http.MethodPost, "/api/game", "", validToken)

		require.Equal(t, http.StatusOK, rec.Code)

		var got entity.Game
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "game-1", got.ID)
		assert.Equal(t, entity.StatusPlaying, got.Status)
		assert.Equal(t, entity.PlayerX, got.Turn)
	})

	t.Run("Get without session", func(t *testing.T) {
		server, games := newServer(t)
		games.On("GetGame", mock.Anything, anna).Return(nil, fmt.Errorf("game %w", apperror.ErrNotFound)).Once()

		rec := do(server, http.MethodGet, "/api/game", "", validToken)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Turn returns the game and warnings", func(t *testing.T) {
		server, games := newServer(t)
		games.On("MakeTurn", mock.Anything, anna, 4).
			Return(&usecase.TurnResult{Game: game, Warnings: []string{"activity could not be logged"}}, nil).Once()

		rec := do(server, http.MethodPost, "/api/game/turn", `{"cell":4}`, validToken)

		require.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			Game     *entity.Game `json:"game"`
			Warnings []string     `json:"warnings"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "game-1", got.Game.ID)
		assert.Equal(t, []string{"activity could not be logged"}, got.Warnings)
	})

	t.Run("Turn without cell", func(t *testing.T) {
		server, _ := newServer(t)

		rec := do(server, http.MethodPost, "/api/game/turn", `{}`, validToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Illegal move and busy session conflict", func(t *testing.T) {
		server, games := newServer(t)
		games.On("MakeTurn", mock.Anything, anna, 0).
			Return(nil, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrCellOccupied)).Once()
		games.On("MakeTurn", mock.Anything, anna, 1).
			Return(nil, fmt.Errorf("failed to lock session: %w", apperror.ErrSessionBusy)).Once()

		assert.Equal(t, http.StatusConflict, do(server, http.MethodPost, "/api/game/turn", `{"cell":0}`, validToken).Code)
		assert.Equal(t, http.StatusConflict, do(server, http.MethodPost, "/api/game/turn", `{"cell":1}`, validToken).Code)
	})

	t.Run("Reset", func(t *testing.T) {
		server, games := newServer(t)
		games.On("Reset", mock.Anything, anna).Return(game, nil).Once()

		rec := do(server, http.MethodPost, "/api/game/reset", "", validToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Internal errors are not leaked", func(t *testing.T) {
		server, games := newServer(t)
		games.On("Reset", mock.Anything, anna).Return(nil, errors.New("redis: connection refused at 10.0.0.3")).Once()

		rec := do(server, http.MethodPost, "/api/game/reset", "", validToken)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "10.0.0.3")
	})
}

func TestPlayersRoutes(t *testing.T) {
	t.Run("Summary", func(t *testing.T) {
		server, games := newServer(t)
		games.On("PlayersSummary", mock.Anything).Return(&entity.PlayersSummary{
			TotalEvents:   2,
			UniquePlayers: 1,
			Players:       []*entity.PlayerSummary{{UserID: "42", Username: "anna", Wins: 1}},
		}, nil).Once()

		rec := do(server, http.MethodGet, "/api/players", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_events":2`)
		assert.Contains(t, rec.Body.String(), `"unique_players":1`)
	})

	t.Run("Bot info", func(t *testing.T) {
		server, games := newServer(t)
		games.On("BotInfo", mock.Anything).Return("reward_bot", nil).Once()

		rec := do(server, http.MethodGet, "/api/bot-info", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"username":"reward_bot"}`, rec.Body.String())
	})
}

func TestCORS(t *testing.T) {
	server, _ := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/game", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))
}
