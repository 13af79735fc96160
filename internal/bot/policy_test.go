package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

// scriptedRand returns queued values and records every bound it was asked for.
type scriptedRand struct {
	values []int
	bounds []int
}

func (that *scriptedRand) Intn(n int) int {
	that.bounds = append(that.bounds, n)
	value := that.values[0]
	that.values = that.values[1:]
	return value
}

func TestModeFor(t *testing.T) {
	t.Run("Follows the epoch table for the first six games", func(t *testing.T) {
		expected := map[int]entity.Mode{
			0: entity.ModeBiased,
			1: entity.ModeOptimal,
			2: entity.ModeOptimal,
			3: entity.ModeOptimal,
			4: entity.ModeBiased,
			5: entity.ModeBiased,
		}

		for playCount, mode := range expected {
			rnd := &scriptedRand{}

			assert.Equal(t, mode, ModeFor(playCount, rnd), "play count %d", playCount)
			assert.Empty(t, rnd.bounds, "play count %d must not flip a coin", playCount)
		}
	})

	t.Run("Flips a coin after the sixth game", func(t *testing.T) {
		heads := &scriptedRand{values: []int{0}}
		tails := &scriptedRand{values: []int{1}}

		assert.Equal(t, entity.ModeBiased, ModeFor(6, heads))
		assert.Equal(t, entity.ModeOptimal, ModeFor(42, tails))
		assert.Equal(t, []int{2}, heads.bounds)
	})

	t.Run("Treats a negative count as the first game", func(t *testing.T) {
		assert.Equal(t, entity.ModeBiased, ModeFor(-3, &scriptedRand{}))
	})
}

func TestSelectMove(t *testing.T) {
	// O can win on 2; 5, 7 and 8 all let X win next move.
	threat := entity.Board{
		o, o, e,
		x, x, e,
		x, e, e,
	}

	t.Run("Optimal mode plays the best move", func(t *testing.T) {
		cell, err := SelectMove(threat, entity.ModeOptimal, &scriptedRand{})

		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Biased mode draws from the worst half", func(t *testing.T) {
		for pick, expected := range []int{5, 7} {
			// Given: a scripted source choosing each prefix slot in turn
			rnd := &scriptedRand{values: []int{pick}}

			// When: selecting a biased move
			cell, err := SelectMove(threat, entity.ModeBiased, rnd)

			// Then: the candidate comes from the two worst moves, never the winning one
			require.NoError(t, err)
			assert.Equal(t, expected, cell)
			assert.NotEqual(t, 2, cell)
			assert.Equal(t, []int{2}, rnd.bounds)
		}
	})

	t.Run("Biased mode never returns the best move when it is outside the prefix", func(t *testing.T) {
		rnd := NewSeededRand(1)

		for range 50 {
			cell, err := SelectMove(threat, entity.ModeBiased, rnd)

			require.NoError(t, err)
			assert.NotEqual(t, 2, cell)
		}
	})

	t.Run("Biased mode with a single empty cell returns it", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, e,
		}
		rnd := &scriptedRand{values: []int{0}}

		cell, err := SelectMove(board, entity.ModeBiased, rnd)

		require.NoError(t, err)
		assert.Equal(t, 8, cell)
		assert.Equal(t, []int{1}, rnd.bounds)
	})

	t.Run("Biased prefix is the ceiling of half the candidates", func(t *testing.T) {
		// Given: an empty board with nine candidates
		rnd := &scriptedRand{values: []int{0}}

		// When: selecting a biased move
		_, err := SelectMove(entity.Board{}, entity.ModeBiased, rnd)

		// Then: the draw is made among five moves
		require.NoError(t, err)
		assert.Equal(t, []int{5}, rnd.bounds)
	})

	t.Run("Both modes refuse a decided board", func(t *testing.T) {
		won := entity.Board{o, o, o, x, x, e, x, e, e}

		_, err := SelectMove(won, entity.ModeOptimal, &scriptedRand{})
		require.ErrorIs(t, err, apperror.ErrSearchInvariant)

		_, err = SelectMove(won, entity.ModeBiased, &scriptedRand{})
		require.ErrorIs(t, err, apperror.ErrSearchInvariant)
	})
}
