package bot

import (
	"sort"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

// ModeFor maps the number of finished games to the difficulty of the next session:
// the first game is always winnable, games 1-3 are played optimally, 4-5 are biased
// again, and after that it is a coin flip.
func ModeFor(playCount int, rnd Rand) entity.Mode {
	switch {
	case playCount <= 0:
		return entity.ModeBiased
	case playCount <= 3:
		return entity.ModeOptimal
	case playCount <= 5:
		return entity.ModeBiased
	case rnd.Intn(2) == 0:
		return entity.ModeBiased
	default:
		return entity.ModeOptimal
	}
}

type scoredMove struct {
	cell  int
	score int
}

// SelectMove picks the opponent's move for the given mode.
func SelectMove(board entity.Board, mode entity.Mode, rnd Rand) (int, error) {
	if mode != entity.ModeBiased {
		return BestMove(board, maximizer)
	}

	if err := checkPlayable(board); err != nil {
		return 0, err
	}

	candidates := worstMoves(board)
	return candidates[rnd.Intn(len(candidates))].cell, nil
}

// worstMoves returns the worse half (at least two) of the opponent's moves, worst first.
func worstMoves(board entity.Board) []scoredMove {
	cells := board.EmptyCells()
	moves := make([]scoredMove, 0, len(cells))
	for _, cell := range cells {
		moves = append(moves, scoredMove{cell: cell, score: Score(board, cell, maximizer)})
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].score < moves[j].score
	})

	size := max(2, (len(moves)+1)/2)
	return moves[:min(size, len(moves))]
}
