// Package bot picks the opponent's moves: an exhaustive alpha-beta search over the
// tic-tac-toe tree and a difficulty policy that can steer it away from the best move.
package bot

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

// WinScore is the score of an immediate opponent win. Deeper wins score less, deeper losses
// score more, so the search prefers fast wins and slow losses.
const WinScore = 10

// The opponent (O) is always the maximizer.
const maximizer = entity.PlayerO

// Minimax scores board with alpha-beta pruning. The board is passed by value, so every
// branch works on its own copy and the caller's board is never touched.
func Minimax(board entity.Board, depth int, maximizing bool, alpha, beta int) int {
	if result := entity.Evaluate(board); result.IsTerminal() {
		return terminalScore(result, depth)
	}

	if maximizing {
		best := math.MinInt
		for i, cell := range board {
			if cell != entity.EmptyCell {
				continue
			}

			next := board
			next[i] = maximizer
			score := Minimax(next, depth+1, false, alpha, beta)

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for i, cell := range board {
		if cell != entity.EmptyCell {
			continue
		}

		next := board
		next[i] = maximizer.Opponent()
		score := Minimax(next, depth+1, true, alpha, beta)

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}

func terminalScore(result entity.Result, depth int) int {
	switch {
	case result.Outcome == entity.Draw:
		return 0
	case result.Winner == maximizer:
		return WinScore - depth
	default:
		return depth - WinScore
	}
}

// Score places side on cell and returns the opponent-perspective value of the position
// one ply later, with fresh bounds.
func Score(board entity.Board, cell int, side entity.Mark) int {
	board[cell] = side
	return Minimax(board, 0, side != maximizer, math.MinInt, math.MaxInt)
}

// BestMove returns the best cell for side: the highest score for O, the lowest for X.
// Ties go to the lowest index.
func BestMove(board entity.Board, side entity.Mark) (int, error) {
	if err := checkPlayable(board); err != nil {
		return 0, err
	}

	bestCell := -1
	var bestScore int
	for _, cell := range board.EmptyCells() {
		score := Score(board, cell, side)
		if bestCell == -1 || better(side, score, bestScore) {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell, nil
}

func better(side entity.Mark, score, current int) bool {
	if side == maximizer {
		return score > current
	}
	return score < current
}

func checkPlayable(board entity.Board) error {
	if result := entity.Evaluate(board); result.IsTerminal() {
		return fmt.Errorf("%w: %s", apperror.ErrSearchInvariant, result.Outcome)
	}
	return nil
}
