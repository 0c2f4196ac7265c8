package game

import (
	"errors"

	"github.com/google/uuid"
)

// ErrGameOver is returned when a mutating operation is attempted after the
// game reached a terminal outcome.
var ErrGameOver = errors.New("game already has a terminal outcome")

// runLength is the number of aligned pieces that wins the game.
const runLength = 4

// Outcome describes whether a game is still running or how it ended.
type Outcome uint8

const (
	// OutcomeInProgress - the game accepts further moves.
	OutcomeInProgress Outcome = iota
	// OutcomeWin - a player connected four; see State.Winner.
	OutcomeWin
	// OutcomeTie - the board filled up with no winning run.
	OutcomeTie
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWin:
		return "win"
	case OutcomeTie:
		return "tie"
	default:
		return "unknown"
	}
}

// runDirections are the four axes a winning run can lie on, as (dRow, dCol)
// steps from an anchor cell: right, down, down-right, down-left. Scanning
// every cell as an anchor covers the mirrored directions too.
var runDirections = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// State is the authoritative state of one game: the board, whose turn it
// is, and the outcome. A State is created per game and never reused; once
// the outcome is terminal every mutation returns ErrGameOver.
type State struct {
	// ID correlates log lines and trace spans for one game instance.
	ID string

	board   *Board
	current Player
	outcome Outcome
	winner  Player
}

// NewState creates a fresh game on an all-empty board, Player1 to move.
func NewState(width, height int) (*State, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}

	return &State{
		ID:      uuid.NewString(),
		board:   board,
		current: Player1,
		outcome: OutcomeInProgress,
	}, nil
}

// Board exposes the grid for read access (rendering, assertions in tests).
func (s *State) Board() *Board {
	return s.board
}

// Current returns the player whose turn it is.
func (s *State) Current() Player {
	return s.current
}

// Outcome returns the game's current outcome.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Winner returns the winning player. Only meaningful when Outcome is
// OutcomeWin.
func (s *State) Winner() Player {
	return s.winner
}

// DropPiece drops the current player's piece into the column and returns
// the row it landed in. A full column is a routine rejection
// (ErrColumnFull, no state change); an out-of-range column or a drop after
// a terminal outcome is a caller bug.
func (s *State) DropPiece(column int) (int, error) {
	if s.outcome != OutcomeInProgress {
		return -1, ErrGameOver
	}
	return s.board.Drop(column, s.current.Cell())
}

// CheckForWin scans for four of the current player's pieces in a straight
// line and records the win if found. It anchors a candidate run at every
// cell in each of the four directions; a run counts only if all four
// coordinates are in bounds and all carry the current player's mark. Call
// it after a successful DropPiece, before AdvanceTurn - it deliberately
// tests only the player who just moved.
func (s *State) CheckForWin() (Player, bool) {
	mark := s.current.Cell()

	for row := 0; row < s.board.Height; row++ {
		for column := 0; column < s.board.Width; column++ {
			for _, dir := range runDirections {
				if s.runMatches(row, column, dir[0], dir[1], mark) {
					s.outcome = OutcomeWin
					s.winner = s.current
					return s.current, true
				}
			}
		}
	}

	return 0, false
}

// runMatches reports whether the four cells starting at (row, column) and
// stepping by (dRow, dCol) are all in bounds and all carry mark.
func (s *State) runMatches(row, column, dRow, dCol int, mark Cell) bool {
	for i := 0; i < runLength; i++ {
		y := row + i*dRow
		x := column + i*dCol
		if !s.board.InBounds(y, x) || s.board.Cell(y, x) != mark {
			return false
		}
	}
	return true
}

// CheckForTie records a tie if the board is full. Evaluate it only after
// CheckForWin came back empty for the same move: a win on the final piece
// takes precedence over the full board.
func (s *State) CheckForTie() bool {
	if !s.board.Full() {
		return false
	}
	s.outcome = OutcomeTie
	return true
}

// AdvanceTurn hands the move to the other player. Calling it on a finished
// game is a caller bug.
func (s *State) AdvanceTurn() error {
	if s.outcome != OutcomeInProgress {
		return ErrGameOver
	}
	s.current = s.current.Other()
	return nil
}
