package game

import (
	"errors"
	"testing"
)

func mustState(t *testing.T, width, height int) *State {
	t.Helper()
	s, err := NewState(width, height)
	if err != nil {
		t.Fatalf("NewState(%d, %d) failed: %v", width, height, err)
	}
	return s
}

// playMove drives one full move for the current player: drop, win check,
// tie check, then turn advance when the game is still open.
func playMove(t *testing.T, s *State, column int) {
	t.Helper()
	if _, err := s.DropPiece(column); err != nil {
		t.Fatalf("DropPiece(%d) for %s failed: %v", column, s.Current(), err)
	}
	if _, won := s.CheckForWin(); won {
		return
	}
	if s.CheckForTie() {
		return
	}
	if err := s.AdvanceTurn(); err != nil {
		t.Fatalf("AdvanceTurn failed: %v", err)
	}
}

func TestPlayerStringAndOther(t *testing.T) {
	tests := []struct {
		player    Player
		wantName  string
		wantOther Player
	}{
		{Player1, "player_1", Player2},
		{Player2, "player_2", Player1},
	}

	for _, tt := range tests {
		if got := tt.player.String(); got != tt.wantName {
			t.Errorf("Player(%d).String() = %q, want %q", tt.player, got, tt.wantName)
		}
		if got := tt.player.Other(); got != tt.wantOther {
			t.Errorf("%s.Other() = %s, want %s", tt.player, got, tt.wantOther)
		}
	}

	if got := Player(99).String(); got != "unknown" {
		t.Errorf("Player(99).String() = %q, want %q", got, "unknown")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeInProgress, "in_progress"},
		{OutcomeWin, "win"},
		{OutcomeTie, "tie"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}

func TestNewStateOpening(t *testing.T) {
	s := mustState(t, 7, 6)

	if s.Current() != Player1 {
		t.Errorf("Current() = %s, want player_1 to open", s.Current())
	}
	if s.Outcome() != OutcomeInProgress {
		t.Errorf("Outcome() = %s, want in_progress", s.Outcome())
	}
	if s.ID == "" {
		t.Error("ID is empty, want a generated game id")
	}
}

func TestTurnStableUntilAdvanced(t *testing.T) {
	s := mustState(t, 7, 6)

	if _, err := s.DropPiece(3); err != nil {
		t.Fatalf("DropPiece failed: %v", err)
	}
	if s.Current() != Player1 {
		t.Errorf("Current() = %s after drop, want player_1 until AdvanceTurn", s.Current())
	}

	if err := s.AdvanceTurn(); err != nil {
		t.Fatalf("AdvanceTurn failed: %v", err)
	}
	if s.Current() != Player2 {
		t.Errorf("Current() = %s after AdvanceTurn, want player_2", s.Current())
	}
}

func TestVerticalWin(t *testing.T) {
	s := mustState(t, 7, 6)

	// Player1 stacks column 3, Player2 stacks column 0 in between.
	moves := []int{3, 0, 3, 0, 3, 0}
	for _, column := range moves {
		playMove(t, s, column)
		if s.Outcome() != OutcomeInProgress {
			t.Fatalf("game ended early with %s", s.Outcome())
		}
	}

	playMove(t, s, 3) // Player1's fourth piece in column 3

	if s.Outcome() != OutcomeWin {
		t.Fatalf("Outcome() = %s after vertical run, want win", s.Outcome())
	}
	if s.Winner() != Player1 {
		t.Errorf("Winner() = %s, want player_1", s.Winner())
	}
}

func TestHorizontalWin(t *testing.T) {
	s := mustState(t, 7, 6)

	// Player1 lays the bottom row at columns 0-3; Player2 stacks column 6.
	moves := []int{0, 6, 1, 6, 2, 6}
	for _, column := range moves {
		playMove(t, s, column)
		if s.Outcome() != OutcomeInProgress {
			t.Fatalf("game ended early with %s", s.Outcome())
		}
	}

	playMove(t, s, 3)

	if s.Outcome() != OutcomeWin {
		t.Fatalf("Outcome() = %s after horizontal run, want win", s.Outcome())
	}
	if s.Winner() != Player1 {
		t.Errorf("Winner() = %s, want player_1", s.Winner())
	}
}

func TestDiagonalWins(t *testing.T) {
	// Each case lists (column, mark) drops building a position where
	// Player1 (the state's current player) holds a diagonal run.
	tests := []struct {
		name  string
		drops [][2]int // column, owner (1 or 2)
	}{
		{
			// Player1 pieces at (2,1), (3,2), (4,3), (5,4), stepping down-right.
			name: "down-right",
			drops: [][2]int{
				{1, 2}, {1, 2}, {1, 2}, {1, 1},
				{2, 2}, {2, 2}, {2, 1},
				{3, 2}, {3, 1},
				{4, 1},
			},
		},
		{
			// Player1 pieces at (5,0), (4,1), (3,2), (2,3), stepping down-left
			// when anchored at (2,3).
			name: "down-left",
			drops: [][2]int{
				{0, 1},
				{1, 2}, {1, 1},
				{2, 2}, {2, 2}, {2, 1},
				{3, 2}, {3, 2}, {3, 2}, {3, 1},
			},
		},
	}

	for _, tt := range tests {
		s := mustState(t, 7, 6)
		for _, drop := range tt.drops {
			mark := Player1.Cell()
			if drop[1] == 2 {
				mark = Player2.Cell()
			}
			if _, err := s.Board().Drop(drop[0], mark); err != nil {
				t.Fatalf("%s: setup drop into column %d failed: %v", tt.name, drop[0], err)
			}
		}

		winner, won := s.CheckForWin()
		if !won {
			t.Errorf("%s: CheckForWin() found no run", tt.name)
			continue
		}
		if winner != Player1 {
			t.Errorf("%s: CheckForWin() winner = %s, want player_1", tt.name, winner)
		}
	}
}

func TestThreeInARowIsNotAWin(t *testing.T) {
	s := mustState(t, 7, 6)

	for _, column := range []int{0, 1, 2} {
		if _, err := s.Board().Drop(column, Player1.Cell()); err != nil {
			t.Fatalf("setup drop failed: %v", err)
		}
	}

	if _, won := s.CheckForWin(); won {
		t.Error("CheckForWin() = win for a run of three")
	}
	if s.Outcome() != OutcomeInProgress {
		t.Errorf("Outcome() = %s, want in_progress", s.Outcome())
	}
}

func TestFiveInARowStillWins(t *testing.T) {
	s := mustState(t, 7, 6)

	for _, column := range []int{0, 1, 2, 3, 4} {
		if _, err := s.Board().Drop(column, Player1.Cell()); err != nil {
			t.Fatalf("setup drop failed: %v", err)
		}
	}

	winner, won := s.CheckForWin()
	if !won {
		t.Fatal("CheckForWin() found no run in five-in-a-row")
	}
	if winner != Player1 {
		t.Errorf("CheckForWin() winner = %s, want player_1", winner)
	}
}

func TestWinCheckTestsOnlyTheMover(t *testing.T) {
	s := mustState(t, 7, 6)

	// A finished run for Player2 must not register while Player1 is the
	// current player.
	for _, column := range []int{0, 1, 2, 3} {
		if _, err := s.Board().Drop(column, Player2.Cell()); err != nil {
			t.Fatalf("setup drop failed: %v", err)
		}
	}

	if _, won := s.CheckForWin(); won {
		t.Error("CheckForWin() reported a win for the player who did not move")
	}
}

// tiePattern is a full 7x6 position with no four-in-a-row for either
// player. Columns 0,1,4,5 alternate starting with Player1 at the bottom;
// columns 2,3,6 alternate starting with Player2. Every vertical alternates,
// every horizontal group is at most two wide, and the group boundaries
// break every diagonal.
var tiePattern = [7]Cell{
	Cell(Player1), Cell(Player1), Cell(Player2), Cell(Player2),
	Cell(Player1), Cell(Player1), Cell(Player2),
}

func fillTie(t *testing.T, s *State, invert bool) {
	t.Helper()
	for level := 0; level < s.Board().Height; level++ {
		for column := 0; column < s.Board().Width; column++ {
			mark := tiePattern[column]
			if level%2 == 1 {
				mark = Cell(Player(mark).Other())
			}
			if invert {
				mark = Cell(Player(mark).Other())
			}
			if _, err := s.Board().Drop(column, mark); err != nil {
				t.Fatalf("tie fill drop into column %d failed: %v", column, err)
			}
			if _, won := s.CheckForWin(); won {
				t.Fatalf("CheckForWin() = win mid-fill at level %d column %d", level, column)
			}
		}
	}
}

func TestTieOnFullBoardWithoutRuns(t *testing.T) {
	// The pattern and its color-inverse cover runs for both players: a
	// Player2 run in the original would be a Player1 run in the inverse,
	// and CheckForWin here always scans Player1.
	for _, invert := range []bool{false, true} {
		s := mustState(t, 7, 6)
		fillTie(t, s, invert)

		if !s.CheckForTie() {
			t.Fatalf("CheckForTie() = false on a full board (invert=%v)", invert)
		}
		if s.Outcome() != OutcomeTie {
			t.Errorf("Outcome() = %s, want tie (invert=%v)", s.Outcome(), invert)
		}
	}
}

func TestTieFalseWhileCellsRemain(t *testing.T) {
	s := mustState(t, 7, 6)

	if s.CheckForTie() {
		t.Error("CheckForTie() = true on an empty board")
	}
	if s.Outcome() != OutcomeInProgress {
		t.Errorf("Outcome() = %s, want in_progress", s.Outcome())
	}
}

func TestWinTakesPrecedenceOverTie(t *testing.T) {
	// On a 1x4 board the final piece both fills the board and completes a
	// vertical run. Win must be recorded first.
	s := mustState(t, 1, 4)

	for i := 0; i < 4; i++ {
		if _, err := s.DropPiece(0); err != nil {
			t.Fatalf("drop %d failed: %v", i+1, err)
		}
	}

	winner, won := s.CheckForWin()
	if !won {
		t.Fatal("CheckForWin() found no run on the full column")
	}
	if winner != Player1 {
		t.Errorf("winner = %s, want player_1", winner)
	}
	if s.Outcome() != OutcomeWin {
		t.Errorf("Outcome() = %s, want win even though the board is full", s.Outcome())
	}
}

func TestTerminalStateRejectsMutation(t *testing.T) {
	s := mustState(t, 1, 4)
	for i := 0; i < 4; i++ {
		if _, err := s.DropPiece(0); err != nil {
			t.Fatalf("drop failed: %v", err)
		}
	}
	if _, won := s.CheckForWin(); !won {
		t.Fatal("expected a win to set up the terminal state")
	}

	if _, err := s.DropPiece(0); !errors.Is(err, ErrGameOver) {
		t.Errorf("DropPiece on finished game error = %v, want ErrGameOver", err)
	}
	if err := s.AdvanceTurn(); !errors.Is(err, ErrGameOver) {
		t.Errorf("AdvanceTurn on finished game error = %v, want ErrGameOver", err)
	}
}

func TestDropPieceRejectsFullColumnWithoutMutation(t *testing.T) {
	s := mustState(t, 7, 6)

	for i := 0; i < 6; i++ {
		if _, err := s.DropPiece(4); err != nil {
			t.Fatalf("drop %d failed: %v", i+1, err)
		}
	}

	if _, err := s.DropPiece(4); !errors.Is(err, ErrColumnFull) {
		t.Errorf("DropPiece into full column error = %v, want ErrColumnFull", err)
	}
	if s.Current() != Player1 {
		t.Errorf("Current() = %s after rejection, want player_1 unchanged", s.Current())
	}
	for row := 0; row < 6; row++ {
		if got := s.Board().Cell(row, 4); got != Player1.Cell() {
			t.Errorf("cell (%d, 4) = %v after rejection, want player_1's mark", row, got)
		}
	}
}
