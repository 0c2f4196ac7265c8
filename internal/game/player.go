// Package game implements the Connect Four rules engine: the board, the
// authoritative game state, and the controller that sequences moves,
// outcome resolution, and turn order. It has no knowledge of how the game
// is presented; see the Listener interface for the presentation boundary.
package game

// Cell is the content of a single board position. The zero value is Empty;
// a non-empty cell carries the mark of the player who filled it.
type Cell uint8

// Empty marks a cell no piece has reached yet.
const Empty Cell = 0

// Player identifies one of the two players.
type Player uint8

const (
	// Player1 always opens a fresh game.
	Player1 Player = iota + 1
	Player2
)

// String returns a human-readable player name.
func (p Player) String() string {
	switch p {
	case Player1:
		return "player_1"
	case Player2:
		return "player_2"
	default:
		return "unknown"
	}
}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Cell returns the board mark for this player.
func (p Player) Cell() Cell {
	return Cell(p)
}
