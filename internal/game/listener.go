package game

// Result is the terminal outcome announced through Listener.GameOver.
// Winner is set only when Outcome is OutcomeWin.
type Result struct {
	Outcome Outcome
	Winner  Player
}

// Listener is the presentation boundary. The controller pushes state
// changes through it and expects the adapter to render them. After a
// PiecePlaced notification the adapter must call
// Controller.PlacementConfirmed exactly once, when the piece is visually
// at rest; the controller stays suspended until then.
type Listener interface {
	// PiecePlaced reports that player's piece came to rest at
	// (row, column). Row 0 is the top of the board.
	PiecePlaced(player Player, row, column int)

	// TurnChanged reports which player moves next.
	TurnChanged(player Player)

	// GameOver announces the terminal outcome. The adapter should present
	// it and eventually trigger Controller.Reset.
	GameOver(result Result)

	// BoardCleared reports that a reset discarded all placed pieces.
	BoardCleared()
}
