package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dropfour/internal/telemetry"
)

// ErrNotSuspended is returned when PlacementConfirmed arrives without a
// pending placement. The confirmation contract is exactly one call per
// PiecePlaced notification; anything else is an adapter bug.
var ErrNotSuspended = errors.New("no placement awaiting confirmation")

// Phase is the controller's position in the move cycle.
type Phase uint8

const (
	// PhaseAwaitingMove - ready to accept a column selection.
	PhaseAwaitingMove Phase = iota
	// PhaseResolvingOutcome - a piece was placed; waiting for the adapter
	// to confirm the placement is visually complete before the outcome is
	// resolved. Column selections are ignored here.
	PhaseResolvingOutcome
	// PhaseGameOver - a terminal outcome was announced; only Reset leaves
	// this phase.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingMove:
		return "awaiting_move"
	case PhaseResolvingOutcome:
		return "resolving_outcome"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Controller mediates between an input source and the game state. It runs
// single-threaded: callers must serialize ColumnSelected,
// PlacementConfirmed and Reset with respect to each other.
//
// The move cycle is AwaitingMove -> ResolvingOutcome -> AwaitingMove, or
// ResolvingOutcome -> GameOver -> (Reset) -> AwaitingMove. Outcome
// resolution is deferred until the adapter confirms the placement so the
// logical game never runs ahead of what the player can see. There is no
// timeout on that confirmation: an adapter that never confirms leaves the
// controller suspended.
type Controller struct {
	width    int
	height   int
	state    *State
	listener Listener
	phase    Phase
	log      zerolog.Logger
}

// NewController creates a controller with a fresh game, Player1 to move.
func NewController(width, height int, listener Listener, log zerolog.Logger) (*Controller, error) {
	state, err := NewState(width, height)
	if err != nil {
		return nil, err
	}

	return &Controller{
		width:    width,
		height:   height,
		state:    state,
		listener: listener,
		phase:    PhaseAwaitingMove,
		log:      log.With().Str("component", "controller").Logger(),
	}, nil
}

// State returns the current game state for read access.
func (c *Controller) State() *State {
	return c.state
}

// Phase returns the controller's current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// ColumnSelected handles a column being picked by the current player.
// Selections outside AwaitingMove and drops into a full column are routine
// no-ops. An out-of-range column is a caller bug and returns an error. On
// success the piece is placed, PiecePlaced is emitted, and the controller
// suspends until PlacementConfirmed.
func (c *Controller) ColumnSelected(ctx context.Context, column int) error {
	if column < 0 || column >= c.width {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, column)
	}

	if c.phase != PhaseAwaitingMove {
		c.log.Debug().Stringer("phase", c.phase).Int("column", column).
			Msg("selection ignored outside awaiting_move")
		return nil
	}

	player := c.state.Current()

	row, err := c.state.DropPiece(column)
	if errors.Is(err, ErrColumnFull) {
		c.log.Debug().Int("column", column).Msg("selection ignored, column full")
		return nil
	}
	if err != nil {
		return fmt.Errorf("drop piece: %w", err)
	}

	_, span := telemetry.Tracer("game").Start(ctx, "game.move")
	span.SetAttributes(
		attribute.String("game.id", c.state.ID),
		attribute.String("game.player", player.String()),
		attribute.Int("game.column", column),
		attribute.Int("game.row", row),
	)
	span.End()

	c.phase = PhaseResolvingOutcome
	c.log.Info().Str("game_id", c.state.ID).Stringer("player", player).
		Int("column", column).Int("row", row).Msg("piece placed")

	c.listener.PiecePlaced(player, row, column)
	return nil
}

// PlacementConfirmed is the adapter's signal that the placed piece is
// visually at rest. It resolves the move: win first, then tie, otherwise
// the turn passes and TurnChanged is emitted. Terminal outcomes move the
// controller to PhaseGameOver and emit GameOver.
func (c *Controller) PlacementConfirmed(ctx context.Context) error {
	if c.phase != PhaseResolvingOutcome {
		return fmt.Errorf("%w: phase %s", ErrNotSuspended, c.phase)
	}

	_, span := telemetry.Tracer("game").Start(ctx, "game.resolve")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", c.state.ID))

	if winner, ok := c.state.CheckForWin(); ok {
		c.phase = PhaseGameOver
		span.SetAttributes(attribute.String("game.outcome", OutcomeWin.String()))
		c.log.Info().Str("game_id", c.state.ID).Stringer("winner", winner).Msg("game won")
		c.listener.GameOver(Result{Outcome: OutcomeWin, Winner: winner})
		return nil
	}

	if c.state.CheckForTie() {
		c.phase = PhaseGameOver
		span.SetAttributes(attribute.String("game.outcome", OutcomeTie.String()))
		c.log.Info().Str("game_id", c.state.ID).Msg("game tied")
		c.listener.GameOver(Result{Outcome: OutcomeTie})
		return nil
	}

	if err := c.state.AdvanceTurn(); err != nil {
		return fmt.Errorf("advance turn: %w", err)
	}

	c.phase = PhaseAwaitingMove
	span.SetAttributes(attribute.String("game.outcome", OutcomeInProgress.String()))
	c.listener.TurnChanged(c.state.Current())
	return nil
}

// Reset discards the current game and starts a fresh one. It is valid in
// any phase and doubles as an explicit restart mid-game.
func (c *Controller) Reset(ctx context.Context) error {
	state, err := NewState(c.width, c.height)
	if err != nil {
		return fmt.Errorf("new game state: %w", err)
	}

	_, span := telemetry.Tracer("game").Start(ctx, "game.reset")
	span.SetAttributes(
		attribute.String("game.previous_id", c.state.ID),
		attribute.String("game.id", state.ID),
	)
	span.End()

	c.state = state
	c.phase = PhaseAwaitingMove
	c.log.Info().Str("game_id", state.ID).Msg("game reset")

	c.listener.BoardCleared()
	c.listener.TurnChanged(state.Current())
	return nil
}
