package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dropfour/internal/config"
	"github.com/samdwyer/dropfour/internal/game"
	"github.com/samdwyer/dropfour/internal/telemetry"
)

// App owns the terminal session: it polls tcell events, feeds column
// selections into the controller, and implements game.Listener so
// controller notifications turn into drawing. Everything runs on the
// calling goroutine; the listener callbacks fire inside controller calls
// made from the event loop, which keeps the core's single-threaded
// contract intact.
type App struct {
	screen     *Screen
	renderer   *Renderer
	controller *game.Controller
	log        zerolog.Logger

	// ctx carries the session context into listener callbacks.
	ctx     context.Context
	cursor  int
	status  string
	running bool
	err     error
}

// NewApp builds the screen, renderer and controller from config.
func NewApp(conf *config.Config, log zerolog.Logger) (*App, error) {
	p1Color, err := ParseHexColor(conf.Player1Color)
	if err != nil {
		return nil, fmt.Errorf("player 1 color: %w", err)
	}
	p2Color, err := ParseHexColor(conf.Player2Color)
	if err != nil {
		return nil, fmt.Errorf("player 2 color: %w", err)
	}

	screen, err := NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	app := &App{
		screen:   screen,
		renderer: NewRenderer(screen, p1Color, p2Color),
		log:      log.With().Str("component", "ui").Logger(),
		cursor:   conf.BoardWidth / 2,
		running:  true,
	}

	controller, err := game.NewController(conf.BoardWidth, conf.BoardHeight, app, log)
	if err != nil {
		screen.Close()
		return nil, err
	}
	app.controller = controller
	app.status = waitingStatus(controller.State().Current())

	return app, nil
}

// Run executes the event loop until the player quits or a listener
// callback fails.
func (a *App) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("ui")

	ctx, span := tracer.Start(ctx, "ui.session")
	board := a.controller.State().Board()
	span.SetAttributes(
		attribute.Int("board.width", board.Width),
		attribute.Int("board.height", board.Height),
	)
	defer span.End()

	a.ctx = ctx

	for a.running {
		a.renderer.Render(a.controller.State().Board(), a.controller.State().Current(), a.cursor, a.status)

		if err := a.handleEvent(ctx); err != nil {
			a.screen.Close()
			return err
		}
		if a.err != nil {
			a.screen.Close()
			return a.err
		}
	}

	a.screen.Close()
	return nil
}

// Close releases the terminal. Safe to call after Run.
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Close()
	}
}

// handleEvent processes a single terminal event.
func (a *App) handleEvent(ctx context.Context) error {
	switch ev := a.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return a.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		return a.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (a *App) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	width := a.controller.State().Board().Width

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false

	case tcell.KeyLeft:
		if a.cursor > 0 {
			a.cursor--
		}
	case tcell.KeyRight:
		if a.cursor < width-1 {
			a.cursor++
		}
	case tcell.KeyEnter:
		return a.controller.ColumnSelected(ctx, a.cursor)

	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == ' ':
			return a.controller.ColumnSelected(ctx, a.cursor)
		case r >= '1' && r <= '9' && int(r-'1') < width:
			return a.controller.ColumnSelected(ctx, int(r-'1'))
		case r == 'r' || r == 'R':
			return a.controller.Reset(ctx)
		case r == 'q' || r == 'Q':
			a.running = false
		}
	}

	return nil
}

// handleMouseEvent drops into the clicked column.
func (a *App) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) error {
	if ev.Buttons()&tcell.Button1 == 0 {
		return nil
	}

	x, y := ev.Position()
	column := a.renderer.ColumnAt(a.controller.State().Board(), x, y)
	if column < 0 {
		return nil
	}

	a.cursor = column
	return a.controller.ColumnSelected(ctx, column)
}

// PiecePlaced implements game.Listener. It plays the drop animation and
// then sends the confirmation the controller is suspended on. Input that
// arrived mid-animation is stale and gets drained before the game resumes.
func (a *App) PiecePlaced(player game.Player, row, column int) {
	a.renderer.AnimateDrop(a.controller.State().Board(), player, row, column)
	a.drainPendingInput()

	if err := a.controller.PlacementConfirmed(a.ctx); err != nil {
		a.err = fmt.Errorf("confirm placement: %w", err)
		a.running = false
	}
}

// TurnChanged implements game.Listener.
func (a *App) TurnChanged(player game.Player) {
	a.status = waitingStatus(player)
}

// GameOver implements game.Listener.
func (a *App) GameOver(result game.Result) {
	if result.Outcome == game.OutcomeWin {
		a.status = fmt.Sprintf("%s wins! Press R for a new game.", playerLabel(result.Winner))
		return
	}
	a.status = "Tie game. Press R for a new game."
}

// BoardCleared implements game.Listener.
func (a *App) BoardCleared() {
	a.cursor = a.controller.State().Board().Width / 2
}

// drainPendingInput discards events buffered while a piece was falling,
// keeping resize handling intact.
func (a *App) drainPendingInput() {
	for a.screen.HasPendingEvent() {
		if _, ok := a.screen.PollEvent().(*tcell.EventResize); ok {
			a.screen.Sync()
		}
	}
}

func waitingStatus(player game.Player) string {
	return fmt.Sprintf("%s to move. Arrows + Enter, 1-9, or click a column. R resets, Q quits.", playerLabel(player))
}

func playerLabel(player game.Player) string {
	if player == game.Player1 {
		return "Player 1"
	}
	return "Player 2"
}
