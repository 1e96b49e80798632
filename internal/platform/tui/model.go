package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/bricks"
	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/logging"
	"github.com/vovakirdan/bricks/internal/storage"
)

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(run storage.Run) (storage.Run, error)
}

// Options configures the game screen.
type Options struct {
	Runtime      core.RuntimeConfig
	Arena        config.ArenaConfig
	ReleaseAfter time.Duration // Synthetic key release delay
	Pack         string        // Level pack name recorded with each run
}

// Model is the Bubble Tea model hosting one brick session.
type Model struct {
	session  *bricks.Session
	screen   *core.Screen
	view     core.Viewport
	recorder RunRecorder
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	opts     Options

	gen      int    // Current tick chain; bumped to cancel pending ticks
	held     [2]int // Press sequence per direction
	quitting bool
}

// ArenaFor returns the viewport and arena pixel size for a terminal size.
// One row at the bottom is kept for the help line.
func ArenaFor(cfg config.ArenaConfig, cols, rows int) (core.Viewport, int, int) {
	view := core.Viewport{OriginY: cfg.HUDRows, CellW: cfg.CellWidth, CellH: cfg.CellHeight}
	arenaRows := rows - cfg.HUDRows - 1
	if arenaRows < 1 {
		arenaRows = 1
	}
	w, h := view.ArenaSize(cols, arenaRows)
	return view, w, h
}

// NewModel creates a model around a session sized for opts.Runtime.
// recorder and logger may be nil.
func NewModel(session *bricks.Session, recorder RunRecorder, logger *log.Logger, opts Options) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.ReleaseAfter <= 0 {
		opts.ReleaseAfter = 180 * time.Millisecond
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	view, _, _ := ArenaFor(opts.Arena, opts.Runtime.ScreenW, opts.Runtime.ScreenH)

	h := help.New()
	h.ShowAll = false

	return Model{
		session:  session,
		screen:   core.NewScreen(max(opts.Runtime.ScreenW, 1), max(opts.Runtime.ScreenH-1, 1)),
		view:     view,
		recorder: recorder,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     h,
		opts:     opts,
	}
}

// Init does not start ticking; the session waits for a launch.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case releaseMsg:
		if m.held[msg.dir] == msg.seq {
			m.session.SetIntent(msg.dir, false)
		}
		return m, nil
	}

	return m, nil
}

// handleKey maps keyboard input to session calls.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionLeft:
		return m.press(bricks.DirLeft, bricks.DirRight)

	case core.ActionRight:
		return m.press(bricks.DirRight, bricks.DirLeft)

	case core.ActionLaunch:
		tr, ok := m.session.Launch()
		if !ok {
			return m, nil
		}
		m.logTransition(tr)
		m.gen++
		return m, tickCmd(m.opts.Runtime.FrameInterval(), m.gen)

	case core.ActionReset:
		m.logTransition(m.session.Reset())
		m.gen++
	}

	return m, nil
}

// press holds dir until no repeat arrives within ReleaseAfter.
// The opposite direction is released: a new key means the old one is up.
func (m Model) press(dir, opposite bricks.Direction) (tea.Model, tea.Cmd) {
	m.session.SetIntent(opposite, false)
	m.held[opposite]++
	m.session.SetIntent(dir, true)
	m.held[dir]++
	return m, releaseCmd(m.opts.ReleaseAfter, dir, m.held[dir])
}

// handleResize resizes the screen and the arena.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-1, 1))
	m.help.Width = msg.Width

	view, w, h := ArenaFor(m.opts.Arena, msg.Width, msg.Height)
	m.view = view
	m.session.Resize(w, h)
	m.logger.Debug("arena resized", "cols", msg.Width, "rows", msg.Height, "width", w, "height", h)
	return m, nil
}

// handleTick runs one simulation step and schedules the next while running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.session.Running() {
		return m, nil
	}

	res := m.session.Tick()
	for _, tr := range res.Transitions {
		m.logTransition(tr)
	}
	if res.End != nil {
		m.saveRun(*res.End)
	}

	if !m.session.Running() {
		return m, nil
	}
	return m, tickCmd(m.opts.Runtime.FrameInterval(), m.gen)
}

func (m Model) logTransition(tr bricks.Transition) {
	m.logger.Info("state changed", "from", tr.From, "to", tr.To, "round", tr.Level+1)
}

// saveRun records a finished run. Failures are logged; the game goes on.
func (m Model) saveRun(end bricks.RunEnd) {
	if m.recorder == nil {
		return
	}
	run, err := m.recorder.SaveRun(RunRecord(end, m.opts.Pack))
	if err != nil {
		m.logger.Error("cannot save run", "err", err)
		return
	}
	m.logger.Info("run saved", "run_id", run.RunID, "outcome", run.Outcome, "round", run.LevelReached, "ticks", run.Ticks)
}

// RunRecord converts a finished run to a history record.
func RunRecord(end bricks.RunEnd, pack string) storage.Run {
	outcome := storage.OutcomeLost
	if end.Outcome == bricks.StateWon {
		outcome = storage.OutcomeWon
	}
	return storage.Run{
		Outcome:      outcome,
		LevelReached: end.LevelReached,
		Ticks:        int64(end.Ticks), //#nosec G115 -- tick counts stay far below int64 max
		Pack:         pack,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.session.Snapshot(), m.view)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(session *bricks.Session, recorder RunRecorder, logger *log.Logger, opts Options) error {
	model := NewModel(session, recorder, logger, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
