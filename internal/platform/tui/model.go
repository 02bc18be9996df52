package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/riipai/internal/core"
	"github.com/vovakirdan/riipai/internal/gesture"
	"github.com/vovakirdan/riipai/internal/history"
	"github.com/vovakirdan/riipai/internal/session"
	"github.com/vovakirdan/riipai/internal/solver"
)

// boardTop is the screen row the tile board starts on: title, stats, blank.
const boardTop = 3

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	bestStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// Options configures a puzzle Model.
type Options struct {
	Config core.RuntimeConfig
	Store  *history.Store
	Clock  session.Clock
	Logger *log.Logger
	User   string // shown in the title for SSH sessions
}

// Model is the Bubble Tea model for the puzzle.
type Model struct {
	ctrl       *session.Controller
	store      *history.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	screen     *core.Screen
	user       string
	cursor     int
	hint       int
	message    string
	tickGen    int
	isBest     bool
	showScores bool
	scoreboard ScoreboardModel
	quitting   bool
}

// NewModel creates a puzzle model and deals the first hand.
func NewModel(opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	store := opts.Store
	if store == nil {
		store = history.New(history.NewMemoryKV(), history.Options{Logger: opts.Logger})
	}

	ctrl := session.New(session.Options{
		Clock:    opts.Clock,
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
		HandSize: cfg.HandSize,
		Modality: gesture.ModalityFor(cfg.Input, cfg.Mouse),
		Recorder: store,
		Logger:   opts.Logger,
	})
	ctrl.Start()

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		ctrl:    ctrl,
		store:   store,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		screen:  core.NewScreen(cfg.ScreenW, boardHeight(handGrid(cfg.ScreenW), cfg.HandSize)),
		user:    opts.User,
		hint:    gesture.NoTarget,
		tickGen: 1,
	}
}

// Init starts the timer display.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m = m.handleResize(wsm)
		if m.showScores {
			sb, _ := m.scoreboard.Update(wsm)
			m.scoreboard = sb.(ScoreboardModel)
		}
		return m, nil
	}

	if m.showScores {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case TickMsg:
		// Only the current session's ticks keep the loop alive.
		if msg.Gen != m.tickGen || m.ctrl.State() != session.StateRunning {
			return m, nil
		}
		return m, tickCmd(m.config.TickInterval, m.tickGen)
	}
	return m, nil
}

func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	m.scoreboard = sb.(ScoreboardModel)
	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.showScores = false
		return m, nil
	}
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m
}

// newHand deals a fresh hand and arms a new tick loop.
func (m Model) newHand() (Model, tea.Cmd) {
	m.ctrl.Start()
	m.cursor = 0
	m.hint = gesture.NoTarget
	m.message = ""
	m.isBest = false
	m.tickGen++
	return m, tickCmd(m.config.TickInterval, m.tickGen)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		m.ctrl.Quit()
		m.quitting = true
		return m, tea.Quit
	}

	if m.ctrl.State() != session.StateRunning {
		switch action {
		case core.ActionNew, core.ActionConfirm, core.ActionGrab:
			return m.newHand()
		case core.ActionScores:
			m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.scoreboard.embedded = true
			m.showScores = true
		case core.ActionAbandon:
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	v := m.ctrl.View()
	n := len(v.Hand)
	dragMode := v.Modality == gesture.ModalityDrag

	switch action {
	case core.ActionLeft, core.ActionRight:
		if action == core.ActionLeft {
			m.cursor = core.Clamp(m.cursor-1, 0, n-1)
		} else {
			m.cursor = core.Clamp(m.cursor+1, 0, n-1)
		}
		if v.Dragging >= 0 {
			m.ctrl.Handle(gesture.DragOver(m.cursor))
		}
	case core.ActionGrab, core.ActionConfirm:
		switch {
		case !dragMode:
			m.apply(gesture.Select(m.cursor))
		case v.Dragging >= 0:
			m.apply(gesture.Drop(m.cursor))
		case action == core.ActionGrab:
			m.ctrl.Handle(gesture.DragStart(m.cursor))
		}
	case core.ActionCancel:
		m.ctrl.Handle(gesture.Cancel())
	case core.ActionHint:
		m = m.showHint()
	case core.ActionNew:
		return m.newHand()
	case core.ActionAbandon:
		m.ctrl.Quit()
		m.hint = gesture.NoTarget
		m.message = "Hand abandoned."
	}
	return m, nil
}

// handleMouse maps pointer events onto gesture events for the hand.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.ctrl.State() != session.StateRunning {
		return m
	}
	v := m.ctrl.View()
	rects := handGrid(m.config.ScreenW).Rects(len(v.Hand))
	idx := core.HitTest(hitRects(rects), msg.X, msg.Y-boardTop)

	if v.Modality == gesture.ModalityTap {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if idx >= 0 {
				m.cursor = idx
			}
			m.apply(gesture.Select(idx))
		}
		return m
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			if idx >= 0 {
				m.cursor = idx
			}
			m.ctrl.Handle(gesture.DragStart(idx))
		}
	case tea.MouseActionMotion:
		if v.Dragging >= 0 {
			m.ctrl.Handle(gesture.DragOver(idx))
		}
	case tea.MouseActionRelease:
		if v.Dragging >= 0 {
			if idx >= 0 {
				m.cursor = idx
			}
			m.apply(gesture.Drop(idx))
		}
	}
	return m
}

// apply sends ev to the controller and updates hint and result state when a
// move lands.
func (m *Model) apply(ev gesture.Event) {
	if !m.ctrl.Handle(ev) {
		return
	}
	m.hint = gesture.NoTarget
	m.message = ""
	if m.ctrl.State() != session.StateSolved {
		return
	}
	res, _ := m.ctrl.Result()
	if best, ok := m.store.Best(); ok && best.ID == res.ID {
		m.isBest = true
	}
}

func (m Model) showHint() Model {
	steps := solver.Steps(m.ctrl.View().Hand)
	if len(steps) == 0 {
		return m
	}
	next := steps[0]
	m.hint = next.From
	m.cursor = next.From
	m.message = fmt.Sprintf("Hint: move tile %d to position %d (%d moves to go)", next.From+1, next.To+1, len(steps))
	return m
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	v := m.ctrl.View()

	var b strings.Builder
	title := "riipai"
	if m.user != "" {
		title += " - " + m.user
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(statsStyle.Render(fmt.Sprintf("Moves %d   Par %d   Time %.1fs   Input %s",
		v.Moves, v.Par, v.Elapsed.Seconds(), v.Modality)))
	b.WriteString("\n\n")

	switch v.State {
	case session.StateIdle:
		b.WriteString(panelStyle.Render(m.message + "\n\nn: new hand   s: scores   q: exit"))
	default:
		b.WriteString(m.renderBoard(v))
		b.WriteString("\n")
		if v.State == session.StateSolved {
			b.WriteString(m.renderResult(v))
		} else {
			b.WriteString(statusStyle.Render(m.statusLine(v)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderBoard(v session.View) string {
	g := handGrid(m.config.ScreenW)
	m.screen.Resize(m.config.ScreenW, boardHeight(g, len(v.Hand)))

	marks := boardMarks{
		cursor:    gesture.NoTarget,
		hint:      m.hint,
		selected:  v.Selected,
		dragging:  v.Dragging,
		indicator: v.Indicator,
	}
	if v.State == session.StateRunning {
		marks.cursor = m.cursor
	}
	drawHand(m.screen, v.Hand, g.Rects(len(v.Hand)), marks)
	return RenderScreen(m.screen)
}

func (m Model) statusLine(v session.View) string {
	if m.message != "" {
		return m.message
	}
	switch {
	case v.Dragging >= 0:
		return "Move to the target tile and release (or press space)."
	case v.Selected >= 0:
		return "Now pick the destination."
	case v.Modality == gesture.ModalityDrag:
		return "Drag a tile to its new place. Group each suit together in ascending order."
	default:
		return "Select a tile, then its destination. Group each suit together in ascending order."
	}
}

func (m Model) renderResult(v session.View) string {
	res, _ := m.ctrl.Result()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sorted!"))
	if m.isBest {
		b.WriteString("  ")
		b.WriteString(bestStyle.Render("New best!"))
	}
	fmt.Fprintf(&b, "\n\nMoves  %d (par %d)\nTime   %.2fs\nScore  %.2f\n\n", res.Moves, v.Par, res.Time, res.Score)
	b.WriteString(session.ShareText(res, m.isBest))
	b.WriteString("\n\nn/enter: new hand   s: scores   q: exit")
	return panelStyle.Render(b.String())
}

// Run starts the Bubble Tea program for local play.
func Run(opts Options) error {
	model := NewModel(opts)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Config.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)

	_, err := p.Run()
	return err
}
