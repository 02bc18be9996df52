// Package session runs one puzzle attempt at a time: it deals a hand, feeds
// input through a gesture translator, applies moves, detects the solved
// state and records the result.
package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/riipai/internal/gesture"
	"github.com/vovakirdan/riipai/internal/history"
	"github.com/vovakirdan/riipai/internal/solver"
	"github.com/vovakirdan/riipai/internal/tiles"
)

// State is the lifecycle state of a controller.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateSolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// Recorder receives the result of every solved session.
type Recorder interface {
	Record(history.Result)
}

// maxRedeals bounds how often Start re-deals a hand that is already sorted.
const maxRedeals = 1000

// Options configures a Controller.
type Options struct {
	Clock    Clock
	Rand     *rand.Rand
	HandSize int
	Modality gesture.Modality
	Recorder Recorder
	Logger   *log.Logger
}

// Controller owns the state of the current session.
// It is not safe for concurrent use.
type Controller struct {
	clock    Clock
	rng      *rand.Rand
	size     int
	modality gesture.Modality
	recorder Recorder
	logger   *log.Logger

	state     State
	id        string
	dealt     tiles.Hand
	hand      tiles.Hand
	moves     int
	startedAt time.Time
	elapsed   time.Duration // frozen at solve
	par       int
	result    history.Result
	tr        *gesture.Translator
}

// New creates an idle controller.
func New(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.HandSize < tiles.MinHandSize {
		opts.HandSize = tiles.DefaultHandSize
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Controller{
		clock:    opts.Clock,
		rng:      opts.Rand,
		size:     opts.HandSize,
		modality: opts.Modality,
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}
}

// Start deals a fresh hand and begins a session, discarding any current
// one. Hands that happen to be dealt already sorted are re-dealt.
func (c *Controller) Start() {
	hand := tiles.Deal(c.rng, c.size)
	for i := 0; i < maxRedeals && hand.IsSorted(); i++ {
		hand = tiles.Deal(c.rng, c.size)
	}
	c.StartWith(hand)
}

// StartWith begins a session from the given hand. A hand that is already
// sorted has nothing to solve: the session goes straight to Solved with
// zero moves and no result is recorded.
func (c *Controller) StartWith(hand tiles.Hand) {
	if c.state == StateRunning {
		c.logger.Debug("session discarded", "id", c.id, "moves", c.moves)
	}
	c.state = StateRunning
	c.id = uuid.NewString()
	c.dealt = hand.Clone()
	c.hand = hand.Clone()
	c.moves = 0
	c.startedAt = c.clock.Now()
	c.elapsed = 0
	c.par = solver.MinMoves(hand).Moves
	c.result = history.Result{}
	c.tr = gesture.NewTranslator(c.modality, len(hand))

	if c.hand.IsSorted() {
		c.state = StateSolved
		c.result = history.NewResult(c.hand, 0, 0, c.startedAt)
		c.logger.Info("hand dealt sorted", "id", c.id, "hand", c.hand.String())
		return
	}

	c.logger.Info("session started", "id", c.id, "hand", c.hand.String(), "par", c.par)
}

// Handle routes an input event through the gesture translator and applies
// any move it produces. It reports whether a move was applied.
func (c *Controller) Handle(ev gesture.Event) bool {
	if c.state != StateRunning {
		return false
	}
	m, ok := c.tr.Handle(ev)
	if !ok {
		return false
	}
	return c.Move(m)
}

// Move applies m to the hand. Moves outside a running session and no-op or
// out-of-range moves change nothing and report false.
func (c *Controller) Move(m tiles.Move) bool {
	if c.state != StateRunning {
		return false
	}
	next, ok := c.hand.Apply(m)
	if !ok {
		return false
	}
	c.hand = next
	c.moves++

	if c.hand.IsSorted() {
		c.solve()
	}
	return true
}

func (c *Controller) solve() {
	now := c.clock.Now()
	c.elapsed = now.Sub(c.startedAt)
	c.state = StateSolved
	c.tr.Reset()
	c.result = history.NewResult(c.hand, c.moves, c.elapsed, now)

	c.logger.Info("session solved",
		"id", c.id,
		"moves", c.moves,
		"par", c.par,
		"elapsed", c.elapsed.Round(time.Millisecond),
		"score", c.result.Score,
	)

	if c.recorder != nil {
		c.recorder.Record(c.result)
	}
}

// Quit abandons a running session without recording a result.
func (c *Controller) Quit() {
	if c.state != StateRunning {
		return
	}
	c.logger.Info("session abandoned", "id", c.id, "moves", c.moves)
	c.state = StateIdle
	c.hand = nil
	c.dealt = nil
	c.moves = 0
	c.par = 0
	c.startedAt = time.Time{}
	c.elapsed = 0
	c.tr.Reset()
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// ID returns the current session id, empty before the first Start.
func (c *Controller) ID() string {
	return c.id
}

// Elapsed returns the time since the session started, frozen once solved.
func (c *Controller) Elapsed() time.Duration {
	switch c.state {
	case StateRunning:
		return c.clock.Now().Sub(c.startedAt)
	case StateSolved:
		return c.elapsed
	default:
		return 0
	}
}

// Par returns the fewest moves that sort the dealt hand.
func (c *Controller) Par() int {
	return c.par
}

// Dealt returns a copy of the hand as it was dealt.
func (c *Controller) Dealt() tiles.Hand {
	return c.dealt.Clone()
}

// Result returns the result of a solved session.
func (c *Controller) Result() (history.Result, bool) {
	return c.result, c.state == StateSolved
}

// View is an immutable snapshot for rendering.
type View struct {
	ID        string
	State     State
	Hand      tiles.Hand
	Moves     int
	Par       int
	Elapsed   time.Duration
	Modality  gesture.Modality
	Selected  int
	Dragging  int
	Indicator gesture.Indicator
}

// View returns a snapshot of the current session.
func (c *Controller) View() View {
	v := View{
		ID:        c.id,
		State:     c.state,
		Hand:      c.hand.Clone(),
		Moves:     c.moves,
		Par:       c.par,
		Elapsed:   c.Elapsed(),
		Modality:  c.modality,
		Selected:  gesture.NoTarget,
		Dragging:  gesture.NoTarget,
		Indicator: gesture.Indicator{Target: gesture.NoTarget},
	}
	if c.tr != nil && c.state == StateRunning {
		if i, ok := c.tr.Selected(); ok {
			v.Selected = i
		}
		if i, ok := c.tr.Dragging(); ok {
			v.Dragging = i
		}
		v.Indicator = c.tr.DropIndicator()
	}
	return v
}
