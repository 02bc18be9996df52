package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/riipai/internal/gesture"
	"github.com/vovakirdan/riipai/internal/history"
	"github.com/vovakirdan/riipai/internal/tiles"
)

var t0 = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

type recorder struct {
	results []history.Result
}

func (r *recorder) Record(res history.Result) { r.results = append(r.results, res) }

func newTestController(m gesture.Modality) (*Controller, *FakeClock, *recorder) {
	clock := NewFakeClock(t0)
	rec := &recorder{}
	c := New(Options{
		Clock:    clock,
		Rand:     rand.New(rand.NewSource(1)),
		Modality: m,
		Recorder: rec,
	})
	return c, clock, rec
}

func TestController_StartDealsUnsortedHand(t *testing.T) {
	c, _, _ := newTestController(gesture.ModalityTap)
	assert.Equal(t, StateIdle, c.State())

	c.Start()

	v := c.View()
	assert.Equal(t, StateRunning, v.State)
	assert.Len(t, v.Hand, tiles.DefaultHandSize)
	assert.False(t, v.Hand.IsSorted())
	assert.Equal(t, 0, v.Moves)
	assert.NotEmpty(t, v.ID)
	assert.Greater(t, c.Par(), 0)
}

func TestController_SmallHandsStartUnsorted(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		c := New(Options{
			Clock:    NewFakeClock(t0),
			Rand:     rand.New(rand.NewSource(seed)),
			HandSize: tiles.MinHandSize,
			Modality: gesture.ModalityTap,
		})
		c.Start()

		v := c.View()
		require.Equal(t, StateRunning, v.State, "seed %d", seed)
		require.Len(t, v.Hand, tiles.MinHandSize)
		require.False(t, v.Hand.IsSorted(), "seed %d dealt %s", seed, v.Hand)
		require.Equal(t, 1, v.Par, "seed %d", seed)
	}
}

func TestController_HandSizeBelowMinimumUsesDefault(t *testing.T) {
	c := New(Options{Clock: NewFakeClock(t0), Rand: rand.New(rand.NewSource(3)), HandSize: 1})
	c.Start()

	assert.Len(t, c.View().Hand, tiles.DefaultHandSize)
}

func TestController_SortedHandStartsSolved(t *testing.T) {
	c, clock, rec := newTestController(gesture.ModalityTap)
	c.StartWith(tiles.MustParseHand("1m 2m 5z"))

	assert.Equal(t, StateSolved, c.State())
	res, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, 0, res.Moves)
	assert.Empty(t, rec.results)

	clock.Advance(time.Second)
	assert.Equal(t, time.Duration(0), c.Elapsed())
	assert.False(t, c.Move(tiles.Move{From: 0, To: 1}))
	assert.False(t, c.Handle(gesture.Select(0)))
}

func TestController_EndToEndSolve(t *testing.T) {
	c, clock, rec := newTestController(gesture.ModalityTap)
	c.StartWith(tiles.MustParseHand("2p 1m 1p"))

	clock.Advance(3500 * time.Millisecond)
	require.True(t, c.Move(tiles.Move{From: 0, To: 2}))

	v := c.View()
	assert.Equal(t, StateSolved, v.State)
	assert.Equal(t, "1m 1p 2p", v.Hand.String())
	assert.Equal(t, 1, v.Moves)

	require.Len(t, rec.results, 1)
	res := rec.results[0]
	assert.Equal(t, 1, res.Moves)
	assert.InDelta(t, 3.5, res.Time, 1e-9)
	assert.InDelta(t, 1*3.5, res.Score, 1e-9)
	assert.Equal(t, []string{"1m", "1p", "2p"}, res.Tiles)

	got, ok := c.Result()
	assert.True(t, ok)
	assert.Equal(t, res, got)
}

func TestController_HandleTapGestures(t *testing.T) {
	c, _, rec := newTestController(gesture.ModalityTap)
	c.StartWith(tiles.MustParseHand("2p 1m 1p"))

	assert.False(t, c.Handle(gesture.Select(0)))
	assert.Equal(t, 0, c.View().Selected)

	assert.True(t, c.Handle(gesture.Select(2)))
	assert.Equal(t, StateSolved, c.State())
	assert.Len(t, rec.results, 1)
}

func TestController_HandleDragGestures(t *testing.T) {
	c, _, _ := newTestController(gesture.ModalityDrag)
	c.StartWith(tiles.MustParseHand("3m 1m 2m 1z"))

	c.Handle(gesture.DragStart(0))
	c.Handle(gesture.DragOver(2))
	v := c.View()
	assert.Equal(t, 0, v.Dragging)
	assert.Equal(t, gesture.Indicator{Target: 2, Side: gesture.SideAfter}, v.Indicator)

	assert.True(t, c.Handle(gesture.Drop(2)))
	assert.Equal(t, "1m 2m 3m 1z", c.View().Hand.String())
	assert.Equal(t, StateSolved, c.State())
}

func TestController_InvalidMovesIgnored(t *testing.T) {
	c, _, _ := newTestController(gesture.ModalityTap)
	c.StartWith(tiles.MustParseHand("2p 1m 1p"))

	assert.False(t, c.Move(tiles.Move{From: 1, To: 1}))
	assert.False(t, c.Move(tiles.Move{From: 0, To: 3}))
	assert.False(t, c.Move(tiles.Move{From: -1, To: 0}))

	v := c.View()
	assert.Equal(t, 0, v.Moves)
	assert.Equal(t, "2p 1m 1p", v.Hand.String())
}

func TestController_QuitRecordsNothing(t *testing.T) {
	c, clock, rec := newTestController(gesture.ModalityTap)
	c.StartWith(tiles.MustParseHand("2p 1m 1p"))
	c.Handle(gesture.Select(0))
	clock.Advance(time.Second)

	c.Quit()

	v := c.View()
	assert.Equal(t, StateIdle, v.State)
	assert.Empty(t, v.Hand)
	assert.Equal(t, gesture.NoTarget, v.Selected)
	assert.Equal(t, time.Duration(0), c.Elapsed())
	assert.Empty(t, rec.results)

	assert.False(t, c.Move(tiles.Move{From: 0, To: 2}))
}

func TestController_SolvedIsTerminal(t *testing.T) {
	c, clock, rec := newTestController(gesture.ModalityTap)
	c.StartWith(tiles.MustParseHand("2p 1m 1p"))
	clock.Advance(2 * time.Second)
	require.True(t, c.Move(tiles.Move{From: 0, To: 2}))

	clock.Advance(10 * time.Second)
	assert.Equal(t, 2*time.Second, c.Elapsed())

	assert.False(t, c.Move(tiles.Move{From: 0, To: 1}))
	assert.False(t, c.Handle(gesture.Select(0)))
	assert.Equal(t, 1, c.View().Moves)
	assert.Len(t, rec.results, 1)

	// Quit after solve is a no-op.
	c.Quit()
	assert.Equal(t, StateSolved, c.State())
}

func TestController_ElapsedWhileRunning(t *testing.T) {
	c, clock, _ := newTestController(gesture.ModalityTap)
	assert.Equal(t, time.Duration(0), c.Elapsed())

	c.StartWith(tiles.MustParseHand("2p 1m 1p"))
	clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, c.Elapsed())
}

func TestController_RestartDiscardsSession(t *testing.T) {
	c, clock, rec := newTestController(gesture.ModalityTap)
	c.StartWith(tiles.MustParseHand("2p 1m 1p"))
	first := c.ID()
	c.Move(tiles.Move{From: 1, To: 2})
	clock.Advance(time.Second)

	c.StartWith(tiles.MustParseHand("3m 2m 1m"))

	v := c.View()
	assert.NotEqual(t, first, v.ID)
	assert.Equal(t, 0, v.Moves)
	assert.Equal(t, 2, v.Par)
	assert.Equal(t, time.Duration(0), v.Elapsed)
	assert.Empty(t, rec.results)
}

func TestController_ViewIsACopy(t *testing.T) {
	c, _, _ := newTestController(gesture.ModalityTap)
	c.StartWith(tiles.MustParseHand("2p 1m 1p"))

	v := c.View()
	v.Hand[0] = tiles.MustParse("9s")

	assert.Equal(t, "2p 1m 1p", c.View().Hand.String())
}

func TestShareText(t *testing.T) {
	r := history.Result{Moves: 3, Time: 4.256, Score: 12.768, Tiles: []string{"1m", "2m"}}

	assert.Equal(t, "riipai: sorted in 3 moves, 4.26s, score 12.77\n1m 2m", ShareText(r, false))
	assert.Contains(t, ShareText(r, true), "(new best!)")
}
