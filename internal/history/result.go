// Package history keeps the list of completed puzzle results.
package history

import (
	"strings"
	"time"

	"github.com/vovakirdan/riipai/internal/tiles"
)

// DefaultKey is the key the result list is stored under.
const DefaultKey = "riipai.results"

// DefaultMaxResults bounds the stored list.
const DefaultMaxResults = 50

// Result is one solved puzzle. Lower scores are better.
type Result struct {
	ID    int64     `json:"id"`
	Moves int       `json:"moves"`
	Time  float64   `json:"time"`
	Score float64   `json:"score"`
	Tiles []string  `json:"tiles"`
	Date  time.Time `json:"date"`
}

// NewResult builds a result for a hand solved in the given number of moves
// after elapsed time. The id is derived from the solve time.
func NewResult(final tiles.Hand, moves int, elapsed time.Duration, at time.Time) Result {
	secs := elapsed.Seconds()
	return Result{
		ID:    at.UnixMilli(),
		Moves: moves,
		Time:  secs,
		Score: Score(moves, elapsed),
		Tiles: final.Codes(),
		Date:  at,
	}
}

// Score is moves multiplied by elapsed seconds.
func Score(moves int, elapsed time.Duration) float64 {
	return float64(moves) * elapsed.Seconds()
}

// UserKey returns the per-user key used by SSH sessions.
func UserKey(base, user string) string {
	if user == "" {
		return base
	}
	return base + "." + user
}

// UserFromKey reverses UserKey. It reports false for keys that do not
// belong to base; the base key itself yields the empty user.
func UserFromKey(base, key string) (string, bool) {
	if key == base {
		return "", true
	}
	user, ok := strings.CutPrefix(key, base+".")
	if !ok || user == "" {
		return "", false
	}
	return user, true
}

// Stats summarises a result list.
type Stats struct {
	Count      int
	BestScore  float64
	AvgMoves   float64
	AvgElapsed float64
}

// Summarize computes stats over results. Zero results give zero stats.
func Summarize(results []Result) Stats {
	var st Stats
	if len(results) == 0 {
		return st
	}
	var moves, elapsed float64
	for i, r := range results {
		if i == 0 || r.Score < st.BestScore {
			st.BestScore = r.Score
		}
		moves += float64(r.Moves)
		elapsed += r.Time
	}
	st.Count = len(results)
	st.AvgMoves = moves / float64(st.Count)
	st.AvgElapsed = elapsed / float64(st.Count)
	return st
}
