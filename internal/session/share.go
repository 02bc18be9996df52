package session

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/riipai/internal/history"
)

// ShareText returns a short plain-text summary of a result, suitable for
// pasting elsewhere.
func ShareText(r history.Result, isBest bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "riipai: sorted in %d moves, %.2fs, score %.2f", r.Moves, r.Time, r.Score)
	if isBest {
		b.WriteString(" (new best!)")
	}
	if len(r.Tiles) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(r.Tiles, " "))
	}
	return b.String()
}
