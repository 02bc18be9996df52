package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/riipai/internal/core"
	"github.com/vovakirdan/riipai/internal/gesture"
	"github.com/vovakirdan/riipai/internal/tiles"
)

// Tile geometry in screen cells.
const (
	tileW = 5
	tileH = 4
	gapX  = 1
	gapY  = 2 // one row for the cursor below, one for a lifted tile above
)

// colorStyles maps cell roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorMan:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorPin:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorSou:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorHonor:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorDragging:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorHint:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorIndicator: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// handGrid returns the tile layout for a board of the given width.
func handGrid(width int) core.Grid {
	g := core.Grid{X: 1, Y: 1, CellW: tileW, CellH: tileH, GapX: gapX, GapY: gapY}
	g.Cols = g.ColsFor(width - 2)
	return g
}

// boardHeight returns the rows needed to draw n tiles in grid g.
func boardHeight(g core.Grid, n int) int {
	rows := (n + g.Cols - 1) / g.Cols
	return core.Max(rows, 1) * (tileH + gapY)
}

// hitRects extends each tile upward by one row so lifted tiles stay clickable.
func hitRects(rects []core.Rect) []core.Rect {
	out := make([]core.Rect, len(rects))
	for i, r := range rects {
		out[i] = core.Rect{X: r.X, Y: r.Y - 1, W: r.W, H: r.H + 1}
	}
	return out
}

var suitColors = [tiles.SuitCount]core.Color{
	tiles.SuitCharacters: core.ColorMan,
	tiles.SuitDots:       core.ColorPin,
	tiles.SuitBamboo:     core.ColorSou,
	tiles.SuitHonors:     core.ColorHonor,
}

var honorFaces = [...]string{"E", "S", "W", "N", "Wh", "Gr", "Rd"}

// tileFace returns the two text lines printed inside a tile.
func tileFace(t tiles.Tile) (top, bottom string) {
	switch t.Suit {
	case tiles.SuitCharacters:
		return string(rune('0'+t.Rank)), "man"
	case tiles.SuitDots:
		return string(rune('0'+t.Rank)), "pin"
	case tiles.SuitBamboo:
		return string(rune('0'+t.Rank)), "sou"
	}
	if t.Rank >= 1 && int(t.Rank) <= len(honorFaces) {
		if t.Rank <= 4 {
			return honorFaces[t.Rank-1], "wnd"
		}
		return honorFaces[t.Rank-1], "drg"
	}
	return "?", "?"
}

// center pads s to width w.
func center(s string, w int) string {
	n := len([]rune(s))
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}

// boardMarks are the per-tile decorations of one frame.
type boardMarks struct {
	cursor    int // keyboard cursor or NoTarget
	hint      int // tile the hint suggests moving or NoTarget
	selected  int
	dragging  int
	indicator gesture.Indicator
}

// drawHand draws the tiles, their decorations and the drop indicator.
func drawHand(s *core.Screen, hand tiles.Hand, rects []core.Rect, mk boardMarks) {
	s.Clear()
	for i, t := range hand {
		if i >= len(rects) {
			break
		}
		r := rects[i]
		faceColor := suitColors[t.Suit%tiles.SuitCount]
		border := core.ColorBorder

		switch i {
		case mk.selected:
			r = r.Offset(0, -1)
			border = core.ColorSelected
		case mk.dragging:
			r = r.Offset(0, -1)
			border = core.ColorDragging
		case mk.hint:
			border = core.ColorHint
		}

		s.DrawBox(r, border)
		top, bottom := tileFace(t)
		s.DrawText(r.X+1, r.Y+1, center(top, tileW-2), faceColor)
		s.DrawText(r.X+1, r.Y+2, center(bottom, tileW-2), faceColor)

		if i == mk.cursor {
			s.DrawText(rects[i].X, rects[i].Bottom(), center("▲", tileW), core.ColorCursor)
		}
	}

	ind := mk.indicator
	if ind.Target >= 0 && ind.Target < len(rects) {
		r := rects[ind.Target]
		switch ind.Side {
		case gesture.SideBefore:
			s.DrawVLine(r.X-1, r.Y, r.H, '┃', core.ColorIndicator)
		case gesture.SideAfter:
			s.DrawVLine(r.Right(), r.Y, r.H, '┃', core.ColorIndicator)
		}
	}
}
