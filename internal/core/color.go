package core

// Color is the role of a screen cell. The platform layer maps each role
// to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota

	// Tile faces, one per suit.
	ColorMan
	ColorPin
	ColorSou
	ColorHonor

	ColorBorder    // idle tile outline
	ColorSelected  // tap-selected tile
	ColorDragging  // tile being dragged
	ColorHint      // tile the hint suggests moving
	ColorCursor    // keyboard cursor
	ColorIndicator // drop position marker
)
