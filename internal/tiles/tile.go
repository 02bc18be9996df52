// Package tiles models mahjong tiles, the four-copy deck, and hands of
// tiles together with the move operator and the sortedness predicate.
// It has no external dependencies so the puzzle rules stay pure and testable.
package tiles

import (
	"fmt"
	"strings"
)

// Suit is the category a tile belongs to.
type Suit uint8

const (
	SuitCharacters Suit = iota // m - manzu
	SuitDots                   // p - pinzu
	SuitBamboo                 // s - souzu
	SuitHonors                 // z - winds and dragons
)

// SuitCount is the number of distinct suits.
const SuitCount = 4

// Suits lists every suit in canonical order.
var Suits = [SuitCount]Suit{SuitCharacters, SuitDots, SuitBamboo, SuitHonors}

// Code returns the single-letter suit code used in tile codes.
func (s Suit) Code() byte {
	switch s {
	case SuitCharacters:
		return 'm'
	case SuitDots:
		return 'p'
	case SuitBamboo:
		return 's'
	case SuitHonors:
		return 'z'
	default:
		return '?'
	}
}

// String returns a human-readable name for the suit.
func (s Suit) String() string {
	switch s {
	case SuitCharacters:
		return "characters"
	case SuitDots:
		return "dots"
	case SuitBamboo:
		return "bamboo"
	case SuitHonors:
		return "honors"
	default:
		return "unknown"
	}
}

// MaxRank returns the highest rank a tile of this suit can have.
func (s Suit) MaxRank() int {
	if s == SuitHonors {
		return 7
	}
	return 9
}

func suitFromCode(c byte) (Suit, bool) {
	switch c {
	case 'm':
		return SuitCharacters, true
	case 'p':
		return SuitDots, true
	case 's':
		return SuitBamboo, true
	case 'z':
		return SuitHonors, true
	}
	return 0, false
}

// Tile is an immutable tile value. Two tiles are equal when rank and suit match;
// the four physical copies of a tile type are indistinguishable.
type Tile struct {
	Rank uint8
	Suit Suit
}

// New returns the tile with the given rank and suit.
func New(rank int, suit Suit) (Tile, error) {
	t := Tile{Rank: uint8(rank), Suit: suit}
	if rank < 1 || !t.Valid() {
		return Tile{}, fmt.Errorf("tiles: no tile with rank %d in suit %s", rank, suit)
	}
	return t, nil
}

// MustParse is like ParseTile but panics on error. Intended for tests and literals.
func MustParse(code string) Tile {
	t, err := ParseTile(code)
	if err != nil {
		panic(err)
	}
	return t
}

// Valid reports whether the tile belongs to the 34-type tile set.
func (t Tile) Valid() bool {
	if t.Suit > SuitHonors {
		return false
	}
	return t.Rank >= 1 && int(t.Rank) <= t.Suit.MaxRank()
}

// Code returns the canonical two-character code, e.g. "5p" or "7z".
func (t Tile) Code() string {
	return string([]byte{'0' + t.Rank, t.Suit.Code()})
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	return t.Code()
}

var honorNames = [...]string{"East", "South", "West", "North", "White", "Green", "Red"}

// Name returns a descriptive name such as "3 bamboo" or "Red".
func (t Tile) Name() string {
	if t.Suit == SuitHonors && t.Valid() {
		return honorNames[t.Rank-1]
	}
	return fmt.Sprintf("%d %s", t.Rank, t.Suit)
}

// ParseTile parses a tile code like "1m", "9s" or "7z".
func ParseTile(code string) (Tile, error) {
	code = strings.TrimSpace(code)
	if len(code) != 2 || code[0] < '1' || code[0] > '9' {
		return Tile{}, fmt.Errorf("tiles: invalid tile code %q", code)
	}
	suit, ok := suitFromCode(code[1])
	if !ok {
		return Tile{}, fmt.Errorf("tiles: invalid suit in tile code %q", code)
	}
	t := Tile{Rank: code[0] - '0', Suit: suit}
	if !t.Valid() {
		return Tile{}, fmt.Errorf("tiles: rank out of range in tile code %q", code)
	}
	return t, nil
}

// AllTypes returns the 34 distinct tile types in canonical order.
func AllTypes() []Tile {
	types := make([]Tile, 0, TypeCount)
	for _, s := range Suits {
		for r := 1; r <= s.MaxRank(); r++ {
			types = append(types, Tile{Rank: uint8(r), Suit: s})
		}
	}
	return types
}
