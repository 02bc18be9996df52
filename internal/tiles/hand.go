package tiles

import (
	"fmt"
	"strings"
)

// Hand is an ordered sequence of tiles. Order is player-controlled.
type Hand []Tile

// ParseHand parses a list of tile codes. Each element may also hold several
// space- or comma-separated codes, so both {"1m", "2m"} and {"1m 2m"} work.
func ParseHand(codes ...string) (Hand, error) {
	var hand Hand
	for _, c := range codes {
		fields := strings.FieldsFunc(c, func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t'
		})
		for _, f := range fields {
			t, err := ParseTile(f)
			if err != nil {
				return nil, err
			}
			hand = append(hand, t)
		}
	}
	if err := hand.checkCopies(); err != nil {
		return nil, err
	}
	return hand, nil
}

// MustParseHand is like ParseHand but panics on error.
func MustParseHand(codes ...string) Hand {
	h, err := ParseHand(codes...)
	if err != nil {
		panic(err)
	}
	return h
}

// checkCopies rejects hands holding more copies of a type than the deck has.
func (h Hand) checkCopies() error {
	for t, n := range h.Counts() {
		if n > CopiesPerType {
			return fmt.Errorf("tiles: hand holds %d copies of %s, deck has %d", n, t, CopiesPerType)
		}
	}
	return nil
}

// Counts returns how many copies of each tile type the hand holds.
func (h Hand) Counts() map[Tile]int {
	counts := make(map[Tile]int, len(h))
	for _, t := range h {
		counts[t]++
	}
	return counts
}

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	c := make(Hand, len(h))
	copy(c, h)
	return c
}

// Codes returns the tile codes in hand order.
func (h Hand) Codes() []string {
	codes := make([]string, len(h))
	for i, t := range h {
		codes[i] = t.Code()
	}
	return codes
}

// String returns the codes joined with spaces.
func (h Hand) String() string {
	return strings.Join(h.Codes(), " ")
}

// Equal reports whether two hands hold the same tiles in the same order.
func (h Hand) Equal(other Hand) bool {
	if len(h) != len(other) {
		return false
	}
	for i := range h {
		if h[i] != other[i] {
			return false
		}
	}
	return true
}

// Move relocates the tile at From so that it ends up at index To.
// To indexes the sequence after the tile has been removed, which is the
// usual splice behaviour: moving 0 -> 2 in [a b c] yields [b c a].
type Move struct {
	From int
	To   int
}

// Valid reports whether the move changes a hand of length n.
func (m Move) Valid(n int) bool {
	return m.From >= 0 && m.From < n && m.To >= 0 && m.To < n && m.From != m.To
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{From: m.To, To: m.From}
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

// Apply returns a new hand with the move applied. The receiver is never
// modified. Out-of-range and no-op moves return the original hand and false.
func (h Hand) Apply(m Move) (Hand, bool) {
	if !m.Valid(len(h)) {
		return h, false
	}

	out := make(Hand, 0, len(h))
	moved := h[m.From]
	out = append(out, h[:m.From]...)
	out = append(out, h[m.From+1:]...)

	// Insert into the shortened sequence.
	out = append(out, Tile{})
	copy(out[m.To+1:], out[m.To:])
	out[m.To] = moved
	return out, true
}

// IsSorted reports whether the hand is solved: every suit occupies exactly
// one contiguous run, and ranks never decrease inside a run. Runs may appear
// in any suit order. Empty and single-tile hands are sorted.
func (h Hand) IsSorted() bool {
	var seen [SuitCount]bool
	for i := 0; i < len(h); i++ {
		suit := h[i].Suit
		if suit > SuitHonors {
			return false
		}
		if i == 0 || suit != h[i-1].Suit {
			// A new run starts; its suit must not have had a run before.
			if seen[suit] {
				return false
			}
			seen[suit] = true
			continue
		}
		if h[i-1].Rank > h[i].Rank {
			return false
		}
	}
	return true
}
