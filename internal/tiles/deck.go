package tiles

import (
	"fmt"
	"math/rand"
)

// Deck dimensions.
const (
	TypeCount       = 34
	CopiesPerType   = 4
	DeckSize        = TypeCount * CopiesPerType
	DefaultHandSize = 13
	MinHandSize     = 2 // a single tile is always in order
)

// NewDeck builds the full 136-tile multiset in canonical order.
func NewDeck() []Tile {
	deck := make([]Tile, 0, DeckSize)
	for _, t := range AllTypes() {
		for range CopiesPerType {
			deck = append(deck, t)
		}
	}
	return deck
}

// Deal draws n tiles without replacement from a freshly built and shuffled deck.
// The deck is rebuilt on every call so deals never share shuffle state; rng
// decides the permutation and may be seeded for reproducible hands.
//
// Asking for more tiles than the deck holds is a caller bug and panics.
func Deal(rng *rand.Rand, n int) Hand {
	if n < 0 || n > DeckSize {
		panic(fmt.Sprintf("tiles: cannot deal %d tiles from a %d-tile deck", n, DeckSize))
	}

	deck := NewDeck()
	// Fisher-Yates; uniform over permutations of the deck.
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	hand := make(Hand, n)
	copy(hand, deck[:n])
	return hand
}
