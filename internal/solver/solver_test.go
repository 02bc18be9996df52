package solver

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/riipai/internal/tiles"
)

func TestOrders(t *testing.T) {
	if len(orders) != 24 {
		t.Fatalf("expected 24 suit orderings, got %d", len(orders))
	}
	if orders[0].String() != "m-p-s-z" {
		t.Errorf("first ordering = %s, expected m-p-s-z", orders[0])
	}
	seen := make(map[Order]bool)
	for _, o := range orders {
		if seen[o] {
			t.Errorf("duplicate ordering %s", o)
		}
		seen[o] = true
	}
}

func TestLongestNonDecreasing(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		length int
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 1},
		{"ascending", []int{1, 2, 3, 4}, 4},
		{"descending", []int{4, 3, 2, 1}, 1},
		{"equal values extend", []int{2, 2, 2}, 3},
		{"mixed", []int{3, 1, 2, 2, 5, 4}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seq := longestNonDecreasing(tc.input)
			if len(seq) != tc.length {
				t.Fatalf("length = %d, expected %d (seq %v)", len(seq), tc.length, seq)
			}
			for i := 1; i < len(seq); i++ {
				if seq[i] <= seq[i-1] {
					t.Errorf("indices not ascending: %v", seq)
				}
				if tc.input[seq[i]] < tc.input[seq[i-1]] {
					t.Errorf("values decrease in %v", seq)
				}
			}
		})
	}
}

func TestMinMoves(t *testing.T) {
	tests := []struct {
		name  string
		hand  string
		moves int
	}{
		{"empty", "", 0},
		{"sorted canonical", "1m 2m 3p 4s 5z", 0},
		{"sorted other order", "1z 2z 1s 1m", 0},
		{"one tile out", "2p 1m 1p", 1},
		{"reversed run", "3m 2m 1m", 2},
		{"split suits", "1m 1p 2m 2p", 1},
		{"duplicates stay", "1m 1m 1m 1m 2m", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hand := tiles.MustParseHand(tc.hand)
			sol := MinMoves(hand)
			if sol.Moves != tc.moves {
				t.Errorf("MinMoves(%v) = %d, expected %d", hand, sol.Moves, tc.moves)
			}
			if len(sol.Keep) != len(hand)-sol.Moves {
				t.Errorf("Keep has %d indices, expected %d", len(sol.Keep), len(hand)-sol.Moves)
			}
		})
	}
}

func TestStepsSortHand(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for i := 0; i < 300; i++ {
		hand := tiles.Deal(rng, tiles.DefaultHandSize)
		sol := MinMoves(hand)
		steps := Steps(hand)

		if len(steps) != sol.Moves {
			t.Fatalf("hand %v: %d steps, expected %d", hand, len(steps), sol.Moves)
		}

		cur := hand
		for _, m := range steps {
			next, ok := cur.Apply(m)
			if !ok {
				t.Fatalf("hand %v: step %v rejected on %v", hand, m, cur)
			}
			cur = next
		}
		if !cur.IsSorted() {
			t.Fatalf("hand %v: steps %v end in unsorted %v", hand, steps, cur)
		}
	}
}

func TestStepsSortedHand(t *testing.T) {
	hand := tiles.MustParseHand("1m 2m 3m 1z")
	if steps := Steps(hand); len(steps) != 0 {
		t.Errorf("sorted hand should need no steps, got %v", steps)
	}
}

func TestStepsExample(t *testing.T) {
	hand := tiles.MustParseHand("2p 1m 1p")
	steps := Steps(hand)
	if len(steps) != 1 {
		t.Fatalf("expected one step, got %v", steps)
	}
	result, _ := hand.Apply(steps[0])
	if !result.IsSorted() {
		t.Errorf("step %v leaves %v unsorted", steps[0], result)
	}
}
