// Package solver computes the fewest moves needed to sort a hand and a move
// sequence that achieves it.
//
// A sorted hand is a hand ordered by (suit position, rank) for some ordering
// of the four suits. Tiles that never move must already appear in that order,
// so the minimum number of moves is the hand length minus the longest
// non-decreasing subsequence of keys, maximized over all 24 suit orderings.
package solver

import (
	"sort"

	"github.com/vovakirdan/riipai/internal/tiles"
)

// Order is a permutation of the four suits.
type Order [tiles.SuitCount]tiles.Suit

// String returns the suit codes joined with dashes, e.g. "m-p-s-z".
func (o Order) String() string {
	b := make([]byte, 0, 2*tiles.SuitCount-1)
	for i, s := range o {
		if i > 0 {
			b = append(b, '-')
		}
		b = append(b, s.Code())
	}
	return string(b)
}

// Solution describes the cheapest way to sort a hand.
type Solution struct {
	Moves int   // minimum number of moves
	Order Order // suit ordering of the target arrangement
	Keep  []int // indices of tiles that stay in place, ascending
}

// orders lists all permutations of the suits in lexicographic order,
// starting with the canonical m-p-s-z.
var orders = permutations()

func permutations() []Order {
	var out []Order
	var walk func(cur []tiles.Suit, used [tiles.SuitCount]bool)
	walk = func(cur []tiles.Suit, used [tiles.SuitCount]bool) {
		if len(cur) == tiles.SuitCount {
			var o Order
			copy(o[:], cur)
			out = append(out, o)
			return
		}
		for _, s := range tiles.Suits {
			if used[s] {
				continue
			}
			used[s] = true
			walk(append(cur, s), used)
			used[s] = false
		}
	}
	walk(make([]tiles.Suit, 0, tiles.SuitCount), [tiles.SuitCount]bool{})
	return out
}

// keys maps each tile to its sort key under the given suit ordering.
func keys(h tiles.Hand, o Order) []int {
	var pos [tiles.SuitCount]int
	for i, s := range o {
		pos[s] = i
	}
	out := make([]int, len(h))
	for i, t := range h {
		out[i] = pos[t.Suit]*10 + int(t.Rank)
	}
	return out
}

// longestNonDecreasing returns the indices of a longest non-decreasing
// subsequence of a, in O(n log n).
func longestNonDecreasing(a []int) []int {
	if len(a) == 0 {
		return nil
	}

	var tails []int // tails[k] = index of the smallest tail of a run of length k+1
	parent := make([]int, len(a))

	for i, v := range a {
		// First run whose tail is strictly greater than v; equal keys extend.
		k := sort.Search(len(tails), func(j int) bool { return a[tails[j]] > v })
		if k > 0 {
			parent[i] = tails[k-1]
		} else {
			parent[i] = -1
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}

	seq := make([]int, len(tails))
	for i, k := tails[len(tails)-1], len(tails)-1; k >= 0; i, k = parent[i], k-1 {
		seq[k] = i
	}
	return seq
}

// MinMoves returns the minimum number of moves needed to sort h. Ties between
// suit orderings go to the first ordering in lexicographic suit order.
func MinMoves(h tiles.Hand) Solution {
	var best Solution
	for i, o := range orders {
		keep := longestNonDecreasing(keys(h, o))
		moves := len(h) - len(keep)
		if i == 0 || moves < best.Moves {
			best = Solution{Moves: moves, Order: o, Keep: keep}
		}
	}
	return best
}

// Steps returns a shortest sequence of moves that sorts h. Applying the
// moves in order with Hand.Apply yields a hand for which IsSorted is true.
func Steps(h tiles.Hand) []tiles.Move {
	sol := MinMoves(h)
	if sol.Moves == 0 {
		return nil
	}

	type item struct {
		key    int
		placed bool
	}
	k := keys(h, sol.Order)
	cur := make([]item, len(h))
	for i := range h {
		cur[i] = item{key: k[i]}
	}
	for _, i := range sol.Keep {
		cur[i].placed = true
	}

	moves := make([]tiles.Move, 0, sol.Moves)
	for {
		from := -1
		for i, it := range cur {
			if !it.placed {
				from = i
				break
			}
		}
		if from < 0 {
			break
		}

		it := cur[from]
		rest := append(append(make([]item, 0, len(cur)), cur[:from]...), cur[from+1:]...)

		// Insert before the first placed tile with a larger key, so placed
		// tiles stay in non-decreasing order.
		to := len(rest)
		for j, r := range rest {
			if r.placed && r.key > it.key {
				to = j
				break
			}
		}

		it.placed = true
		cur = append(rest[:to], append([]item{it}, rest[to:]...)...)
		if to != from {
			moves = append(moves, tiles.Move{From: from, To: to})
		}
	}
	return moves
}
