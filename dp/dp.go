// Package dp collects dynamic programming exercises.
package dp

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"github.com/jmcomets/cs-exercises/memoize"
)

// ErrNegativeWeight is returned by Knapsack for a negative capacity or item
// weight.
var ErrNegativeWeight = errors.New("dp: weights cannot be < 0")

// ErrCapacityTooLarge is returned by Knapsack when the capacity cannot index
// a slice.
var ErrCapacityTooLarge = errors.New("dp: max weight does not fit in an int")

type Item[W constraints.Integer] struct {
	Value  W
	Weight W
}

// Knapsack returns the largest total value of items whose total weight does
// not exceed maxWeight, each item being taken at most once.
func Knapsack[W constraints.Integer](items []Item[W], maxWeight W) (W, error) {
	if maxWeight < 0 {
		return 0, fmt.Errorf("%w: max weight %d", ErrNegativeWeight, maxWeight)
	}
	if uint64(maxWeight) >= math.MaxInt {
		return 0, fmt.Errorf("%w: %d", ErrCapacityTooLarge, maxWeight)
	}
	for _, item := range items {
		if item.Weight < 0 {
			return 0, fmt.Errorf("%w: item weight %d", ErrNegativeWeight, item.Weight)
		}
	}
	// best[w] is the best value within weight w using the items seen so far;
	// w goes down so that each item is used once
	best := make([]W, int(maxWeight)+1)
	for _, item := range items {
		if item.Weight > maxWeight {
			continue
		}
		for w := int(maxWeight); w >= int(item.Weight); w-- {
			best[w] = max(best[w], best[w-int(item.Weight)]+item.Value)
		}
	}
	return best[maxWeight], nil
}

// Fibonacci returns the nth Fibonacci number, F(0) = 0 and F(1) = 1. Results
// past F(93) wrap around.
func Fibonacci(n uint64) uint64 {
	var fib memoize.Memoize[uint64, uint64]
	fib = memoize.NewMemoize(func(i uint64) uint64 {
		if i < 2 {
			return i
		}
		return fib.Call(i-2) + fib.Call(i-1)
	})
	return fib.Call(n)
}

type trade struct {
	day     int
	left    int
	holding bool
}

// MaxProfit returns the best profit from at most k transactions on prices,
// one price per day, where a transaction is a buy followed by a later sell
// and transactions do not overlap.
func MaxProfit[P constraints.Integer](prices []P, k int) P {
	var best memoize.Memoize[trade, P]
	best = memoize.NewMemoize(func(s trade) P {
		if s.day == len(prices) {
			return 0
		}
		// do nothing today
		var profit = best.Call(trade{s.day + 1, s.left, s.holding})
		if s.holding {
			profit = max(profit, prices[s.day]+best.Call(trade{s.day + 1, s.left, false}))
		} else if s.left > 0 {
			// sold-prices[s.day] must not go below zero for unsigned P
			if sold := best.Call(trade{s.day + 1, s.left - 1, true}); sold > prices[s.day] {
				profit = max(profit, sold-prices[s.day])
			}
		}
		return profit
	})
	return best.Call(trade{0, max(k, 0), false})
}

// Justify lays the words of text out in lines of at most lineWidth
// characters, picking the line breaks that minimize the total badness. A line
// of width w has badness (lineWidth-w)³, and every line but the last counts
// its trailing space. A word wider than lineWidth gets a line of its own.
//
// With addSpaces, each line of several words, the last one included, is
// padded to exactly lineWidth by widening its gaps from left to right.
func Justify(text string, lineWidth int, addSpaces bool) string {
	words := strings.Fields(text)
	n := len(words)
	// offsets[i] is the number of characters in words[:i]
	offsets := make([]int, n+1)
	for i, word := range words {
		offsets[i+1] = offsets[i] + utf8.RuneCountInString(word)
	}
	width := func(i, j int) int {
		w := offsets[j] - offsets[i] + j - i - 1
		if j < n {
			w++
		}
		return w
	}

	var badness memoize.Memoize[int, int]
	// firstLine returns the end of the best first line for words[i:] and the
	// total badness of the layout starting with it
	firstLine := func(i int) (end, total int) {
		for j := i + 1; j <= n; j++ {
			w := width(i, j)
			if w > lineWidth && j > i+1 {
				break
			}
			b := badness.Call(j)
			if w <= lineWidth {
				gap := lineWidth - w
				b += gap * gap * gap
			}
			if end == 0 || b < total {
				end, total = j, b
			}
		}
		return end, total
	}
	badness = memoize.NewMemoize(func(i int) int {
		if i == n {
			return 0
		}
		_, total := firstLine(i)
		return total
	})

	var b strings.Builder
	for i := 0; i < n; {
		end, _ := firstLine(i)
		if i > 0 {
			b.WriteByte('\n')
		}
		writeLine(&b, words[i:end], lineWidth, addSpaces)
		i = end
	}
	return b.String()
}

func writeLine(b *strings.Builder, words []string, lineWidth int, addSpaces bool) {
	gaps := len(words) - 1
	extra := 0
	if addSpaces && gaps > 0 {
		extra = lineWidth - utf8.RuneCountInString(strings.Join(words, " "))
	}
	for i, word := range words {
		b.WriteString(word)
		if i == gaps {
			break
		}
		spaces := 1
		if extra > 0 {
			spaces += extra / gaps
			if i < extra%gaps {
				spaces++
			}
		}
		b.WriteString(strings.Repeat(" ", spaces))
	}
}
