package topk

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidK indicates a capacity below one.
	ErrInvalidK = errors.New("topk: k must be at least 1")
	// ErrInsufficientBasins indicates Product was requested before k values
	// were observed.
	ErrInsufficientBasins = errors.New("topk: fewer than k basins observed")
	// ErrProductOverflow indicates the product of the retained values does
	// not fit in an int.
	ErrProductOverflow = errors.New("topk: product overflows int")
)

// minHeap implements heap.Interface over ints, smallest first.
type minHeap []int

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Aggregator retains the k largest observed sizes.
// The zero value is not usable; construct with New.
type Aggregator struct {
	k        int
	h        minHeap
	observed int
}

// New returns an Aggregator with capacity k, or ErrInvalidK if k < 1.
func New(k int) (*Aggregator, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	return &Aggregator{k: k, h: make(minHeap, 0, k+1)}, nil
}

// K returns the capacity.
func (a *Aggregator) K() int { return a.k }

// Observed returns how many values have been fed to Observe.
func (a *Aggregator) Observed() int { return a.observed }

// Len returns how many values are currently retained, at most K.
func (a *Aggregator) Len() int { return a.h.Len() }

// Observe offers size to the aggregator. If more than k values would be
// retained, the smallest is dropped.
func (a *Aggregator) Observe(size int) {
	a.observed++
	if a.h.Len() < a.k {
		heap.Push(&a.h, size)
		return
	}
	if size > a.h[0] {
		a.h[0] = size
		heap.Fix(&a.h, 0)
	}
}

// Values returns a copy of the retained values sorted descending.
func (a *Aggregator) Values() []int {
	out := make([]int, len(a.h))
	copy(out, a.h)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Product multiplies the retained values.
// Returns ErrInsufficientBasins if fewer than k values were observed and
// ErrProductOverflow if the result exceeds math.MaxInt.
// Retained values are expected to be non-negative sizes.
func (a *Aggregator) Product() (int, error) {
	if a.observed < a.k {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientBasins, a.observed, a.k)
	}
	for _, v := range a.h {
		if v == 0 {
			return 0, nil
		}
	}
	p := 1
	for _, v := range a.h {
		if p > math.MaxInt/v {
			return 0, fmt.Errorf("%w: %v", ErrProductOverflow, a.Values())
		}
		p *= v
	}
	return p, nil
}
