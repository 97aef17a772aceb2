// Package topk keeps the k largest values of a stream in bounded memory.
//
// An Aggregator holds at most k values in a min-heap: the smallest retained
// value sits at the root and is evicted when a larger one arrives. The full
// stream is never stored.
//
// Product multiplies the retained values and requires that at least k values
// were observed; otherwise it returns ErrInsufficientBasins. Equal values are
// interchangeable and no stable order among them is kept.
//
// Complexity: Observe is O(log k); Values and Product are O(k log k) and O(k).
package topk
