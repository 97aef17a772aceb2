package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/smokebasin/basin"
	"github.com/katalvlaran/smokebasin/heightmap"
)

// DefaultTopK is the number of largest basins multiplied into TopProduct.
const DefaultTopK = 3

var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("analysis: grid is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("analysis: invalid option supplied")
	// ErrSharedBasin is returned in strict mode when two low points drain
	// into one region, which would count that region twice.
	ErrSharedBasin = errors.New("analysis: low points share a basin")
)

// Option configures Analyze.
type Option func(*Options)

// Options holds the tunables of one analysis.
type Options struct {
	TopK     int
	Sentinel uint8
	// Strict turns shared basins into ErrSharedBasin instead of a warning.
	Strict bool

	err error
}

// DefaultOptions returns TopK=3, Sentinel=9, Strict=false.
func DefaultOptions() Options {
	return Options{TopK: DefaultTopK, Sentinel: basin.DefaultSentinel}
}

// WithTopK sets how many of the largest basins enter TopProduct.
func WithTopK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: top-k must be at least 1, got %d", ErrOptionViolation, k)
			return
		}
		o.TopK = k
	}
}

// WithSentinel sets the ridge height bounding basins.
func WithSentinel(v uint8) Option {
	return func(o *Options) {
		if v > heightmap.MaxHeight {
			o.err = fmt.Errorf("%w: sentinel %d exceeds %d", ErrOptionViolation, v, heightmap.MaxHeight)
			return
		}
		o.Sentinel = v
	}
}

// WithStrict makes Analyze fail when any basin holds more than one low point.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}
