// Package basin provides tunable options and error definitions
// for sentinel-bounded flood fill over a heightmap.Grid.
package basin

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/smokebasin/heightmap"
)

// DefaultSentinel is the height that bounds every basin.
const DefaultSentinel = heightmap.MaxHeight

// Sentinel errors for basin exploration.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("basin: grid is nil")

	// ErrSeedOutOfBounds is returned when the seed lies outside the grid.
	// It wraps heightmap.ErrOutOfBounds.
	ErrSeedOutOfBounds = fmt.Errorf("basin: seed %w", heightmap.ErrOutOfBounds)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("basin: invalid option supplied")
)

// Option configures exploration via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the exploration is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of one exploration.
type Options struct {
	// Sentinel is the ridge height; cells at or above it are never counted.
	Sentinel uint8

	// OnEnqueue is called when a cell is added to the work queue.
	OnEnqueue func(c heightmap.Coord)

	// OnVisit is called for every counted cell. A non-nil error aborts
	// the exploration and is returned wrapped.
	OnVisit func(c heightmap.Coord) error

	err error
}

// DefaultOptions returns Options with Sentinel=9 and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Sentinel:  DefaultSentinel,
		OnEnqueue: func(heightmap.Coord) {},
		OnVisit:   func(heightmap.Coord) error { return nil },
	}
}

// WithSentinel sets the ridge height. Values above heightmap.MaxHeight are
// rejected with ErrOptionViolation.
func WithSentinel(v uint8) Option {
	return func(o *Options) {
		if v > heightmap.MaxHeight {
			o.err = fmt.Errorf("%w: sentinel %d exceeds %d", ErrOptionViolation, v, heightmap.MaxHeight)
			return
		}
		o.Sentinel = v
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c heightmap.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run for every counted cell;
// returning an error from it stops the exploration.
func WithOnVisit(fn func(c heightmap.Coord) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// SharedBasin is a region reached from more than one seed.
type SharedBasin struct {
	Seeds []heightmap.Coord // in the order they were supplied
	Size  int               // cells in the region
}
