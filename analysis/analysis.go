package analysis

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/smokebasin/basin"
	"github.com/katalvlaran/smokebasin/heightmap"
	"github.com/katalvlaran/smokebasin/lowpoint"
	"github.com/katalvlaran/smokebasin/topk"
)

// Report is the outcome of one analysis.
type Report struct {
	// RiskSum totals height+1 over all low points.
	RiskSum int
	// LowPoints in row-major order.
	LowPoints []lowpoint.Point
	// BasinSizes[i] is the size of the basin flooded from LowPoints[i].
	BasinSizes []int
	// Largest holds the TopK largest sizes, descending.
	Largest []int
	// TopProduct multiplies Largest. Zero when fewer than TopK basins exist.
	TopProduct int
	// Shared lists regions reached from more than one low point.
	Shared []basin.SharedBasin
}

// Analyze runs detection, exploration and aggregation over g.
//
// When fewer than TopK basins exist, the returned Report is still filled in
// (RiskSum in particular) and the error wraps topk.ErrInsufficientBasins.
// In strict mode a shared basin yields ErrSharedBasin and a nil Report.
func Analyze(g *heightmap.Grid, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	agg, err := topk.New(o.TopK)
	if err != nil {
		return nil, err
	}
	rep := &Report{}
	klog.V(1).Infof("analysis: scanning %dx%d grid (top-k=%d sentinel=%d)", g.Width, g.Height, o.TopK, o.Sentinel)

	idx := newRegionIndex(g, basin.WithSentinel(o.Sentinel))
	for p := range lowpoint.NewDetector(g).All() {
		rep.RiskSum += p.RiskScore()
		rep.LowPoints = append(rep.LowPoints, p)

		size, err := idx.size(p.Coord)
		if err != nil {
			return nil, fmt.Errorf("analysis: basin at %v: %w", p.Coord, err)
		}
		klog.V(2).Infof("analysis: low point %v height=%d basin=%d", p.Coord, p.Value, size)
		rep.BasinSizes = append(rep.BasinSizes, size)
		agg.Observe(size)
	}

	if err := checkShared(idx.shared(), rep, o); err != nil {
		return nil, err
	}

	rep.Largest = agg.Values()
	product, err := agg.Product()
	if err != nil {
		klog.V(1).Infof("analysis: risk_sum=%d, only %d basins", rep.RiskSum, agg.Observed())
		return rep, fmt.Errorf("analysis: top-%d product: %w", o.TopK, err)
	}
	rep.TopProduct = product
	klog.V(1).Infof("analysis: risk_sum=%d top_product=%d low_points=%d", rep.RiskSum, rep.TopProduct, len(rep.LowPoints))
	return rep, nil
}

// checkShared records regions reached from several low points, warning
// or failing depending on o.Strict.
func checkShared(shared []basin.SharedBasin, rep *Report, o Options) error {
	rep.Shared = shared
	for _, s := range shared {
		if o.Strict {
			return fmt.Errorf("%w: %v drain into one %d-cell region", ErrSharedBasin, s.Seeds, s.Size)
		}
		klog.Warningf("analysis: low points %v drain into one %d-cell region; it is counted %d times", s.Seeds, s.Size, len(s.Seeds))
	}
	return nil
}
