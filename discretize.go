package groundmodel

import (
	"math"
)

const (
	// gridGuard absorbs a few ulps of rounding in dmax/dy so that e.g.
	// 0.3/0.1 gives 3 steps, without rounding up real shortfalls.
	gridGuard = 4 * 0x1p-52

	// MaxGridPoints bounds the length of a Discretize grid.
	MaxGridPoints = 1 << 24
)

// ValueAt returns the value of p in the layer holding depth z. Layers own
// the half-open interval [top, bottom), so a depth sitting exactly on a
// boundary belongs to the layer below it.
func (gm *GroundModel) ValueAt(p Parameter, z float64) (float64, error) {
	if !finite(z) || z < 0 {
		return math.NaN(), badArgf("depth %v must be non-negative", z)
	}
	values, err := gm.values(p)
	if err != nil {
		return math.NaN(), err
	}
	return values[layerAt(gm.Depth(), z)], nil
}

// Discretize samples p on the regular grid 0, dy, 2dy, ... up to dmax and
// returns floor(dmax/dy)+1 depths with the value of the layer holding each
// of them (see ValueAt for boundary ownership). Grids longer than
// MaxGridPoints are rejected with ErrBadArgument.
//
// The profile is sampled, not interpolated. A dy smaller than the thinnest
// layer reproduces every boundary to within dy; a larger dy may step over
// thin layers entirely.
func (gm *GroundModel) Discretize(dmax, dy float64, p Parameter) ([]float64, []float64, error) {
	if !finite(dmax) || dmax < 0 {
		return nil, nil, badArgf("dmax %v must be non-negative", dmax)
	}
	if !finite(dy) || dy <= 0 {
		return nil, nil, badArgf("dy %v must be positive", dy)
	}
	values, err := gm.values(p)
	if err != nil {
		return nil, nil, err
	}

	q := math.Floor(dmax / dy * (1 + gridGuard))
	if q >= MaxGridPoints {
		return nil, nil, badArgf("grid of dmax=%v dy=%v exceeds %d points", dmax, dy, MaxGridPoints)
	}
	steps := int(q) + 1
	tops := gm.Depth()
	depth := make([]float64, steps)
	par := make([]float64, steps)
	for i := range depth {
		depth[i] = math.Min(float64(i)*dy, dmax)
		par[i] = values[layerAt(tops, depth[i])]
	}
	return depth, par, nil
}
