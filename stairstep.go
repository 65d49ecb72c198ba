package groundmodel

import (
	vec2d "github.com/flywave/go3d/float64/vec2"
)

// StairStep returns 2N (depth, value) points tracing p down the profile:
// every layer contributes its value at its top and at its bottom. The
// half-space ends at bottom, or at HalfSpaceDepth when bottom <= 0.
func (gm *GroundModel) StairStep(p Parameter, bottom float64) ([]vec2d.T, error) {
	values, err := gm.values(p)
	if err != nil {
		return nil, err
	}
	tops := gm.Depth()
	last := len(tops) - 1
	if bottom <= 0 {
		bottom = HalfSpaceDepth
	}
	if !finite(bottom) || bottom <= tops[last] {
		return nil, badArgf("half-space bottom %v must lie below %v", bottom, tops[last])
	}

	pts := make([]vec2d.T, 0, 2*len(tops))
	for i, v := range values {
		lower := bottom
		if i < last {
			lower = tops[i+1]
		}
		pts = append(pts, vec2d.T{tops[i], v}, vec2d.T{lower, v})
	}
	return pts, nil
}

// StairStepSeries is StairStep split into aligned depth and value slices,
// the shape plotting code usually wants.
func (gm *GroundModel) StairStepSeries(p Parameter, bottom float64) ([]float64, []float64, error) {
	pts, err := gm.StairStep(p, bottom)
	if err != nil {
		return nil, nil, err
	}
	depth := make([]float64, len(pts))
	values := make([]float64, len(pts))
	for i, pt := range pts {
		depth[i], values[i] = pt[0], pt[1]
	}
	return depth, values, nil
}
