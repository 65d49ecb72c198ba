package groundmodel

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

func pow2(x float64) float64 {
	return x * x
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func sameDepth(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, BoundaryTolerance, BoundaryTolerance)
}

// ThicknessToDepth returns the depth to the top of each layer.
func ThicknessToDepth(thickness []float64) []float64 {
	if len(thickness) == 0 {
		return nil
	}
	depth := make([]float64, len(thickness))
	if len(thickness) > 1 {
		floats.CumSum(depth[1:], thickness[:len(thickness)-1])
	}
	return depth
}

// DepthToThickness is the inverse of ThicknessToDepth; depth[0] must be 0
// and the returned slice ends with the half-space sentinel.
func DepthToThickness(depth []float64) []float64 {
	if len(depth) == 0 {
		return nil
	}
	thickness := make([]float64, len(depth))
	for i := 0; i < len(depth)-1; i++ {
		thickness[i] = depth[i+1] - depth[i]
	}
	return thickness
}

// layerAt returns the index of the layer whose [top, bottom) interval holds
// z. tops must be ascending with tops[0] == 0.
func layerAt(tops []float64, z float64) int {
	i := sort.Search(len(tops), func(i int) bool { return tops[i] > z })
	if i == 0 {
		return 0
	}
	return i - 1
}
