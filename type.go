package groundmodel

import "strings"

type Parameter string

const (
	Vp            Parameter = "vp"
	Vs            Parameter = "vs"
	Density       Parameter = "rh"
	PoissonsRatio Parameter = "pr"
)

const (
	// HalfSpaceDepth is the bottom assigned to the half-space when a finite
	// depth is needed and the caller supplies none.
	HalfSpaceDepth = 9999.0

	// BoundaryTolerance is the absolute-or-relative tolerance under which two
	// layer boundaries are considered the same depth.
	BoundaryTolerance = 1e-9

	// DefaultVsDepth is the averaging depth of Vs30.
	DefaultVsDepth = 30.0
)

// ParseParameter maps a parameter name onto a Parameter. Besides the
// canonical names it accepts "rho" and "density".
func ParseParameter(s string) (Parameter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vp":
		return Vp, true
	case "vs":
		return Vs, true
	case "rh", "rho", "density":
		return Density, true
	case "pr", "poisson":
		return PoissonsRatio, true
	}
	return "", false
}

// SimpleProfile is a single property with its own layering. The last
// thickness is the 0 half-space sentinel.
type SimpleProfile struct {
	Thickness []float64 `json:"thickness" yaml:"thickness"`
	Values    []float64 `json:"values" yaml:"values"`
}

func (p SimpleProfile) Len() int {
	return len(p.Thickness)
}
