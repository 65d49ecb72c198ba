package groundmodel

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// FromSimpleProfiles merges three independently layered profiles into one
// GroundModel. The merged model has a boundary at every distinct depth
// introduced by any input (depths closer than BoundaryTolerance collapse
// into one) and each merged layer takes, per property, the value of the
// input layer that contains it.
func FromSimpleProfiles(vp, vs, density SimpleProfile) (*GroundModel, error) {
	profiles := []struct {
		name string
		p    SimpleProfile
	}{{"vp", vp}, {"vs", vs}, {"density", density}}

	var bounds []float64
	for _, prof := range profiles {
		if err := checkSimple(prof.name, prof.p); err != nil {
			return nil, err
		}
		tops := ThicknessToDepth(prof.p.Thickness)
		bounds = append(bounds, tops[1:]...)
	}
	sort.Float64s(bounds)

	mergedTops := []float64{0}
	for _, b := range bounds {
		if !sameDepth(b, mergedTops[len(mergedTops)-1]) {
			mergedTops = append(mergedTops, b)
		}
	}
	tk := DepthToThickness(mergedTops)
	newVp := resample(vp, mergedTops)
	newVs := resample(vs, mergedTops)
	newRh := resample(density, mergedTops)
	return New(tk, newVp, newVs, newRh)
}

func checkSimple(name string, p SimpleProfile) error {
	if len(p.Thickness) == 0 {
		return invalidf("%s profile has no layers", name)
	}
	if len(p.Values) != len(p.Thickness) {
		return invalidf("%s profile: %d thicknesses for %d values", name, len(p.Thickness), len(p.Values))
	}
	if err := checkThickness(name+" thickness", p.Thickness); err != nil {
		return err
	}
	return checkPositive(name, p.Values)
}

// resample returns the value of p for every merged layer top. Merged tops
// that sit within tolerance of a p boundary are snapped onto it so the
// lower layer is selected.
func resample(p SimpleProfile, mergedTops []float64) []float64 {
	tops := ThicknessToDepth(p.Thickness)
	out := make([]float64, len(mergedTops))
	for i, z := range mergedTops {
		j := layerAt(tops, z)
		if j+1 < len(tops) && sameDepth(z, tops[j+1]) {
			j++
		}
		out[i] = p.Values[j]
	}
	return out
}

// Simplify collapses adjacent layers that share the same value of p and
// returns the resulting simple profile. It undoes FromSimpleProfiles for
// inputs whose neighbouring values differ.
func (gm *GroundModel) Simplify(p Parameter) (SimpleProfile, error) {
	if p == PoissonsRatio {
		return SimpleProfile{}, badArgf("cannot simplify %q", string(p))
	}
	values, err := gm.values(p)
	if err != nil {
		return SimpleProfile{}, err
	}

	out := SimpleProfile{Values: []float64{values[0]}}
	start := 0
	for i := 1; i < len(values); i++ {
		if values[i] == values[start] {
			continue
		}
		out.Thickness = append(out.Thickness, floats.Sum(gm.tk[start:i]))
		out.Values = append(out.Values, values[i])
		start = i
	}
	out.Thickness = append(out.Thickness, 0)
	return out, nil
}
