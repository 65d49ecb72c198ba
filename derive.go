package groundmodel

import "gonum.org/v1/gonum/floats"

// CalcPoissonsRatio returns Poisson's ratio for each vp, vs pair from the
// elastic relation 0.5 (r² - 2) / (r² - 1) with r = vp/vs.
//
// ErrDomain is returned when vp == vs (the relation is undefined) or when
// the ratio falls outside (0, 0.5), which happens for vp/vs <= sqrt(2).
func CalcPoissonsRatio(vp, vs []float64) ([]float64, error) {
	if len(vp) != len(vs) {
		return nil, badArgf("length mismatch: vp=%d vs=%d", len(vp), len(vs))
	}
	pr := make([]float64, len(vp))
	for i := range vp {
		if !finite(vp[i]) || !finite(vs[i]) {
			return nil, domainf("layer %d: non-finite vp=%v vs=%v", i, vp[i], vs[i])
		}
		if vs[i] <= 0 {
			return nil, domainf("layer %d: vs=%v must be positive", i, vs[i])
		}
		r2 := pow2(vp[i] / vs[i])
		if r2 == 1 {
			return nil, domainf("layer %d: vp == vs (%v)", i, vp[i])
		}
		if r2 < 1 {
			return nil, domainf("layer %d: vp=%v must exceed vs=%v", i, vp[i], vs[i])
		}
		pr[i] = 0.5 * (r2 - 2) / (r2 - 1)
		if pr[i] <= 0 {
			return nil, domainf("layer %d: vp/vs=%v/%v too close to unity", i, vp[i], vs[i])
		}
	}
	return pr, nil
}

// PoissonsRatio returns Poisson's ratio of every layer.
func (gm *GroundModel) PoissonsRatio() ([]float64, error) {
	return CalcPoissonsRatio(gm.vp, gm.vs)
}

// Vs30 returns the time-averaged shear-wave velocity of the upper 30 m.
func (gm *GroundModel) Vs30() (float64, error) {
	return gm.TimeAveragedVs(DefaultVsDepth)
}

// TimeAveragedVs returns z divided by the vertical shear-wave travel time
// from the surface to depth z. When z extends past the last finite layer
// the half-space fills the remainder.
func (gm *GroundModel) TimeAveragedVs(z float64) (float64, error) {
	if !finite(z) || z <= 0 {
		return 0, badArgf("averaging depth %v must be positive", z)
	}

	// Thickness of each layer above z, the last one clipped at z.
	var clipped []float64
	var top float64
	last := len(gm.tk) - 1
	for i, tk := range gm.tk {
		bottom := top + tk
		if i == last || bottom > z {
			bottom = z
		}
		clipped = append(clipped, bottom-top)
		if bottom >= z {
			break
		}
		top = bottom
	}
	travel := floats.Sum(floats.DivTo(make([]float64, len(clipped)), clipped, gm.vs[:len(clipped)]))
	return z / travel, nil
}
