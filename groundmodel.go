package groundmodel

import (
	"encoding/json"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// GroundModel is a 1-D layered earth model. Layer i has a thickness in m,
// compression and shear wave velocities in m/s and a mass density in kg/m3.
// The last layer is a half-space and carries a thickness of 0.
//
// A GroundModel is never modified after construction and may be shared
// between goroutines.
type GroundModel struct {
	tk []float64
	vp []float64
	vs []float64
	rh []float64
}

// New builds a GroundModel from per-layer arrays. All four arrays must have
// the same non-zero length, every layer but the last must have a positive
// thickness, the last thickness must be exactly 0, velocities and densities
// must be positive and vs must not exceed vp.
func New(thickness, vp, vs, density []float64) (*GroundModel, error) {
	if err := checkLayers(thickness, vp, vs, density); err != nil {
		return nil, err
	}
	return &GroundModel{
		tk: clone(thickness),
		vp: clone(vp),
		vs: clone(vs),
		rh: clone(density),
	}, nil
}

func checkLayers(thickness, vp, vs, density []float64) error {
	n := len(thickness)
	if n == 0 {
		return invalidf("no layers")
	}
	if len(vp) != n || len(vs) != n || len(density) != n {
		return invalidf("length mismatch: thickness=%d vp=%d vs=%d density=%d",
			n, len(vp), len(vs), len(density))
	}
	if err := checkThickness("thickness", thickness); err != nil {
		return err
	}
	for _, prop := range []struct {
		name   string
		values []float64
	}{{"vp", vp}, {"vs", vs}, {"density", density}} {
		if err := checkPositive(prop.name, prop.values); err != nil {
			return err
		}
	}
	for i := range vp {
		if vs[i] > vp[i] {
			return invalidf("layer %d: vs=%v exceeds vp=%v", i, vs[i], vp[i])
		}
	}
	return nil
}

func checkThickness(name string, tk []float64) error {
	last := len(tk) - 1
	for i, t := range tk[:last] {
		if !finite(t) || t <= 0 {
			return invalidf("%s[%d]=%v must be positive", name, i, t)
		}
	}
	if tk[last] != 0 {
		return invalidf("%s[%d]=%v: half-space thickness must be 0", name, last, tk[last])
	}
	return nil
}

func checkPositive(name string, values []float64) error {
	for i, v := range values {
		if !finite(v) || v <= 0 {
			return invalidf("%s[%d]=%v must be positive", name, i, v)
		}
	}
	return nil
}

func clone(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)
	return c
}

// Len returns the number of layers, half-space included.
func (gm *GroundModel) Len() int {
	return len(gm.tk)
}

func (gm *GroundModel) Thickness() []float64 { return clone(gm.tk) }

func (gm *GroundModel) Vp() []float64 { return clone(gm.vp) }

func (gm *GroundModel) Vs() []float64 { return clone(gm.vs) }

func (gm *GroundModel) Density() []float64 { return clone(gm.rh) }

// Depth returns the depth to the top of each layer.
func (gm *GroundModel) Depth() []float64 {
	return ThicknessToDepth(gm.tk)
}

// TotalThickness returns the depth to the top of the half-space.
func (gm *GroundModel) TotalThickness() float64 {
	return floats.Sum(gm.tk)
}

// values returns the per-layer values of p without copying.
func (gm *GroundModel) values(p Parameter) ([]float64, error) {
	switch p {
	case Vp:
		return gm.vp, nil
	case Vs:
		return gm.vs, nil
	case Density:
		return gm.rh, nil
	case PoissonsRatio:
		return gm.PoissonsRatio()
	}
	return nil, badArgf("unknown parameter %q", string(p))
}

// Values returns a copy of the per-layer values of p.
func (gm *GroundModel) Values(p Parameter) ([]float64, error) {
	v, err := gm.values(p)
	if err != nil {
		return nil, err
	}
	return clone(v), nil
}

// Equal reports whether both models have exactly the same layers.
func (gm *GroundModel) Equal(o *GroundModel) bool {
	return gm.EqualApprox(o, 0)
}

// EqualApprox reports whether both models have the same number of layers and
// every value agrees within tol, absolute or relative.
func (gm *GroundModel) EqualApprox(o *GroundModel, tol float64) bool {
	if gm == nil || o == nil {
		return gm == o
	}
	if gm.Len() != o.Len() {
		return false
	}
	return floats.EqualApprox(gm.tk, o.tk, tol) &&
		floats.EqualApprox(gm.vp, o.vp, tol) &&
		floats.EqualApprox(gm.vs, o.vs, tol) &&
		floats.EqualApprox(gm.rh, o.rh, tol)
}

func (gm *GroundModel) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "thickness = %v\n", gm.tk)
	fmt.Fprintf(&b, "vp = %v\n", gm.vp)
	fmt.Fprintf(&b, "vs = %v\n", gm.vs)
	fmt.Fprintf(&b, "rh = %v\n", gm.rh)
	return b.String()
}

type groundModelJSON struct {
	Thickness []float64 `json:"thickness"`
	Vp        []float64 `json:"vp"`
	Vs        []float64 `json:"vs"`
	Density   []float64 `json:"density"`
	Depth     []float64 `json:"depth"`
	Vs30      float64   `json:"vs30"`
}

func (gm *GroundModel) MarshalJSON() ([]byte, error) {
	vs30, err := gm.Vs30()
	if err != nil {
		return nil, err
	}
	return json.Marshal(groundModelJSON{
		Thickness: gm.tk,
		Vp:        gm.vp,
		Vs:        gm.vs,
		Density:   gm.rh,
		Depth:     gm.Depth(),
		Vs30:      vs30,
	})
}
