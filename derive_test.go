package groundmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcPoissonsRatio(t *testing.T) {
	vp := []float64{6000, 5000, 4000, 3000, 2000, 1000, 500, 400, 300, 200}
	vs := []float64{100, 200, 300, 500, 750, 500, 300, 120, 210, 110}
	want := []float64{0.499861072520145, 0.499198717948718,
		0.49717159, 0.485714285714286, 0.418181818181818,
		0.333333333333333, 0.21875, 0.450549450549451,
		0.0196078431372549, 0.283154121863799}

	pr, err := CalcPoissonsRatio(vp, vs)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, pr, 1e-7)
}

func TestCalcPoissonsRatioTwoToOne(t *testing.T) {
	pr, err := CalcPoissonsRatio([]float64{200}, []float64{100})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, pr[0], 1e-15)
}

func TestCalcPoissonsRatioUndefined(t *testing.T) {
	a := assert.New(t)

	for _, c := range []struct{ vp, vs float64 }{
		{150, 150}, // vp == vs
		{150, 151}, // vs above vp
		{150, 149}, // ratio too close to unity
		{0, 0},
		{math.NaN(), 100},
		{math.Inf(1), 100},
		{300, math.NaN()},
	} {
		_, err := CalcPoissonsRatio([]float64{c.vp}, []float64{c.vs})
		a.ErrorIs(err, ErrDomain, "vp=%v vs=%v", c.vp, c.vs)
	}

	_, err := CalcPoissonsRatio([]float64{200, 300}, []float64{100})
	a.ErrorIs(err, ErrBadArgument)
}

func TestPoissonsRatioEqualVelocities(t *testing.T) {
	gm, err := New([]float64{2, 0}, []float64{200, 300}, []float64{100, 300}, []float64{2000, 2000})
	require.NoError(t, err)

	_, err = gm.PoissonsRatio()
	assert.ErrorIs(t, err, ErrDomain)
}

func TestVs30(t *testing.T) {
	cases := []struct {
		name   string
		tk, vs []float64
		want   float64
	}{
		{"one thick layer", []float64{50, 0}, []float64{100, 100}, 100},
		{"two layers same velocity", []float64{15, 15, 0}, []float64{100, 100, 200}, 100},
		{"one layer exactly 30m", []float64{30, 0}, []float64{100, 200}, 100},
		{"two layers exactly 30m", []float64{15, 15, 0}, []float64{100, 200, 300}, 133.333333},
		{"less than 30m", []float64{5, 10, 0}, []float64{100, 200, 300}, 200},
		{"velocity reversal", []float64{10, 10, 0}, []float64{200, 50, 300}, 105.882353},
		{"three layers", []float64{2, 3, 0}, []float64{100, 200, 300}, 253.521127},
		{"half-space only", []float64{0}, []float64{250}, 250},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := len(c.tk)
			gm, err := New(c.tk, fill(n, 600), c.vs, fill(n, 2000))
			require.NoError(t, err)

			vs30, err := gm.Vs30()
			require.NoError(t, err)
			assert.InDelta(t, c.want, vs30, 1e-5)
		})
	}
}

func TestTimeAveragedVs(t *testing.T) {
	a := assert.New(t)

	gm, err := New([]float64{2, 3, 0}, []float64{300, 600, 900}, []float64{100, 200, 300}, fill(3, 2000))
	require.NoError(t, err)

	v, err := gm.TimeAveragedVs(2)
	require.NoError(t, err)
	a.InDelta(100, v, 1e-12)

	// Clipped inside the second layer: 2/100 + 1/200.
	v, err = gm.TimeAveragedVs(3)
	require.NoError(t, err)
	a.InDelta(3/0.025, v, 1e-9)

	// Below the last finite layer: 2/100 + 3/200 + 95/300.
	v, err = gm.TimeAveragedVs(100)
	require.NoError(t, err)
	a.InDelta(100/(0.02+0.015+95.0/300), v, 1e-9)

	_, err = gm.TimeAveragedVs(0)
	a.ErrorIs(err, ErrBadArgument)
	_, err = gm.TimeAveragedVs(-5)
	a.ErrorIs(err, ErrBadArgument)
}

func fill(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}
