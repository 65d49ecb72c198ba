package groundmodel

import (
	"fmt"
	"os"
)

func ExampleGroundModel_Vs30() {
	gm, _ := New([]float64{2, 3, 0}, []float64{300, 600, 900}, []float64{100, 200, 300}, []float64{2000, 2000, 2000})
	vs30, _ := gm.Vs30()
	fmt.Printf("%.1f\n", vs30)
	// Output:
	// 253.5
}

func ExampleGroundModel_Discretize() {
	gm, _ := New([]float64{2, 2, 0}, []float64{1500, 1500, 1500}, []float64{100, 200, 300}, []float64{2000, 2000, 2000})
	depth, vs, _ := gm.Discretize(5, 1.25, Vs)
	fmt.Println(depth)
	fmt.Println(vs)
	// Output:
	// [0 1.25 2.5 3.75 5]
	// [100 100 200 200 300]
}

func ExampleFromSimpleProfiles() {
	gm, _ := FromSimpleProfiles(
		SimpleProfile{Thickness: []float64{4, 6, 0}, Values: []float64{200, 500, 600}},
		SimpleProfile{Thickness: []float64{5, 0}, Values: []float64{100, 200}},
		SimpleProfile{Thickness: []float64{0}, Values: []float64{2000}},
	)
	fmt.Print(gm)
	// Output:
	// thickness = [4 1 5 0]
	// vp = [200 500 500 600]
	// vs = [100 100 200 200]
	// rh = [2000 2000 2000 2000]
}

func ExampleGroundModel_WriteModel() {
	gm, _ := New([]float64{2, 4, 0}, []float64{300, 700, 400}, []float64{100, 275, 300}, []float64{2200, 2200, 2200})
	_ = gm.WriteModel(os.Stdout, 1, 0.5)
	// Output:
	// # Layered model 1: value=0.5
	// 3
	// 2 300 100 2200
	// 4 700 275 2200
	// 0 400 300 2200
}
