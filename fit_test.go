package main

import (
	"errors"
	"math"
	"testing"
)

func TestFitLine(t *testing.T) {
	var pts []Point
	for i := 0; i < 8; i++ {
		x := float64(i) / 2
		pts = append(pts, Point{Row: i, X: x, Y: 0.72*x - 1.3})
	}
	l, err := FitLine(pts)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l.Slope-0.72) > 1e-6 || math.Abs(l.Intercept+1.3) > 1e-6 {
		t.Fatalf("fit = %v", l)
	}
	if l.XMin != 0 || l.XMax != 3.5 {
		t.Fatalf("range = [%v, %v]", l.XMin, l.XMax)
	}
}

func TestFitLineDegenerate(t *testing.T) {
	cases := [][]Point{
		nil,
		{{X: 1, Y: 2}},
		{{X: 1, Y: 2}, {X: 1, Y: 5}},
	}
	for _, pts := range cases {
		if _, err := FitLine(pts); !errors.Is(err, ErrDegenerateFit) {
			t.Fatalf("FitLine(%v) err = %v", pts, err)
		}
	}
}
