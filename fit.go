package main

import (
	"fmt"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/floats"
)

// Line is y = Slope*x + Intercept drawn between XMin and XMax.
type Line struct {
	Slope, Intercept float64
	XMin, XMax       float64
}

func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

func (l Line) String() string {
	return fmt.Sprintf("y = %.4f x %+.4f", l.Slope, l.Intercept)
}

// FitLine fits a straight line through pts with Levenberg-Marquardt.
func FitLine(pts []Point) (Line, error) {
	if len(pts) < 2 {
		return Line{}, ErrDegenerateFit
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	xMin, xMax := floats.Min(xs), floats.Max(xs)
	if xMin == xMax {
		return Line{}, ErrDegenerateFit
	}

	resFunc := func(dst, params []float64) {
		a, b := params[0], params[1]
		for i := range xs {
			dst[i] = a*xs[i] + b - ys[i]
		}
	}
	nj := &lm.NumJac{Func: resFunc}

	// Start from the chord between the outermost points.
	iMin, iMax := floats.MinIdx(xs), floats.MaxIdx(xs)
	a0 := (ys[iMax] - ys[iMin]) / (xMax - xMin)
	b0 := ys[iMin] - a0*xMin

	problem := lm.LMProblem{
		Dim:        2,
		Size:       len(xs),
		Func:       resFunc,
		Jac:        nj.Jac,
		InitParams: []float64{a0, b0},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	result, err := lm.LM(problem, &lm.Settings{Iterations: 100, ObjectiveTol: 1e-16})
	if err != nil {
		return Line{}, fmt.Errorf("line fit: %w", err)
	}
	return Line{Slope: result.X[0], Intercept: result.X[1], XMin: xMin, XMax: xMax}, nil
}
