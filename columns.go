package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColumnRef names a 1-based column. A negative ref asks for that axis to be
// drawn reversed.
type ColumnRef int

func (c ColumnRef) Index() int {
	if c < 0 {
		return int(-c) - 1
	}
	return int(c) - 1
}

func (c ColumnRef) Reversed() bool { return c < 0 }

// Pair is the x/y column couple that defines one diagram.
type Pair struct {
	X, Y ColumnRef
}

func (p Pair) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// ParsePair reads "x,y" (whitespace around either number is ignored).
func ParsePair(s string) (Pair, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("column pair %q: want x,y", s)
	}
	var refs [2]ColumnRef
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Pair{}, fmt.Errorf("column pair %q: %v", s, err)
		}
		if n == 0 {
			return Pair{}, fmt.Errorf("column pair %q: columns start at 1: %w", s, ErrColumnRange)
		}
		refs[i] = ColumnRef(n)
	}
	return Pair{X: refs[0], Y: refs[1]}, nil
}

// UniqueColumns flattens pairs and drops repeats, keeping first-seen order.
// 4 and -4 are different refs.
func UniqueColumns(pairs []Pair) []ColumnRef {
	seen := map[ColumnRef]bool{}
	var out []ColumnRef
	for _, p := range pairs {
		for _, c := range []ColumnRef{p.X, p.Y} {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

type Column struct {
	Ref    ColumnRef
	Label  string
	Values []float64
}

// Dataset holds the columns the requested diagrams need.
type Dataset struct {
	Table   *Table
	Pairs   []Pair
	Columns []Column
}

func Select(t *Table, pairs []Pair) (*Dataset, error) {
	if len(pairs) == 0 {
		return nil, ErrNoColumns
	}
	d := &Dataset{Table: t, Pairs: pairs}
	for _, ref := range UniqueColumns(pairs) {
		i := ref.Index()
		if ref == 0 || i >= t.Width() {
			return nil, fmt.Errorf("column %d of %d: %w", ref, t.Width(), ErrColumnRange)
		}
		d.Columns = append(d.Columns, Column{Ref: ref, Label: t.Label(i), Values: t.Column(i)})
	}
	return d, nil
}

// IndexOf reports where ref sits in d.Columns, or -1.
func (d *Dataset) IndexOf(ref ColumnRef) int {
	for i, c := range d.Columns {
		if c.Ref == ref {
			return i
		}
	}
	return -1
}

// View is the slice of a Dataset one diagram draws.
type View struct {
	Pair           Pair
	XLabel, YLabel string
	X, Y           []float64
}

func (d *Dataset) View(p Pair) (View, error) {
	xi, yi := d.IndexOf(p.X), d.IndexOf(p.Y)
	if xi < 0 || yi < 0 {
		return View{}, fmt.Errorf("pair %v not selected: %w", p, ErrColumnRange)
	}
	x, y := d.Columns[xi], d.Columns[yi]
	return View{
		Pair:   p,
		XLabel: x.Label,
		YLabel: y.Label,
		X:      x.Values,
		Y:      y.Values,
	}, nil
}

// Views returns one View per requested pair, in request order.
func (d *Dataset) Views() ([]View, error) {
	views := make([]View, 0, len(d.Pairs))
	for _, p := range d.Pairs {
		v, err := d.View(p)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (v View) Len() int { return len(v.X) }

// Point is one plotted row.
type Point struct {
	Row  int
	X, Y float64
}

// AllPoints returns every row with finite coordinates.
func (v View) AllPoints() []Point {
	rows := make([]int, v.Len())
	for i := range rows {
		rows[i] = i
	}
	return v.Points(rows)
}

// Points returns the given rows. Rows with a non-finite coordinate or out of
// range are left out.
func (v View) Points(rows []int) []Point {
	pts := make([]Point, 0, len(rows))
	for _, r := range rows {
		if r < 0 || r >= v.Len() {
			continue
		}
		x, y := v.X[r], v.Y[r]
		if !finite(x) || !finite(y) {
			continue
		}
		pts = append(pts, Point{Row: r, X: x, Y: y})
	}
	return pts
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
