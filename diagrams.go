package main

import (
	"errors"
	"log"

	"gonum.org/v1/plot"
)

// Diagrams is the state every open diagram window shares.
type Diagrams struct {
	Table     *Table
	Views     []View
	Groups    []Group
	Selection *Selection
	Fit       bool
	Session   *Session
}

func NewDiagrams(t *Table, pairs []Pair, groups []Group, session *Session) (*Diagrams, error) {
	ds, err := Select(t, pairs)
	if err != nil {
		return nil, err
	}
	views, err := ds.Views()
	if err != nil {
		return nil, err
	}
	return &Diagrams{
		Table:     t,
		Views:     views,
		Groups:    groups,
		Selection: NewSelection(),
		Session:   session,
	}, nil
}

// fitLine returns the line through the highlighted points of view k, or nil.
func (d *Diagrams) fitLine(k int) *Line {
	if !d.Fit || d.Selection.Len() < 2 {
		return nil
	}
	l, err := FitLine(d.Views[k].Points(d.Selection.Rows()))
	if err != nil {
		if !errors.Is(err, ErrDegenerateFit) {
			log.Printf("diagram %d: %v", k+1, err)
		}
		return nil
	}
	return &l
}

// Layers returns the overlay state for view k.
func (d *Diagrams) Layers(k int) Layers {
	return Layers{
		Selected: d.Selection.Rows(),
		Groups:   d.Groups,
		Fit:      d.fitLine(k),
	}
}

func (d *Diagrams) AllLayers() []Layers {
	out := make([]Layers, len(d.Views))
	for k := range d.Views {
		out[k] = d.Layers(k)
	}
	return out
}

// Plot builds the current plot of view k.
func (d *Diagrams) Plot(k int) (*plot.Plot, error) {
	return NewDiagram(d.Views[k], d.Layers(k))
}

// Feedback reports the highlighted rows, and the fitted lines if any, to the
// session.
func (d *Diagrams) Feedback() {
	d.Session.Log(Feedback(d.Table, d.Selection.Rows())...)
	if !d.Fit {
		return
	}
	fits := make([]*Line, len(d.Views))
	for k := range d.Views {
		fits[k] = d.fitLine(k)
	}
	d.Session.Log(FitFeedback(d.Views, fits)...)
}
