package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const renderDPI = 96

var (
	backgroundColor = color.NRGBA{R: 128, G: 128, B: 128, A: 102}
	highlightColor  = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	fitColor        = color.NRGBA{R: 27, G: 170, B: 139, A: 255}

	pointRadius     = vg.Points(4)
	highlightRadius = vg.Points(5)
	// how far outside a glyph a click still picks it
	pickTolerance = vg.Points(3)
)

// Layers is what gets drawn over the gray background points.
type Layers struct {
	Selected []int
	Groups   []Group
	Fit      *Line
}

// NewDiagram builds the scatter plot for one view: gray background, group
// colours, then the highlighted rows on top.
func NewDiagram(v View, layers Layers) (*plot.Plot, error) {
	pts := v.AllPoints()
	if len(pts) == 0 {
		return nil, fmt.Errorf("%s vs %s: %w", v.YLabel, v.XLabel, ErrEmptyTable)
	}
	p := prepPlot(fmt.Sprintf("Diagram for %d points", v.Len()), v.XLabel, v.YLabel)

	all, err := scatter(pts, backgroundColor, pointRadius)
	if err != nil {
		return nil, err
	}
	p.Add(all)

	for _, g := range layers.Groups {
		s, err := scatter(v.Points(g.Rows), withAlpha(g.Color, 153), pointRadius)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Name, err)
		}
		p.Add(s)
		p.Legend.Add(g.Name, s)
	}

	if len(layers.Selected) > 0 {
		s, err := scatter(v.Points(layers.Selected), highlightColor, highlightRadius)
		if err != nil {
			return nil, err
		}
		p.Add(s)
	}

	if f := layers.Fit; f != nil {
		l, err := plotter.NewLine(plotter.XYs{{X: f.XMin, Y: f.At(f.XMin)}, {X: f.XMax, Y: f.At(f.XMax)}})
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = fitColor
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
	}

	if v.Pair.X.Reversed() {
		p.X.Scale = plot.InvertedScale{Normalizer: p.X.Scale}
	}
	if v.Pair.Y.Reversed() {
		p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
	}
	return p, nil
}

func prepPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = 20
	p.Title.Padding = font.Length(10)

	p.X.Label.Text = xlabel
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = 15
	p.X.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.Label.Font.Variant = "Sans"

	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = 15
	p.Y.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.Label.Font.Variant = "Sans"

	p.Legend.TextStyle.Font.Variant = "Sans"
	p.Legend.Top = true
	p.Legend.Padding = vg.Points(5)

	p.Add(plotter.NewGrid())
	return p
}

func scatter(pts []Point, c color.Color, radius vg.Length) (*plotter.Scatter, error) {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = radius
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		n.A = a
	}
	return n
}

// pixelPoint is a plotted row in image pixel coordinates (origin top left).
type pixelPoint struct {
	Row  int
	X, Y float64
}

// Raster is a drawn diagram plus where each of its points landed.
type Raster struct {
	Image  image.Image
	Points []pixelPoint
	// pick radius in pixels
	Radius float64
}

func pixels(l vg.Length) float64 { return float64(l/vg.Inch) * renderDPI }

// Rasterize draws p at the given size and records pixel positions of the
// points of v.
func Rasterize(p *plot.Plot, v View, w, h vg.Length) *Raster {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(renderDPI))
	dc := draw.New(c)
	p.Draw(dc)

	da := p.DataCanvas(dc)
	xf, yf := p.Transforms(&da)
	height := pixels(h)

	pts := v.AllPoints()
	r := &Raster{
		Image:  c.Image(),
		Points: make([]pixelPoint, len(pts)),
		Radius: pixels(pointRadius + pickTolerance),
	}
	for i, pt := range pts {
		r.Points[i] = pixelPoint{
			Row: pt.Row,
			X:   pixels(xf(pt.X)),
			Y:   height - pixels(yf(pt.Y)),
		}
	}
	return r
}

// Hit returns every row whose glyph is within the pick radius of (x, y),
// in ascending order.
func (r *Raster) Hit(x, y float64) []int {
	var rows []int
	for _, p := range r.Points {
		if math.Hypot(p.X-x, p.Y-y) <= r.Radius {
			rows = append(rows, p.Row)
		}
	}
	sort.Ints(rows)
	return rows
}
