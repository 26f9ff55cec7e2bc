//go:build gnuplot

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Arafatk/glot"
)

// glot looks gnuplot up when the package loads and panics without it, so it
// is only linked into builds tagged gnuplot.
const gnuplotSupported = true

// saveGnuplot renders the view through gnuplot into path (PNG). The file is
// complete once it returns.
func saveGnuplot(v View, l Layers, path string) (err error) {
	gp, err := glot.NewPlot(2, false, false)
	if err != nil {
		return fmt.Errorf("gnuplot: %w", err)
	}
	defer func() {
		if cerr := gp.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("gnuplot %s: %w", path, cerr)
		}
	}()
	gp.SetTitle(fmt.Sprintf("Diagram for %d points", v.Len()))
	gp.SetXLabel(v.XLabel)
	gp.SetYLabel(v.YLabel)

	for _, g := range gnuplotGroups(v, l) {
		if err := gp.AddPointGroup(g.name, "points", g.data); err != nil {
			return fmt.Errorf("gnuplot %s: %w", g.name, err)
		}
	}
	gp.SetXrange(gnuplotRange(v.X, v.Pair.X.Reversed()))
	gp.SetYrange(gnuplotRange(v.Y, v.Pair.Y.Reversed()))

	if err := gp.SavePlot(path); err != nil {
		return fmt.Errorf("gnuplot %s: %w", path, err)
	}
	return nil
}

// GnuplotAll mirrors RenderAll through gnuplot.
func GnuplotAll(dir string, views []View, layers []Layers) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	var paths []string
	for k, v := range views {
		path := filepath.Join(dir, diagramName(k, v)+".gnuplot.png")
		if err := saveGnuplot(v, layers[k], path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
