package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var snapshotFormats = []string{"png", "svg", "pdf"}

// logpath is the folder snapshots of this run go to:
// root/<date>/<time>[ note].
func logpath(root, note string, now time.Time) string {
	dir := now.Format("15-04-05")
	if note != "" {
		dir += " " + note
	}
	return filepath.Join(root, now.Format("2006-Jan-02"), dir)
}

// Session collects what a run reports so it can be written out next to its
// snapshots.
type Session struct {
	Dir     string
	LogFile []string
	// set once a snapshot has created Dir
	saved bool
}

func NewSession(root, note string, now time.Time) *Session {
	return &Session{Dir: logpath(root, note, now)}
}

// Log prints lines to stdout and keeps them for log.txt.
func (s *Session) Log(lines ...string) {
	for _, line := range lines {
		fmt.Print(line)
	}
	s.LogFile = append(s.LogFile, lines...)
}

// savePlot writes p in every snapshot format under dir/name.
func savePlot(p *plot.Plot, dir, name string, w, h vg.Length) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var paths []string
	for _, ext := range snapshotFormats {
		path := filepath.Join(dir, name+"."+ext)
		if err := p.Save(w, h, path); err != nil {
			return paths, fmt.Errorf("save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Snapshot saves diagram k and refreshes the session log beside it.
func (s *Session) Snapshot(p *plot.Plot, k int, w, h vg.Length) ([]string, error) {
	paths, err := savePlot(p, s.Dir, fmt.Sprintf("diagram-%d", k+1), w, h)
	if err != nil {
		return paths, err
	}
	s.LogFile = append(s.LogFile, fmt.Sprintf("Snapshot of diagram %d: %s\n", k+1, paths[0]))
	s.saved = true
	return paths, writeLog(s.Dir, s.LogFile)
}

// Flush rewrites log.txt so lines logged after the last snapshot are kept.
// Sessions without snapshots leave no folder behind.
func (s *Session) Flush() error {
	if !s.saved {
		return nil
	}
	return writeLog(s.Dir, s.LogFile)
}

func writeLog(dir string, logFile []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	txt, err := os.Create(filepath.Join(dir, "log.txt"))
	if err != nil {
		return err
	}
	defer txt.Close()

	w := bufio.NewWriter(txt)
	for _, line := range logFile {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return w.Flush()
}

// diagramName is the file stem used for view k in headless output.
func diagramName(k int, v View) string {
	return fmt.Sprintf("diagram-%d_%d_%d", k+1, v.Pair.X, v.Pair.Y)
}

// RenderAll writes every view to dir in the given format without a UI.
func RenderAll(dir, format string, views []View, layers []Layers, w, h vg.Length) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	var paths []string
	for k, v := range views {
		p, err := NewDiagram(v, layers[k])
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, diagramName(k, v)+"."+format)
		if err := p.Save(w, h, path); err != nil {
			return paths, fmt.Errorf("save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

type pointGroup struct {
	name string
	data [][]float64
}

// gnuplotGroups splits a view into the point groups gnuplot draws, bottom
// layer first. Empty groups are dropped.
func gnuplotGroups(v View, l Layers) []pointGroup {
	used := map[string]bool{}
	var out []pointGroup
	add := func(name string, pts []Point) {
		if len(pts) == 0 {
			return
		}
		base := name
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s (%d)", base, n)
		}
		used[name] = true
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = p.X, p.Y
		}
		out = append(out, pointGroup{name: name, data: [][]float64{xs, ys}})
	}

	add("all", v.AllPoints())
	for _, g := range l.Groups {
		add(g.Name, v.Points(g.Rows))
	}
	add("highlighted", v.Points(l.Selected))
	return out
}

// gnuplotRange rounds [lo, hi] outwards to integers, swapping the ends for
// a reversed axis.
func gnuplotRange(values []float64, reversed bool) (int, int) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if finite(v) {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 0) {
		lo, hi = 0, 1
	}
	start, end := int(math.Floor(lo)), int(math.Ceil(hi))
	if start == end {
		start, end = start-1, end+1
	}
	if reversed {
		return end, start
	}
	return start, end
}
