//go:build gnuplot

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGnuplotAll(t *testing.T) {
	_, views := testViews(t, Pair{12, -4}, Pair{12, -10})
	layers := []Layers{{Selected: []int{0}}, {}}

	paths, err := GnuplotAll(filepath.Join(t.TempDir(), "out"), views, layers)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"diagram-1_12_-4.gnuplot.png", "diagram-2_12_-10.gnuplot.png"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v", paths)
	}
	// gnuplot has exited by now, so the files are complete
	for i, p := range paths {
		if filepath.Base(p) != want[i] {
			t.Fatalf("path %d = %q, want %q", i, p, want[i])
		}
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Fatalf("%s not written: %v", p, err)
		}
	}
}
