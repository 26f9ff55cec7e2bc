package main

import (
	"strings"
	"testing"
)

func TestFeedback(t *testing.T) {
	tab := readTestTable(t)

	if got := Feedback(tab, nil); len(got) != 1 || !strings.Contains(got[0], "No highlighted") {
		t.Fatalf("empty feedback = %q", got)
	}

	lines := Feedback(tab, []int{1, 5})
	// count, header, two rows, mean
	if len(lines) != 5 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "2 highlighted") {
		t.Fatalf("count line = %q", lines[0])
	}
	if f := strings.Fields(lines[1]); len(f) != 15 || f[0] != "no" || f[14] != "errV-I" {
		t.Fatalf("header = %q", lines[1])
	}
	if f := strings.Fields(lines[2]); f[0] != "48" || f[3] != "17.2035" {
		t.Fatalf("row = %q", lines[2])
	}
	if f := strings.Fields(lines[3]); f[0] != "6408" || f[9] != "-0.6015" {
		t.Fatalf("row = %q", lines[3])
	}
	// mean of B over rows 48 and 6408: (17.2035 + 16.7973) / 2
	if f := strings.Fields(lines[4]); f[0] != "mean" || f[3] != "17.0004" {
		t.Fatalf("mean = %q", lines[4])
	}
	for _, l := range lines {
		if !strings.HasSuffix(l, "\n") {
			t.Fatalf("line without newline: %q", l)
		}
	}
}

func TestFitFeedback(t *testing.T) {
	_, views := testViews(t, Pair{12, -4}, Pair{12, -10})
	lines := FitFeedback(views, []*Line{nil, {Slope: 0.5, Intercept: -0.25}})
	if len(lines) != 1 {
		t.Fatalf("lines = %q", lines)
	}
	if want := "Fit U-B vs B-V: y = 0.5000 x -0.2500\n"; lines[0] != want {
		t.Fatalf("line = %q, want %q", lines[0], want)
	}
}
