package main

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

const feedbackWidth = 10

// Feedback lists the highlighted rows with every column, followed by the
// column means over those rows. Lines end in "\n" so they can go straight
// into the session log.
func Feedback(t *Table, rows []int) []string {
	if len(rows) == 0 {
		return []string{"No highlighted points\n"}
	}

	lines := []string{fmt.Sprintf("\n%d highlighted point(s)\n", len(rows))}

	var b strings.Builder
	for _, label := range t.Labels {
		fmt.Fprintf(&b, " %*s", feedbackWidth, label)
	}
	lines = append(lines, b.String()+"\n")

	for _, r := range rows {
		b.Reset()
		fmt.Fprintf(&b, " %*d", feedbackWidth, t.IDs[r])
		for _, col := range t.Columns[1:] {
			fmt.Fprintf(&b, " %*.4f", feedbackWidth, col[r])
		}
		lines = append(lines, b.String()+"\n")
	}

	b.Reset()
	fmt.Fprintf(&b, " %*s", feedbackWidth, "mean")
	for _, m := range columnMeans(t, rows)[1:] {
		fmt.Fprintf(&b, " %*.4f", feedbackWidth, m)
	}
	lines = append(lines, b.String()+"\n")
	return lines
}

// columnMeans averages each column over rows, ignoring non-finite values.
// A column with no finite value averages to NaN.
func columnMeans(t *Table, rows []int) []float64 {
	means := make([]float64, t.Width())
	vals := make([]float64, 0, len(rows))
	for i, col := range t.Columns {
		vals = vals[:0]
		for _, r := range rows {
			if finite(col[r]) {
				vals = append(vals, col[r])
			}
		}
		if len(vals) == 0 {
			means[i] = math.NaN()
			continue
		}
		means[i] = stat.Mean(vals, nil)
	}
	return means
}

// FitFeedback reports the line fitted in each diagram.
func FitFeedback(views []View, fits []*Line) []string {
	var lines []string
	for i, v := range views {
		if i >= len(fits) || fits[i] == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("Fit %s vs %s: %v\n", v.YLabel, v.XLabel, *fits[i]))
	}
	return lines
}
