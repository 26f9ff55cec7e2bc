//go:build !gnuplot

package main

const gnuplotSupported = false

// GnuplotAll is unavailable without the gnuplot build tag.
func GnuplotAll(dir string, views []View, layers []Layers) ([]string, error) {
	return nil, ErrNoGnuplot
}
