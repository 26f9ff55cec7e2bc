package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Group is a set of rows drawn in their own colour.
type Group struct {
	Name  string
	Color color.Color
	Rows  []int
}

// GroupArg is a -grp value before it is resolved against a table.
type GroupArg struct {
	Path, Color string
}

// ParseGroupArg splits "file,color" on the last comma.
func ParseGroupArg(s string) (GroupArg, error) {
	i := strings.LastIndexByte(s, ',')
	if i <= 0 || i == len(s)-1 {
		return GroupArg{}, fmt.Errorf("group %q: want file,color", s)
	}
	return GroupArg{Path: s[:i], Color: strings.TrimSpace(s[i+1:])}, nil
}

// matplotlib single-letter colours
var shortColors = map[string]color.RGBA{
	"b": {R: 0, G: 0, B: 255, A: 255},
	"g": {R: 0, G: 128, B: 0, A: 255},
	"r": {R: 255, G: 0, B: 0, A: 255},
	"c": {R: 0, G: 191, B: 191, A: 255},
	"m": {R: 191, G: 0, B: 191, A: 255},
	"y": {R: 191, G: 191, B: 0, A: 255},
	"k": {R: 0, G: 0, B: 0, A: 255},
	"w": {R: 255, G: 255, B: 255, A: 255},
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa, a one-letter shorthand or an
// SVG colour name.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		return parseHex(s, name[1:])
	}
	if c, ok := shortColors[name]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%q: %w", s, ErrBadColor)
}

func parseHex(orig, hex string) (color.Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("%q: %w", orig, ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", orig, ErrBadColor)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// reservedColor reports whether s names the background or highlight colour.
func reservedColor(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gray", "grey", "red", "r":
		return true
	}
	return false
}

// ResolveGroup maps the IDs listed in arg.Path to rows of t.
func ResolveGroup(t *Table, arg GroupArg) (Group, error) {
	col, err := ParseColor(arg.Color)
	if err != nil {
		return Group{}, err
	}
	if reservedColor(arg.Color) {
		log.Printf("group %s: %s is also used for background or highlighted points", arg.Path, arg.Color)
	}
	rows, err := ResolveIDs(t, arg.Path)
	if err != nil {
		return Group{}, err
	}
	return Group{Name: filepath.Base(arg.Path), Color: col, Rows: rows}, nil
}

// ResolveIDs reads an ID file and returns the matching rows of t.
func ResolveIDs(t *Table, path string) ([]int, error) {
	ids, err := ReadGroupFile(path)
	if err != nil {
		return nil, err
	}
	rows := make([]int, 0, len(ids))
	for _, id := range ids {
		r := t.IndexOfID(id)
		if r < 0 {
			return nil, fmt.Errorf("%s: id %d: %w", path, id, ErrUnknownID)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func ResolveGroups(t *Table, args []GroupArg) ([]Group, error) {
	groups := make([]Group, 0, len(args))
	for _, arg := range args {
		g, err := ResolveGroup(t, arg)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}
