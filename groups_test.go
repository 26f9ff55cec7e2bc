package main

import (
	"bytes"
	"errors"
	"image/color"
	"log"
	"os"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#4f21b7", color.NRGBA{R: 0x4f, G: 0x21, B: 0xb7, A: 255}},
		{"#4F21B7", color.NRGBA{R: 0x4f, G: 0x21, B: 0xb7, A: 255}},
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"#00ff0080", color.NRGBA{G: 255, A: 0x80}},
		{"b", color.NRGBA{B: 255, A: 255}},
		{"blue", color.NRGBA{B: 255, A: 255}},
		{" Orange ", color.NRGBA{R: 255, G: 165, A: 255}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.in, err)
		}
		if n := color.NRGBAModel.Convert(got).(color.NRGBA); n != c.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", c.in, n, c.want)
		}
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "notacolour"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrBadColor) {
			t.Fatalf("ParseColor(%q) err = %v", bad, err)
		}
	}
}

func TestParseGroupArg(t *testing.T) {
	g, err := ParseGroupArg("dir,with,commas/better.num,#4f21b7")
	if err != nil {
		t.Fatal(err)
	}
	if g.Path != "dir,with,commas/better.num" || g.Color != "#4f21b7" {
		t.Fatalf("arg = %+v", g)
	}
	for _, bad := range []string{"better.num", ",blue", "better.num,"} {
		if _, err := ParseGroupArg(bad); err == nil {
			t.Fatalf("ParseGroupArg(%q) succeeded", bad)
		}
	}
}

func TestResolveGroup(t *testing.T) {
	tab := readTestTable(t)
	g, err := ResolveGroup(tab, GroupArg{Path: "testdata/better.num", Color: "blue"})
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "better.num" {
		t.Fatalf("name = %q", g.Name)
	}
	if len(g.Rows) != 3 || g.Rows[0] != 1 || g.Rows[1] != 2 || g.Rows[2] != 4 {
		t.Fatalf("rows = %v", g.Rows)
	}

	_, err = ResolveGroup(tab, GroupArg{Path: "testdata/unknown.num", Color: "blue"})
	if !errors.Is(err, ErrUnknownID) {
		t.Fatalf("err = %v, want ErrUnknownID", err)
	}
	_, err = ResolveGroup(tab, GroupArg{Path: "testdata/better.num", Color: "blurple"})
	if !errors.Is(err, ErrBadColor) {
		t.Fatalf("err = %v, want ErrBadColor", err)
	}
	_, err = ResolveGroups(tab, []GroupArg{{Path: "testdata/none.num", Color: "b"}})
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
}

func TestResolveGroupReservedColor(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	tab := readTestTable(t)
	cases := []struct {
		color string
		warn  bool
	}{
		{"gray", true},
		{"Grey", true},
		{"red", true},
		{"r", true},
		{"#ff0000", false},
		{"blue", false},
	}
	for _, c := range cases {
		buf.Reset()
		g, err := ResolveGroup(tab, GroupArg{Path: "testdata/better.num", Color: c.color})
		if err != nil {
			t.Fatalf("%s: %v", c.color, err)
		}
		if len(g.Rows) != 3 {
			t.Fatalf("%s: rows = %v", c.color, g.Rows)
		}
		if got := strings.Contains(buf.String(), "also used for"); got != c.warn {
			t.Fatalf("%s: warned = %v, want %v (log %q)", c.color, got, c.warn, buf.String())
		}
	}
}
