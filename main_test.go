package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{
		"-col", "12,-4", "-col", "12,-10",
		"-grp", "testdata/better.num,#4f21b7",
		"-t", "-fit", "-note", "night 2",
		"testdata/mags.db",
	}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if o.input != "testdata/mags.db" {
		t.Fatalf("input = %q", o.input)
	}
	if len(o.pairs) != 2 || o.pairs[1] != (Pair{12, -10}) {
		t.Fatalf("pairs = %v", o.pairs)
	}
	if len(o.groups) != 1 || o.groups[0].Color != "#4f21b7" {
		t.Fatalf("groups = %v", o.groups)
	}
	if !o.talk || !o.fit || o.note != "night 2" || o.size != 8 || o.format != "png" {
		t.Fatalf("options = %+v", o)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no input", []string{"-col", "1,2"}},
		{"two inputs", []string{"-col", "1,2", "a.db", "b.db"}},
		{"no columns", []string{"a.db"}},
		{"bad column", []string{"-col", "1", "a.db"}},
		{"bad group", []string{"-col", "1,2", "-grp", "g.num", "a.db"}},
		{"gnuplot without out", []string{"-col", "1,2", "-gnuplot", "a.db"}},
		{"bad size", []string{"-col", "1,2", "-size", "0", "a.db"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := parseFlags(c.args, io.Discard); err == nil {
				t.Fatalf("parseFlags(%v) succeeded", c.args)
			}
		})
	}

	o, err := parseFlags([]string{"-version"}, io.Discard)
	if err != nil || !o.version {
		t.Fatalf("-version: %+v %v", o, err)
	}
}

func TestRunHeadless(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	o, err := parseFlags([]string{
		"-col", "12,-4",
		"-grp", "testdata/better.num,blue",
		"-mark", "testdata/bright.num",
		"-fit", "-o", out,
		"testdata/mags.db",
	}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(o); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(out, "diagram-1_12_-4.png")); err != nil {
		t.Fatalf("diagram not written: %v", err)
	}
	log, err := os.ReadFile(filepath.Join(out, "log.txt"))
	if err != nil {
		t.Fatalf("log.txt not written: %v", err)
	}
	for _, want := range []string{"Input: testdata/mags.db", "Wrote ", "2 highlighted point(s)"} {
		if !strings.Contains(string(log), want) {
			t.Fatalf("log.txt misses %q:\n%s", want, log)
		}
	}
}

func TestFlagExit(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseFlags([]string{"-nosuchflag", "a.db"}, &stderr)
	if err == nil {
		t.Fatal("unknown flag accepted")
	}
	printed := stderr.String()
	if !strings.Contains(printed, "nosuchflag") {
		t.Fatalf("flag set did not report the error: %q", printed)
	}
	if code := flagExit(err, &stderr); code != 1 || stderr.String() != printed {
		t.Fatalf("flagExit = %d, reported twice: %q", code, stderr.String())
	}

	stderr.Reset()
	_, err = parseFlags([]string{"-col", "1,2"}, &stderr)
	if code := flagExit(err, &stderr); code != 1 || strings.Count(stderr.String(), "input file") != 1 {
		t.Fatalf("flagExit = %d, stderr %q", code, stderr.String())
	}

	_, err = parseFlags([]string{"-h"}, io.Discard)
	if code := flagExit(err, io.Discard); code != 0 {
		t.Fatalf("-h exit = %d", code)
	}
}

func TestRunMissingInput(t *testing.T) {
	o := options{input: "testdata/absent.db", pairs: pairList{{1, 2}}, size: 8}
	err := run(o)
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "doesn't exist") {
		t.Fatalf("message = %q", err)
	}
}
