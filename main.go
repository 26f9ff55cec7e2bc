// Command photometric-diagrams draws interactive colour-magnitude and
// colour-colour diagrams from a photometry table.
//
// The input must hold whitespace-separated columns under a one-line header
// that starts with '#'. Header labels name the axes. Each -col x,y opens one
// diagram; a negative column reverses that axis. Clicking a point
// highlights it in red in every open diagram.
//
// -grp file,color marks the stars listed in file (one ID per line, matched
// against the first input column) in color, given as an html hex string
// ("#4f21b7") or a name (blue or b). Gray and red are used for the
// background and the highlighted points.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2/app"
	"gonum.org/v1/plot/vg"
)

const version = "2.0.0"

// snapshot root, relative to the working directory
const plotsDir = "plots"

type pairList []Pair

func (l *pairList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func (l *pairList) Set(s string) error {
	p, err := ParsePair(s)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

type groupList []GroupArg

func (l *groupList) String() string {
	parts := make([]string, len(*l))
	for i, g := range *l {
		parts[i] = g.Path + "," + g.Color
	}
	return strings.Join(parts, " ")
}

func (l *groupList) Set(s string) error {
	g, err := ParseGroupArg(s)
	if err != nil {
		return err
	}
	*l = append(*l, g)
	return nil
}

type options struct {
	input   string
	pairs   pairList
	groups  groupList
	mark    string
	talk    bool
	fit     bool
	out     string
	format  string
	gnuplot bool
	size    float64
	note    string
	version bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("photometric-diagrams", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&o.pairs, "col", "column pair `x,y` for one diagram (repeatable); a negative value reverses the axis")
	fs.Var(&o.groups, "grp", "`file,color`: mark the star IDs listed in file with color (repeatable)")
	fs.StringVar(&o.mark, "mark", "", "highlight the star IDs listed in `file` at start")
	fs.BoolVar(&o.talk, "t", false, "talkative mode: print feedback with every click")
	fs.BoolVar(&o.fit, "fit", false, "draw a least-squares line through highlighted points")
	fs.StringVar(&o.out, "o", "", "write diagrams to `dir` and exit without opening windows")
	fs.StringVar(&o.format, "format", "png", "image format for -o: png, svg, pdf, eps, jpg or tif")
	fs.BoolVar(&o.gnuplot, "gnuplot", false, "with -o, also render each diagram through gnuplot")
	fs.Float64Var(&o.size, "size", 8, "diagram width in inches (height is 3/4 of it)")
	fs.StringVar(&o.note, "note", "", "note to append to the snapshot folder name")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: photometric-diagrams [flags] input_file\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, fmt.Errorf("%w: %w", errFlagSyntax, err)
	}
	if o.version {
		return o, nil
	}

	if fs.NArg() != 1 {
		return o, errors.New("exactly one input file is required")
	}
	o.input = fs.Arg(0)
	if len(o.pairs) == 0 {
		return o, fmt.Errorf("-col: %w", ErrNoColumns)
	}
	if o.size <= 0 {
		return o, fmt.Errorf("-size must be positive, got %v", o.size)
	}
	if o.gnuplot && o.out == "" {
		return o, errors.New("-gnuplot needs -o")
	}
	if o.gnuplot && !gnuplotSupported {
		return o, fmt.Errorf("-gnuplot: %w", ErrNoGnuplot)
	}
	return o, nil
}

// errFlagSyntax marks errors the FlagSet has already printed with usage.
var errFlagSyntax = errors.New("flag syntax")

// flagExit reports err from parseFlags and returns the exit status.
func flagExit(err error, stderr io.Writer) int {
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errFlagSyntax):
		return 1
	}
	fmt.Fprintln(stderr, err)
	return 1
}

func flags() options {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(flagExit(err, os.Stderr))
	}
	if o.version {
		fmt.Printf("photometric-diagrams\n * Version: %s\n * Licensed under the MIT license\n", version)
		os.Exit(0)
	}
	return o
}

func main() {
	log.SetPrefix("photometric-diagrams: ")
	log.SetFlags(0)

	opts := flags()
	if err := run(opts); err != nil {
		var missing *missingFileError
		if errors.As(err, &missing) {
			fmt.Println(missing)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func run(opts options) error {
	t, err := ReadTable(opts.input)
	if err != nil {
		return err
	}
	groups, err := ResolveGroups(t, opts.groups)
	if err != nil {
		return err
	}

	session := NewSession(plotsDir, opts.note, time.Now())
	d, err := NewDiagrams(t, opts.pairs, groups, session)
	if err != nil {
		return err
	}
	d.Fit = opts.fit
	if opts.mark != "" {
		rows, err := ResolveIDs(t, opts.mark)
		if err != nil {
			return err
		}
		d.Selection.Set(rows...)
	}
	session.LogFile = logHeader(opts, d)

	w := vg.Length(opts.size) * vg.Inch
	h := w * 3 / 4

	if opts.out != "" {
		paths, err := RenderAll(opts.out, opts.format, d.Views, d.AllLayers(), w, h)
		for _, p := range paths {
			log.Printf("wrote %s", p)
			session.LogFile = append(session.LogFile, fmt.Sprintf("Wrote %s\n", p))
		}
		if err != nil {
			return err
		}
		if opts.gnuplot {
			paths, err := GnuplotAll(opts.out, d.Views, d.AllLayers())
			for _, p := range paths {
				log.Printf("wrote %s", p)
				session.LogFile = append(session.LogFile, fmt.Sprintf("Wrote %s\n", p))
			}
			if err != nil {
				return err
			}
		}
		if d.Selection.Len() > 0 {
			d.Feedback()
		}
		return writeLog(opts.out, session.LogFile)
	}

	a := app.NewWithID("io.github.hamletthehamster.photometric-diagrams")
	newViewer(a, d, opts.talk, w, h).Run()
	return session.Flush()
}

// logHeader opens the session log with what this run was asked to draw.
func logHeader(opts options, d *Diagrams) []string {
	logFile := []string{
		fmt.Sprintf("Input: %s (%d rows, %d columns)\n", d.Table.Path, d.Table.Len(), d.Table.Width()),
	}
	if opts.note != "" {
		logFile = append(logFile, "Runtime note: "+opts.note+"\n")
	}
	for k, v := range d.Views {
		logFile = append(logFile, fmt.Sprintf("Diagram %d: %s (col %d) vs %s (col %d)\n",
			k+1, v.YLabel, v.Pair.Y, v.XLabel, v.Pair.X))
	}
	for _, g := range d.Groups {
		logFile = append(logFile, fmt.Sprintf("Group %s: %d points\n", g.Name, len(g.Rows)))
	}
	if opts.talk {
		logFile = append(logFile, "Talkative mode\n")
	}
	return logFile
}
