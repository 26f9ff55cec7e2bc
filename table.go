package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

// Table is a photometry file held in memory: one label and one float column
// per field, plus the first field again as integer object IDs.
type Table struct {
	Path    string
	Labels  []string
	IDs     []int
	Columns [][]float64
}

func (t *Table) Len() int { return len(t.IDs) }

func (t *Table) Width() int { return len(t.Columns) }

// Column returns the 0-based column i.
func (t *Table) Column(i int) []float64 { return t.Columns[i] }

func (t *Table) Label(i int) string { return t.Labels[i] }

// Row returns every field of row r in file order.
func (t *Table) Row(r int) []float64 {
	row := make([]float64, len(t.Columns))
	for i, col := range t.Columns {
		row[i] = col[r]
	}
	return row
}

// IndexOfID returns the first row carrying id, or -1.
func (t *Table) IndexOfID(id int) int {
	for r, v := range t.IDs {
		if v == id {
			return r
		}
	}
	return -1
}

func openData(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &missingFileError{Path: path}
	}
	return f, err
}

func ReadTable(path string) (*Table, error) {
	f, err := openData(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := parseTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

func parseTable(r io.Reader) (*Table, error) {
	t := &Table{}
	var header []string
	first := true
	lineNo := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		// The leading comment line carries the labels.
		if first {
			first = false
			if strings.HasPrefix(line, "#") {
				header = strings.Fields(strings.TrimPrefix(line, "#"))
				continue
			}
		}

		fields := strings.Fields(stripComment(line))
		if len(fields) == 0 {
			continue
		}
		if t.Columns == nil {
			t.Columns = make([][]float64, len(fields))
		}
		if len(fields) != len(t.Columns) {
			return nil, fmt.Errorf("line %d: got %d fields, want %d: %w", lineNo, len(fields), len(t.Columns), ErrBadRow)
		}

		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %q: %w", lineNo, i+1, field, ErrBadRow)
			}
			t.Columns[i] = append(t.Columns[i], v)
		}
		t.IDs = append(t.IDs, toID(fields[0], t.Columns[0][len(t.Columns[0])-1]))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(t.IDs) == 0 {
		return nil, ErrEmptyTable
	}

	t.Labels = make([]string, len(t.Columns))
	for i := range t.Labels {
		if i < len(header) {
			t.Labels[i] = header[i]
		} else {
			t.Labels[i] = fmt.Sprintf("col%d", i+1)
		}
	}
	return t, nil
}

// ReadGroupFile reads one object ID per line, keeping file order.
func ReadGroupFile(path string) ([]int, error) {
	f, err := openData(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ids []int
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: line %d: %q: %w", path, lineNo, fields[0], ErrBadRow)
		}
		ids = append(ids, toID(fields[0], v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ids, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

func toID(field string, v float64) int {
	if id, err := strconv.Atoi(field); err == nil {
		return id
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v)
}
