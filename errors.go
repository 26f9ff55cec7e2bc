package main

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrEmptyTable    = errors.New("no data rows")
	ErrBadRow        = errors.New("malformed row")
	ErrColumnRange   = errors.New("column out of range")
	ErrNoColumns     = errors.New("no column pairs given")
	ErrUnknownID     = errors.New("unknown object id")
	ErrBadColor      = errors.New("unrecognised colour")
	ErrDegenerateFit = errors.New("not enough distinct points to fit")
	ErrNoGnuplot     = errors.New("built without gnuplot support (rebuild with -tags gnuplot)")
)

// missingFileError reads the way the command line reports a missing input.
type missingFileError struct {
	Path string
}

func (e *missingFileError) Error() string {
	return fmt.Sprintf("File %s doesn't exist!", e.Path)
}

func (e *missingFileError) Is(target error) bool { return target == ErrFileNotFound }
