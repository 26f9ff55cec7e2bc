package main

import "sort"

// Selection is the set of highlighted rows every open diagram shares.
// It is only touched from the UI goroutine.
type Selection struct {
	rows      map[int]bool
	listeners []func()
}

func NewSelection() *Selection {
	return &Selection{rows: map[int]bool{}}
}

// OnChange registers fn to run after every change.
func (s *Selection) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// Toggle flips the highlight of each row.
func (s *Selection) Toggle(rows ...int) {
	if len(rows) == 0 {
		return
	}
	for _, r := range rows {
		if s.rows[r] {
			delete(s.rows, r)
		} else {
			s.rows[r] = true
		}
	}
	s.changed()
}

// Set replaces the selection with rows.
func (s *Selection) Set(rows ...int) {
	s.rows = make(map[int]bool, len(rows))
	for _, r := range rows {
		s.rows[r] = true
	}
	s.changed()
}

func (s *Selection) Clear() {
	if len(s.rows) == 0 {
		return
	}
	s.rows = map[int]bool{}
	s.changed()
}

func (s *Selection) Contains(row int) bool { return s.rows[row] }

func (s *Selection) Len() int { return len(s.rows) }

// Rows returns the selected rows in ascending order.
func (s *Selection) Rows() []int {
	out := make([]int, 0, len(s.rows))
	for r := range s.rows {
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}

func (s *Selection) changed() {
	for _, fn := range s.listeners {
		fn()
	}
}
