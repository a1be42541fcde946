// Package drill builds and orders the multiplication facts for a quiz.
package drill

import (
	"errors"
	"fmt"
)

const (
	// MinDan is the lowest multiplication table row.
	MinDan = 1

	// MaxDan is the highest multiplication table row.
	MaxDan = 9
)

// ErrInvalidRange is wrapped by every RangeError.
var ErrInvalidRange = errors.New("invalid dan range")

// Question is a single multiplication fact.
type Question struct {
	// Multiplicand is the dan (row) the fact belongs to, 1-9.
	Multiplicand int

	// Multiplier is the factor the row is multiplied by, 1-9.
	Multiplier int
}

// Product returns Multiplicand × Multiplier.
func (q Question) Product() int {
	return q.Multiplicand * q.Multiplier
}

// ColorKey returns the row color key for the question.
func (q Question) ColorKey() ColorKey {
	return ColorKey(q.Multiplicand)
}

func (q Question) String() string {
	return fmt.Sprintf("%d × %d", q.Multiplicand, q.Multiplier)
}

// Range is a validated, inclusive span of dan rows.
type Range struct {
	From int
	To   int
}

// RangeError describes a rejected range.
type RangeError struct {
	From   int
	To     int
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid dan range %d-%d: %s", e.From, e.To, e.Reason)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// NewRange validates from and to. Out-of-bounds values are rejected, never clamped.
func NewRange(from, to int) (Range, error) {
	switch {
	case from < MinDan:
		return Range{}, &RangeError{From: from, To: to, Reason: fmt.Sprintf("from must be at least %d", MinDan)}
	case to > MaxDan:
		return Range{}, &RangeError{From: from, To: to, Reason: fmt.Sprintf("to must be at most %d", MaxDan)}
	case from > to:
		return Range{}, &RangeError{From: from, To: to, Reason: "from must not exceed to"}
	}
	return Range{From: from, To: to}, nil
}

// FullRange returns the 1-9 range.
func FullRange() Range {
	return Range{From: MinDan, To: MaxDan}
}

// Rows returns the number of dan rows in the range.
func (r Range) Rows() int {
	return r.To - r.From + 1
}

// Size returns the number of questions the range produces.
func (r Range) Size() int {
	return r.Rows() * MaxDan
}

func (r Range) String() string {
	if r.From == r.To {
		return fmt.Sprintf("%d", r.From)
	}
	return fmt.Sprintf("%d-%d", r.From, r.To)
}
