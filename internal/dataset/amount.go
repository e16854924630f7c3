package dataset

import (
	"strconv"
	"strings"
)

// Amount is an optional numeric value. A missing or unparseable cell yields
// Valid == false instead of a NaN sentinel, so downstream arithmetic cannot
// silently operate on missing data.
type Amount struct {
	Value float64
	Valid bool
}

// Some wraps a present value.
func Some(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// ParseAmount parses a numeric cell. Empty or malformed cells are invalid.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Amount{}
	}
	return Amount{Value: v, Valid: true}
}

// Mul multiplies two amounts. The product of anything with a missing value
// is missing.
func (a Amount) Mul(b Amount) Amount {
	if !a.Valid || !b.Valid {
		return Amount{}
	}
	return Amount{Value: a.Value * b.Value, Valid: true}
}

// Add sums two amounts, skipping missing operands. The sum of two missing
// amounts stays missing.
func (a Amount) Add(b Amount) Amount {
	if !a.Valid {
		return b
	}
	if !b.Valid {
		return a
	}
	return Amount{Value: a.Value + b.Value, Valid: true}
}

// String renders the value as a plain decimal, or "" when missing.
func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return strconv.FormatFloat(a.Value, 'f', -1, 64)
}
