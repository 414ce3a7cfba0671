// Package testutils provides helpers for specifying numerical tolerances in
// tests. A tolerance is written as a literal with an error measured in units
// in the last place of that literal, e.g. MustParse("1.35064388104767550", 2)
// accepts any value within 2 ulps of the written digits.
package testutils

import (
	"fmt"
	"strconv"
	"strings"
)

// ApproximateQuantity is an interval derived from a numeric literal and an
// error expressed in units in the last place of the literal.
type ApproximateQuantity struct {
	representation string
	ulp            int
	min, max       float64
}

// MustParse builds an ApproximateQuantity from a decimal or C99 hexadecimal
// floating-point literal. It panics if the representation does not parse.
func MustParse(representation string, ulp int) ApproximateQuantity {
	q, err := Parse(representation, ulp)
	if err != nil {
		panic(err)
	}
	return q
}

// Parse builds an ApproximateQuantity from a decimal or C99 hexadecimal
// floating-point literal. The error bound is obtained by zeroing every
// significant digit of the literal except the last one, which is set to ulp.
func Parse(representation string, ulp int) (ApproximateQuantity, error) {
	hex := strings.HasPrefix(representation, "0x") ||
		strings.HasPrefix(representation, "0X")

	errorRepresentation := []byte(representation)
	lastDigit := -1
	start := 0
	if hex {
		start = 2
	}
	for i := start; i < len(errorRepresentation); i++ {
		ch := errorRepresentation[i]
		if !hex && (ch == 'e' || ch == 'E') {
			break
		}
		if hex && (ch == 'p' || ch == 'P') {
			break
		}
		switch {
		case ch >= '1' && ch <= '9':
			errorRepresentation[i] = '0'
			lastDigit = i
		case ch == '0':
			lastDigit = i
		case hex && ((ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')):
			errorRepresentation[i] = '0'
			lastDigit = i
		}
	}
	if lastDigit < 0 {
		return ApproximateQuantity{}, fmt.Errorf("no digits in %q", representation)
	}
	if ulp <= 9 {
		errorRepresentation[lastDigit] = byte('0' + ulp)
	} else if hex && ulp <= 15 {
		errorRepresentation[lastDigit] = byte('A' + ulp - 10)
	} else {
		return ApproximateQuantity{}, fmt.Errorf("ulp %d out of range for %q", ulp, representation)
	}

	value, err := strconv.ParseFloat(representation, 64)
	if err != nil {
		return ApproximateQuantity{}, fmt.Errorf("parsing %q: %w", representation, err)
	}
	bound, err := strconv.ParseFloat(string(errorRepresentation), 64)
	if err != nil {
		return ApproximateQuantity{}, fmt.Errorf("parsing %q: %w", errorRepresentation, err)
	}
	return ApproximateQuantity{
		representation: representation,
		ulp:            ulp,
		min:            value - bound,
		max:            value + bound,
	}, nil
}

// Min returns the lower bound of the interval.
func (q ApproximateQuantity) Min() float64 { return q.min }

// Max returns the upper bound of the interval.
func (q ApproximateQuantity) Max() float64 { return q.max }

// Contains reports whether actual lies in the interval.
func (q ApproximateQuantity) Contains(actual float64) bool {
	return q.min <= actual && actual <= q.max
}

// DebugString formats the quantity as the literal followed by the ulp count.
func (q ApproximateQuantity) DebugString() string {
	return fmt.Sprintf("%s(%d)", q.representation, q.ulp)
}
