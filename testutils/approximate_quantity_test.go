package testutils

import (
	"math"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	q, err := Parse("1.35064388104767550", 2)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Contains(1.35064388104767550) {
		t.Error("interval does not contain its own literal")
	}
	if !q.Contains(1.35064388104767551) {
		t.Error("interval does not contain a 1-ulp neighbour")
	}
	if q.Contains(1.3506438810476800) {
		t.Error("interval contains a far value")
	}
	if q.Min() >= q.Max() {
		t.Errorf("degenerate interval [%g, %g]", q.Min(), q.Max())
	}
}

func TestParseExponent(t *testing.T) {
	// Digits in the exponent must not contribute to the error bound.
	q, err := Parse("1.5e10", 1)
	if err != nil {
		t.Fatal(err)
	}
	if w := q.Max() - q.Min(); math.Abs(w-2e9) > 1e-6*2e9 {
		t.Errorf("interval width %g, want 2e9", w)
	}
}

func TestParseHexadecimal(t *testing.T) {
	q, err := Parse("0x1.0p4", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Contains(16.0) {
		t.Errorf("[%g, %g] does not contain 16", q.Min(), q.Max())
	}
	if w := q.Max() - q.Min(); math.Abs(w-2.0) > 1e-12 {
		t.Errorf("interval width %g, want 2", w)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("xyz", 1); err == nil {
		t.Error("no error for a literal without digits")
	}
	if _, err := Parse("1.5", 10); err == nil {
		t.Error("no error for a decimal ulp > 9")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for an unparsable literal")
		}
	}()
	MustParse("zz", 1)
}

func TestDebugString(t *testing.T) {
	q := MustParse("2.5", 3)
	if s := q.DebugString(); s != "2.5(3)" {
		t.Errorf("DebugString = %q", s)
	}
}
