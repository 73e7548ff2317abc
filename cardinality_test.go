package fhirslice_test

import (
	"testing"

	fhirslice "github.com/tiro-health/fhirslice"
)

func TestParseCardinality(t *testing.T) {
	cases := []struct {
		in   string
		want fhirslice.Cardinality
	}{
		{"0..1", fhirslice.Optional()},
		{"1..1", fhirslice.Required()},
		{"0..*", fhirslice.ZeroOrMore()},
		{"1..*", fhirslice.AtLeastOne()},
		{"2..5", fhirslice.Cardinality{Min: 2, Max: 5}},
	}
	for _, tc := range cases {
		got, err := fhirslice.ParseCardinality(tc.in)
		if err != nil {
			t.Fatalf("ParseCardinality(%q): unexpected err: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCardinality(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Fatalf("String() = %q, want %q", got.String(), tc.in)
		}
	}
}

func TestParseCardinality_Invalid(t *testing.T) {
	for _, in := range []string{"", "1", "*..1", "2..1", "-1..1", "a..b"} {
		if _, err := fhirslice.ParseCardinality(in); err == nil {
			t.Fatalf("ParseCardinality(%q): expected error", in)
		}
	}
}

func TestCardinality_Contains(t *testing.T) {
	c := fhirslice.Cardinality{Min: 1, Max: 2}
	for n, want := range map[int]bool{0: false, 1: true, 2: true, 3: false} {
		if got := c.Contains(n); got != want {
			t.Fatalf("Contains(%d) = %v, want %v", n, got, want)
		}
	}
	u := fhirslice.AtLeastOne()
	if u.Contains(0) || !u.Contains(1) || !u.Contains(100) {
		t.Fatalf("unbounded Contains misbehaves: %v", u)
	}
}
