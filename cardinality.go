package fhirslice

import (
	"strconv"
	"strings"

	"github.com/tiro-health/fhirslice/i18n"
)

// Unbounded marks a cardinality with no upper limit ("*" in FHIR notation).
const Unbounded = -1

// Cardinality is the declared min/max element count for a slice.
// Invariant: 0 <= Min and (Max == Unbounded or Min <= Max).
type Cardinality struct {
	Min int
	Max int
}

// Common cardinalities.

// Optional declares 0..1.
func Optional() Cardinality { return Cardinality{Min: 0, Max: 1} }

// Required declares 1..1.
func Required() Cardinality { return Cardinality{Min: 1, Max: 1} }

// ZeroOrMore declares 0..*.
func ZeroOrMore() Cardinality { return Cardinality{Min: 0, Max: Unbounded} }

// AtLeastOne declares 1..*.
func AtLeastOne() Cardinality { return Cardinality{Min: 1, Max: Unbounded} }

// IsUnbounded reports whether the cardinality has no upper limit.
func (c Cardinality) IsUnbounded() bool { return c.Max == Unbounded }

// Contains reports whether n satisfies the declared range.
func (c Cardinality) Contains(n int) bool {
	if n < c.Min {
		return false
	}
	return c.IsUnbounded() || n <= c.Max
}

// Validate checks the cardinality invariant.
func (c Cardinality) Validate() error {
	if c.Min < 0 || (!c.IsUnbounded() && c.Max < c.Min) {
		return Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidCardinality,
			Message: i18n.T(CodeInvalidCardinality, nil),
			Hint:    "want 0 <= min <= max or max = *, got " + c.String(),
		}}
	}
	return nil
}

// String renders the FHIR notation, e.g. "0..1" or "1..*".
func (c Cardinality) String() string {
	max := "*"
	if !c.IsUnbounded() {
		max = strconv.Itoa(c.Max)
	}
	return strconv.Itoa(c.Min) + ".." + max
}

// ParseCardinality parses FHIR notation ("0..1", "1..*", ...).
func ParseCardinality(s string) (Cardinality, error) {
	bad := func() (Cardinality, error) {
		return Cardinality{}, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidCardinality,
			Message: i18n.T(CodeInvalidCardinality, nil),
			Hint:    "cannot parse '" + s + "'",
		}}
	}
	lo, hi, ok := strings.Cut(s, "..")
	if !ok {
		return bad()
	}
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return bad()
	}
	c := Cardinality{Min: min, Max: Unbounded}
	if hi = strings.TrimSpace(hi); hi != "*" {
		max, err := strconv.Atoi(hi)
		if err != nil {
			return bad()
		}
		c.Max = max
	}
	if err := c.Validate(); err != nil {
		return Cardinality{}, err
	}
	return c, nil
}
