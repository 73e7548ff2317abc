package fhirslice

import (
	"context"

	json "github.com/goccy/go-json"

	"github.com/tiro-health/fhirslice/i18n"
)

// ParseJSON decodes a JSON array into raw elements and constructs the
// discriminated array. The decoded forms are retained as the raw sequence,
// so MarshalJSON round-trips the input structurally.
func (p *Profile) ParseJSON(ctx context.Context, data []byte) (*ElementArray, error) {
	var raws []any
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil),
			Hint:    "expected a JSON array",
			Cause:   err,
		}}
	}
	return p.NewArray(ctx, raws)
}

// MarshalJSON re-emits the original raw sequence in original order.
// Named-slice materialization is a read-side projection only; it never
// reorders, merges or drops positions on the way out.
func (a *ElementArray) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.raw)
}
