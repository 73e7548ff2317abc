package dsl

import (
	"bytes"
	"context"

	json "github.com/goccy/go-json"

	fhirslice "github.com/tiro-health/fhirslice"
	"github.com/tiro-health/fhirslice/i18n"
)

// Bind materializes raw elements into struct type T through go-json.
// Unknown fields in the raw element are tolerated; use BindStrict to reject
// them.
func Bind[T any]() fhirslice.ElementSchema {
	return bindSchema[T](false)
}

// BindStrict is Bind with unknown-field rejection.
func BindStrict[T any]() fhirslice.ElementSchema {
	return bindSchema[T](true)
}

func bindSchema[T any](strict bool) fhirslice.ElementSchema {
	return fhirslice.SchemaFunc(func(ctx context.Context, v any) (any, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fhirslice.Issues{fhirslice.Issue{
				Path:    "/",
				Code:    fhirslice.CodeInvalidType,
				Message: i18n.T(fhirslice.CodeInvalidType, nil),
				Hint:    "element is not JSON-representable",
				Cause:   err,
			}}
		}
		dec := json.NewDecoder(bytes.NewReader(b))
		if strict {
			dec.DisallowUnknownFields()
		}
		var out T
		if err := dec.Decode(&out); err != nil {
			return nil, fhirslice.Issues{fhirslice.Issue{
				Path:    "/",
				Code:    fhirslice.CodeInvalidType,
				Message: i18n.T(fhirslice.CodeInvalidType, nil),
				Cause:   err,
			}}
		}
		return out, nil
	})
}
