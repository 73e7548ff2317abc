// Package extension models FHIR extension arrays: elements carrying a url
// and a single value[x] field, sliced by url.
package extension

import (
	fhirslice "github.com/tiro-health/fhirslice"
	"github.com/tiro-health/fhirslice/dsl"
)

// Extension is a simple extension: a url plus one value[x] choice field.
// Unrecognized urls stay in the array's default bucket in raw form.
type Extension struct {
	URL          string   `json:"url"`
	ValueString  *string  `json:"valueString,omitempty"`
	ValueInteger *int     `json:"valueInteger,omitempty"`
	ValueDecimal *float64 `json:"valueDecimal,omitempty"`
	ValueBoolean *bool    `json:"valueBoolean,omitempty"`
	ValueCode    *string  `json:"valueCode,omitempty"`
}

// Value returns the populated value[x] field, or nil when none is set.
func (e Extension) Value() any {
	switch {
	case e.ValueString != nil:
		return *e.ValueString
	case e.ValueInteger != nil:
		return *e.ValueInteger
	case e.ValueDecimal != nil:
		return *e.ValueDecimal
	case e.ValueBoolean != nil:
		return *e.ValueBoolean
	case e.ValueCode != nil:
		return *e.ValueCode
	}
	return nil
}

// Decl declares one url-bound extension slice. A nil Schema binds the
// generic Extension type.
type Decl struct {
	Name        string
	URL         string
	Cardinality fhirslice.Cardinality
	Schema      fhirslice.ElementSchema
}

// URLDiscriminator classifies raw extensions by their url field.
func URLDiscriminator(urlToSlice map[string]fhirslice.SliceKey) fhirslice.Discriminator {
	return fhirslice.ValueDiscriminator("url", urlToSlice)
}

// NewProfile builds an extension-array profile from url-bound declarations,
// preserving declaration order.
func NewProfile(decls []Decl, opts ...fhirslice.ProfileOption) (*fhirslice.Profile, error) {
	urlToSlice := make(map[string]fhirslice.SliceKey, len(decls))
	sds := make([]fhirslice.SliceDeclaration, 0, len(decls))
	for _, d := range decls {
		urlToSlice[d.URL] = d.Name
		schema := d.Schema
		if schema == nil {
			schema = dsl.Bind[Extension]()
		}
		sds = append(sds, fhirslice.SliceDeclaration{
			Name:        d.Name,
			Schema:      schema,
			Cardinality: d.Cardinality,
		})
	}
	return fhirslice.NewProfile(URLDiscriminator(urlToSlice), sds, opts...)
}

// MustProfile is like NewProfile but panics on error.
func MustProfile(decls []Decl, opts ...fhirslice.ProfileOption) *fhirslice.Profile {
	p, err := NewProfile(decls, opts...)
	if err != nil {
		panic(err)
	}
	return p
}
