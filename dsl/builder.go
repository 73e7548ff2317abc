package dsl

import (
	fhirslice "github.com/tiro-health/fhirslice"
)

type sliceBuilder struct {
	decls []fhirslice.SliceDeclaration
	disc  fhirslice.Discriminator
	opts  []fhirslice.ProfileOption
}

// Slices creates a new profile builder. Declaration order is the order of
// Slice calls.
func Slices() *sliceBuilder {
	return &sliceBuilder{}
}

// Slice declares a named slice with its cardinality and element schema.
// A nil schema keeps the slice's members raw.
func (b *sliceBuilder) Slice(name string, card fhirslice.Cardinality, schema fhirslice.ElementSchema) *sliceBuilder {
	b.decls = append(b.decls, fhirslice.SliceDeclaration{Name: name, Schema: schema, Cardinality: card})
	return b
}

// DiscriminateBy binds the discriminator function.
func (b *sliceBuilder) DiscriminateBy(d fhirslice.Discriminator) *sliceBuilder {
	b.disc = d
	return b
}

// DiscriminateByValue binds a value discriminator over the dotted path.
func (b *sliceBuilder) DiscriminateByValue(path string, valueToSlice map[string]string) *sliceBuilder {
	b.disc = fhirslice.ValueDiscriminator(path, valueToSlice)
	return b
}

// ClosedKeys makes undeclared discriminator output a construction error.
func (b *sliceBuilder) ClosedKeys() *sliceBuilder {
	b.opts = append(b.opts, fhirslice.ClosedKeys())
	return b
}

// FailFast stops array construction on the first issue.
func (b *sliceBuilder) FailFast() *sliceBuilder {
	b.opts = append(b.opts, fhirslice.FailFast())
	return b
}

// Build validates the declaration set and returns the profile.
func (b *sliceBuilder) Build() (*fhirslice.Profile, error) {
	return fhirslice.NewProfile(b.disc, b.decls, b.opts...)
}

// MustBuild is like Build but panics on error. Intended for package-level
// profile variables.
func (b *sliceBuilder) MustBuild() *fhirslice.Profile {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
