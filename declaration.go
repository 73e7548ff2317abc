package fhirslice

import (
	"context"

	"github.com/tiro-health/fhirslice/i18n"
)

// ElementSchema is the capability contract with the external validation
// collaborator: given a raw element, return its validated typed form or fail
// with a structured error. Implementations should return Issues so that the
// underlying detail survives wrapping.
type ElementSchema interface {
	Parse(ctx context.Context, v any) (any, error)
}

// SchemaFunc adapts a plain function to ElementSchema.
type SchemaFunc func(ctx context.Context, v any) (any, error)

// Parse implements ElementSchema.
func (f SchemaFunc) Parse(ctx context.Context, v any) (any, error) { return f(ctx, v) }

// RawSchema returns a pass-through ElementSchema for slices whose members
// stay untyped (already-decoded raw form).
func RawSchema() ElementSchema {
	return SchemaFunc(func(ctx context.Context, v any) (any, error) { return v, nil })
}

// SliceDeclaration declares one named slice: its target element type (via the
// validation collaborator) and its cardinality. A nil Schema defaults to
// RawSchema.
type SliceDeclaration struct {
	Name        SliceKey
	Schema      ElementSchema
	Cardinality Cardinality
}

// ProfileOption configures a Profile at construction.
type ProfileOption func(*Profile)

// ClosedKeys rejects discriminator outputs that match no declared slice
// (instead of routing them to the default bucket). DefaultKey itself remains
// legal output.
func ClosedKeys() ProfileOption { return func(p *Profile) { p.closed = true } }

// FailFast stops array construction on the first issue instead of collecting
// every violation.
func FailFast() ProfileOption { return func(p *Profile) { p.failFast = true } }

// Profile is the static, ordered slice declaration set for one container
// type, with its bound discriminator. Build it once at schema-definition
// time and share it across arrays; it is immutable and safe for concurrent
// use.
type Profile struct {
	decls    []SliceDeclaration
	byName   map[SliceKey]int
	disc     Discriminator
	closed   bool
	failFast bool
}

// NewProfile validates the declaration set and binds the discriminator.
// Declaration order is preserved; it fixes the slice iteration order used in
// error reporting.
func NewProfile(disc Discriminator, decls []SliceDeclaration, opts ...ProfileOption) (*Profile, error) {
	var iss Issues
	if disc == nil {
		iss = AppendIssues(iss, Issue{
			Path:    "/",
			Code:    CodeDiscriminatorFailure,
			Message: i18n.T(CodeDiscriminatorFailure, nil),
			Hint:    "nil discriminator",
		})
	}
	byName := make(map[SliceKey]int, len(decls))
	out := make([]SliceDeclaration, len(decls))
	for i, d := range decls {
		if d.Name == "" || d.Name == DefaultKey {
			iss = AppendIssues(iss, Issue{
				Path:    "/",
				Code:    CodeReservedSliceName,
				Message: i18n.T(CodeReservedSliceName, nil),
				Hint:    "slice name '" + d.Name + "' is reserved",
				Params:  map[string]any{"slice": d.Name},
			})
			continue
		}
		if _, dup := byName[d.Name]; dup {
			iss = AppendIssues(iss, Issue{
				Path:    "/",
				Code:    CodeDuplicateSlice,
				Message: i18n.T(CodeDuplicateSlice, nil),
				Hint:    "slice '" + d.Name + "' declared twice",
				Params:  map[string]any{"slice": d.Name},
			})
			continue
		}
		if err := d.Cardinality.Validate(); err != nil {
			if more, ok := AsIssues(err); ok {
				for _, it := range more {
					it.Params = map[string]any{"slice": d.Name}
					iss = AppendIssues(iss, it)
				}
			}
			continue
		}
		if d.Schema == nil {
			d.Schema = RawSchema()
		}
		byName[d.Name] = i
		out[i] = d
	}
	if len(iss) > 0 {
		return nil, iss
	}
	p := &Profile{decls: out, byName: byName, disc: disc}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// MustProfile is like NewProfile but panics on error. Intended for
// package-level profile variables.
func MustProfile(disc Discriminator, decls []SliceDeclaration, opts ...ProfileOption) *Profile {
	p, err := NewProfile(disc, decls, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Declarations returns the declaration set in declaration order.
func (p *Profile) Declarations() []SliceDeclaration {
	out := make([]SliceDeclaration, len(p.decls))
	copy(out, p.decls)
	return out
}

// Declaration looks up a declared slice by name.
func (p *Profile) Declaration(name SliceKey) (SliceDeclaration, bool) {
	i, ok := p.byName[name]
	if !ok {
		return SliceDeclaration{}, false
	}
	return p.decls[i], true
}
