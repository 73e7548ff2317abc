package fhirslice

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tiro-health/fhirslice/i18n"
)

// ElementArray is a discriminated element array: the original ordered raw
// sequence plus a per-slice index and the materialized typed form of every
// classified element. Instances are immutable once constructed and safe to
// share across concurrent readers.
type ElementArray struct {
	profile *Profile
	raw     []any // original elements, original order
	vals    []any // materialized where classified, raw otherwise
	keys    []SliceKey
	index   map[SliceKey][]int
}

// NewArray classifies, validates and materializes the raw sequence.
//
// Every element is classified once through the bound discriminator; declared
// slices are then checked against their cardinality and materialized eagerly
// through their ElementSchema in ascending original position. All violations
// are collected into a single Issues error unless the profile was built with
// FailFast; construction never returns a partially valid array.
func (p *Profile) NewArray(ctx context.Context, raws []any) (*ElementArray, error) {
	a := &ElementArray{
		profile: p,
		raw:     append(make([]any, 0, len(raws)), raws...),
		vals:    make([]any, len(raws)),
		keys:    make([]SliceKey, len(raws)),
		index:   make(map[SliceKey][]int, len(p.decls)+1),
	}
	var iss Issues

	for i, el := range a.raw {
		key, err := discriminate(p.disc, el)
		if err != nil {
			iss = AppendIssues(iss, Issue{
				Path:    "/" + strconv.Itoa(i),
				Code:    CodeDiscriminatorFailure,
				Message: i18n.T(CodeDiscriminatorFailure, nil),
				Hint:    fmt.Sprintf("raw value: %v", el),
				Cause:   err,
				Params:  map[string]any{"position": i},
			})
			if p.failFast {
				return nil, iss
			}
			key = DefaultKey
		}
		if _, declared := p.byName[key]; !declared {
			if p.closed && key != DefaultKey {
				iss = AppendIssues(iss, Issue{
					Path:    "/" + strconv.Itoa(i),
					Code:    CodeDiscriminatorUnknown,
					Message: i18n.T(CodeDiscriminatorUnknown, nil),
					Hint:    "key '" + key + "' matches no declared slice",
					Params:  map[string]any{"position": i, "key": key},
				})
				if p.failFast {
					return nil, iss
				}
			}
			key = DefaultKey
		}
		a.keys[i] = key
		a.index[key] = append(a.index[key], i)
		a.vals[i] = el
	}

	for _, d := range p.decls {
		count := len(a.index[d.Name])
		if d.Cardinality.Contains(count) {
			continue
		}
		code := CodeCardinalityTooFew
		if count > d.Cardinality.Min {
			code = CodeCardinalityTooMany
		}
		iss = AppendIssues(iss, Issue{
			Path:    "/",
			Code:    code,
			Message: i18n.T(code, nil),
			Hint:    fmt.Sprintf("slice '%s' expects %s, got %d", d.Name, d.Cardinality, count),
			Params: map[string]any{
				"slice": d.Name,
				"min":   d.Cardinality.Min,
				"max":   d.Cardinality.Max,
				"count": count,
			},
		})
		if p.failFast {
			return nil, iss
		}
	}

	for _, d := range p.decls {
		for _, pos := range a.index[d.Name] {
			v, err := d.Schema.Parse(ctx, a.raw[pos])
			if err != nil {
				iss = AppendIssues(iss, Issue{
					Path:    "/" + strconv.Itoa(pos),
					Code:    CodeMaterializationFailure,
					Message: i18n.T(CodeMaterializationFailure, nil),
					Hint:    "slice '" + d.Name + "'",
					Cause:   err,
					Params:  map[string]any{"slice": d.Name, "position": pos},
				})
				if p.failFast {
					return nil, iss
				}
				continue
			}
			a.vals[pos] = v
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return a, nil
}

// discriminate invokes the discriminator, converting a panic into an error.
func discriminate(d Discriminator, el any) (key SliceKey, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("discriminator panic: %v", r)
		}
	}()
	return d(el), nil
}

// Len returns the number of elements in the original sequence.
func (a *ElementArray) Len() int { return len(a.raw) }

// At returns the element at position i in original order. Classified
// positions return the materialized typed value, the same value reachable
// through the slice's named view; unclassified positions return the raw
// element.
func (a *ElementArray) At(i int) any { return a.vals[i] }

// RawAt returns the raw element at position i as received.
func (a *ElementArray) RawAt(i int) any { return a.raw[i] }

// Key returns the slice key assigned to position i (DefaultKey for
// unclassified positions).
func (a *ElementArray) Key(i int) SliceKey { return a.keys[i] }

// Values returns the full-order sequence view (see At).
func (a *ElementArray) Values() []any {
	out := make([]any, len(a.vals))
	copy(out, a.vals)
	return out
}

// Raw reconstructs the original raw sequence verbatim: same elements, same
// order, unrecognized elements untouched.
func (a *ElementArray) Raw() []any {
	out := make([]any, len(a.raw))
	copy(out, a.raw)
	return out
}

// AppendRaw appends the original raw sequence to dst in original order.
func (a *ElementArray) AppendRaw(dst []any) []any { return append(dst, a.raw...) }

// Positions returns the ascending original positions classified under name.
func (a *ElementArray) Positions(name SliceKey) []int {
	ps := a.index[name]
	out := make([]int, len(ps))
	copy(out, ps)
	return out
}

// Count returns the number of elements classified under name.
func (a *ElementArray) Count(name SliceKey) int { return len(a.index[name]) }

// Slice returns the materialized members of a declared slice in ascending
// original position, untyped. Prefer the generic One/Opt/Many accessors.
func (a *ElementArray) Slice(name SliceKey) []any {
	ps := a.index[name]
	out := make([]any, 0, len(ps))
	for _, pos := range ps {
		out = append(out, a.vals[pos])
	}
	return out
}

// Unclassified returns the raw elements of the default bucket in ascending
// original position.
func (a *ElementArray) Unclassified() []any {
	ps := a.index[DefaultKey]
	out := make([]any, 0, len(ps))
	for _, pos := range ps {
		out = append(out, a.raw[pos])
	}
	return out
}

// One returns the single member of a slice declared 1..1.
func One[T any](a *ElementArray, name SliceKey) (T, error) {
	var zero T
	d, ok := a.profile.Declaration(name)
	if !ok {
		return zero, sliceUnknown(name)
	}
	if d.Cardinality != Required() {
		return zero, accessMismatch(name, d.Cardinality, "One")
	}
	return typedAt[T](a, name, a.index[name][0])
}

// Opt returns the member of a slice declared with max 1, reporting presence.
func Opt[T any](a *ElementArray, name SliceKey) (T, bool, error) {
	var zero T
	d, ok := a.profile.Declaration(name)
	if !ok {
		return zero, false, sliceUnknown(name)
	}
	if d.Cardinality.Max != 1 {
		return zero, false, accessMismatch(name, d.Cardinality, "Opt")
	}
	ps := a.index[name]
	if len(ps) == 0 {
		return zero, false, nil
	}
	v, err := typedAt[T](a, name, ps[0])
	return v, err == nil, err
}

// Many returns the members of a declared slice in ascending original
// position, regardless of how they were interleaved with other slices.
func Many[T any](a *ElementArray, name SliceKey) ([]T, error) {
	if _, ok := a.profile.Declaration(name); !ok {
		return nil, sliceUnknown(name)
	}
	ps := a.index[name]
	out := make([]T, 0, len(ps))
	for _, pos := range ps {
		v, err := typedAt[T](a, name, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func typedAt[T any](a *ElementArray, name SliceKey, pos int) (T, error) {
	v, ok := a.vals[pos].(T)
	if !ok {
		var zero T
		return zero, Issues{Issue{
			Path:    "/" + strconv.Itoa(pos),
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    fmt.Sprintf("slice '%s' holds %T, not %T", name, a.vals[pos], zero),
			Params:  map[string]any{"slice": name, "position": pos},
		}}
	}
	return v, nil
}

func sliceUnknown(name SliceKey) error {
	return Issues{Issue{
		Path:    "/",
		Code:    CodeSliceUnknown,
		Message: i18n.T(CodeSliceUnknown, nil),
		Hint:    "slice '" + name + "'",
		Params:  map[string]any{"slice": name},
	}}
}

func accessMismatch(name SliceKey, c Cardinality, accessor string) error {
	return Issues{Issue{
		Path:    "/",
		Code:    CodeAccessMismatch,
		Message: i18n.T(CodeAccessMismatch, nil),
		Hint:    fmt.Sprintf("%s on slice '%s' declared %s", accessor, name, c),
		Params:  map[string]any{"slice": name, "cardinality": c.String()},
	}}
}
