package fhirslice

import "strings"

// SliceKey names a declared slice. The reserved DefaultKey denotes the
// catch-all bucket for elements matching no declared slice.
type SliceKey = string

// DefaultKey is the reserved key for unclassified elements.
const DefaultKey SliceKey = "@default"

// Discriminator maps one raw element to the slice it belongs to. It must be a
// pure function of that element alone; implementations map missing or
// malformed input to DefaultKey rather than failing. A Discriminator that
// panics is recovered by the array constructor and surfaced as a
// discriminator_failure issue.
type Discriminator func(raw any) SliceKey

// ValueDiscriminator classifies by the value found at a dotted path inside a
// raw element (e.g. "url" or "code.coding.code"), using the given
// value-to-slice mapping. Missing paths, non-string values and unmapped
// values all fall through to DefaultKey.
func ValueDiscriminator(path string, valueToSlice map[string]SliceKey) Discriminator {
	return func(raw any) SliceKey {
		v, ok := LookupPath(raw, path)
		if !ok {
			return DefaultKey
		}
		s, ok := v.(string)
		if !ok {
			return DefaultKey
		}
		if name, ok := valueToSlice[s]; ok {
			return name
		}
		return DefaultKey
	}
}

// ExistsDiscriminator classifies an element into name when the dotted path is
// present, DefaultKey otherwise.
func ExistsDiscriminator(path string, name SliceKey) Discriminator {
	return func(raw any) SliceKey {
		if _, ok := LookupPath(raw, path); ok {
			return name
		}
		return DefaultKey
	}
}

// LookupPath walks a dotted path through nested map[string]any values.
// It reports false when any step is missing or not an object.
func LookupPath(raw any, path string) (any, bool) {
	cur := raw
	for path != "" {
		var seg string
		seg, path, _ = strings.Cut(path, ".")
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
