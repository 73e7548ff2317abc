package fhirslice

// Package fhirslice provides:
//
// - Discriminated element arrays: ordered heterogeneous sequences classified
//   into named slices by a pure per-element discriminator
// - Declared cardinality constraints checked at construction (min..max, "*")
// - A stable error model via Issues (JSON Pointer, code, message)
// - Round-trip fidelity: the original raw sequence is re-emitted verbatim,
//   unrecognized elements included
//
// Design policy:
// - Keep only public APIs in the root package; builders live under dsl/ and
//   importers under profileyaml/.
// - Arrays are immutable once constructed; a modified array is built from a
//   modified raw sequence.
// - Element-level type validation is delegated to ElementSchema
//   implementations; this package owns classification, cardinality and
//   ordering only.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	p, err := fhirslice.NewProfile(disc, []fhirslice.SliceDeclaration{
//		{Name: "systolic", Schema: obsSchema, Cardinality: fhirslice.Required()},
//		{Name: "diastolic", Schema: obsSchema, Cardinality: fhirslice.Required()},
//	})
//	arr, err := p.NewArray(ctx, raws)
//	sys, err := fhirslice.One[Observation](arr, "systolic")
