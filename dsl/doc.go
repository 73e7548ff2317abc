// Package dsl provides chaining builders over fhirslice profiles and a
// typed element binding built on goccy/go-json.
package dsl
