package fhirslice

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType            = "invalid_type"
	CodeParseError             = "parse_error"
	CodeCardinalityTooFew      = "cardinality_too_few"
	CodeCardinalityTooMany     = "cardinality_too_many"
	CodeDiscriminatorFailure   = "discriminator_failure"
	CodeDiscriminatorUnknown   = "discriminator_unknown"
	CodeMaterializationFailure = "materialization_failure"
	// Profile declaration problems (surface at NewProfile, not at parse time)
	CodeDuplicateSlice     = "duplicate_slice"
	CodeReservedSliceName  = "reserved_slice_name"
	CodeInvalidCardinality = "invalid_cardinality"
	// Named-view access problems
	CodeSliceUnknown   = "slice_unknown"
	CodeAccessMismatch = "access_mismatch"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer into the raw sequence (for example: /2).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, offending values, etc.
	Cause   error  // Optional: underlying error (the collaborator's detail).
	// Params carries structured parameters (e.g., {"slice":"systolic","min":1,
	// "max":1,"count":2}) for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. cardinality_too_many at /
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
