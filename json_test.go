package fhirslice_test

import (
	"context"
	"reflect"
	"testing"

	json "github.com/goccy/go-json"

	fhirslice "github.com/tiro-health/fhirslice"
)

func TestParseJSON_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := fhirslice.NewProfile(
		fhirslice.ValueDiscriminator("url", map[string]string{"http://x/a": "a"}),
		[]fhirslice.SliceDeclaration{
			{Name: "a", Cardinality: fhirslice.ZeroOrMore()},
		},
	)
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}

	in := []byte(`[{"url":"http://x/a","v":1},{"url":"unknown","v":2},{"url":"http://x/a","v":3}]`)
	arr, err := p.ParseJSON(ctx, in)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if arr.Len() != 3 || arr.Count("a") != 2 {
		t.Fatalf("unexpected shape: len=%d count(a)=%d", arr.Len(), arr.Count("a"))
	}

	out, err := json.Marshal(arr)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var want, got []any
	if err := json.Unmarshal(in, &want); err != nil {
		t.Fatalf("Unmarshal(in): %v", err)
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal(out): %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip diverged:\n in: %s\nout: %s", in, out)
	}
}

func TestParseJSON_EmptyArrayRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := fhirslice.NewProfile(
		fhirslice.ValueDiscriminator("url", map[string]string{"http://x/a": "a"}),
		[]fhirslice.SliceDeclaration{
			{Name: "a", Cardinality: fhirslice.ZeroOrMore()},
		},
	)
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	arr, err := p.ParseJSON(ctx, []byte(`[]`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	out, err := json.Marshal(arr)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "[]" {
		t.Fatalf("round trip of [] produced %s", out)
	}
}

func TestParseJSON_NotAnArray(t *testing.T) {
	ctx := context.Background()
	p, err := fhirslice.NewProfile(
		fhirslice.ValueDiscriminator("url", nil),
		nil,
	)
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	_, err = p.ParseJSON(ctx, []byte(`{"not":"an array"}`))
	iss, ok := fhirslice.AsIssues(err)
	if !ok || iss[0].Code != fhirslice.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
	if iss[0].Cause == nil {
		t.Fatalf("expected decoder error as cause")
	}
}
