// Package profileyaml imports slice profiles from YAML documents.
//
// A profile document declares its slices, their cardinalities in FHIR
// notation and a value discriminator:
//
//	name: blood-pressure
//	discriminator:
//	  path: code
//	  map:
//	    "8480-6": systolic
//	    "8462-4": diastolic
//	slices:
//	  - name: systolic
//	    cardinality: "1..1"
//	    type: observation
//	  - name: diastolic
//	    cardinality: "1..1"
//	    type: observation
//
// Element schemas are resolved by the slice's type name through a
// caller-supplied Registry; an empty or "raw" type keeps members untyped.
package profileyaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	fhirslice "github.com/tiro-health/fhirslice"
)

// Registry resolves type names referenced by profile documents.
type Registry map[string]fhirslice.ElementSchema

type document struct {
	Name          string `yaml:"name"`
	Closed        bool   `yaml:"closed"`
	Discriminator struct {
		Path string            `yaml:"path"`
		Map  map[string]string `yaml:"map"`
	} `yaml:"discriminator"`
	Slices []struct {
		Name        string `yaml:"name"`
		Cardinality string `yaml:"cardinality"`
		Type        string `yaml:"type"`
	} `yaml:"slices"`
}

// Load imports the first profile document found in data.
func Load(data []byte, reg Registry) (*fhirslice.Profile, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("profileyaml: invalid YAML: %w", err)
	}
	return build(doc, reg)
}

// LoadNamed scans a multi-document YAML bundle and imports the profile with
// the given name. If no matching profile is found, returns an error.
func LoadNamed(data []byte, name string, reg Registry) (*fhirslice.Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("profileyaml: invalid YAML: %w", err)
		}
		if doc.Name == name {
			return build(doc, reg)
		}
	}
	return nil, fmt.Errorf("profileyaml: profile %q not found in bundle", name)
}

func build(doc document, reg Registry) (*fhirslice.Profile, error) {
	if doc.Discriminator.Path == "" {
		return nil, fmt.Errorf("profileyaml: profile %q has no discriminator path", doc.Name)
	}
	decls := make([]fhirslice.SliceDeclaration, 0, len(doc.Slices))
	for _, s := range doc.Slices {
		card, err := fhirslice.ParseCardinality(s.Cardinality)
		if err != nil {
			return nil, fmt.Errorf("profileyaml: slice %q: %w", s.Name, err)
		}
		var schema fhirslice.ElementSchema
		switch s.Type {
		case "", "raw":
			schema = fhirslice.RawSchema()
		default:
			var ok bool
			schema, ok = reg[s.Type]
			if !ok {
				return nil, fmt.Errorf("profileyaml: unknown element type %q for slice %q", s.Type, s.Name)
			}
		}
		decls = append(decls, fhirslice.SliceDeclaration{
			Name:        s.Name,
			Schema:      schema,
			Cardinality: card,
		})
	}
	disc := fhirslice.ValueDiscriminator(doc.Discriminator.Path, doc.Discriminator.Map)
	var opts []fhirslice.ProfileOption
	if doc.Closed {
		opts = append(opts, fhirslice.ClosedKeys())
	}
	return fhirslice.NewProfile(disc, decls, opts...)
}
