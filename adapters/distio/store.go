// Package distio persists distribution handles as textual records for the
// host's file-open/save dialogs. The record is YAML: a distribution kind
// plus its parameter mapping, nothing else.
package distio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"statplug/domain/core"
	"statplug/domain/dist"
	"statplug/ports"
)

// record is the on-disk shape of a persisted distribution
type record struct {
	Distribution string             `yaml:"distribution"`
	Parameters   map[string]float64 `yaml:"parameters"`
}

// YAMLStore reads and writes distribution records against a catalog, so
// every loaded record resolves to a registered constructor.
type YAMLStore struct {
	catalog ports.DistCatalog
}

// NewYAMLStore creates a store backed by the given catalog
func NewYAMLStore(catalog ports.DistCatalog) *YAMLStore {
	return &YAMLStore{catalog: catalog}
}

// Save writes the handle's kind and parameter mapping as a YAML record
func (s *YAMLStore) Save(h dist.Handle, w io.Writer) error {
	if h.Kind.IsEmpty() {
		return core.NewFormatError("handle has no distribution kind")
	}
	if _, err := s.catalog.Lookup(h.Kind); err != nil {
		return err
	}
	rec := record{
		Distribution: h.Kind.String(),
		Parameters:   h.Params,
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return core.NewFormatError(err.Error())
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write distribution record: %w", err)
	}
	return nil
}

// Load parses a YAML record and reconstructs a validated handle. Records
// that do not match the expected shape fail with FormatError; registered
// kinds are re-validated against their parameter domains.
func (s *YAMLStore) Load(r io.Reader) (dist.Handle, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rec record
	if err := dec.Decode(&rec); err != nil {
		return dist.Handle{}, core.NewFormatError(err.Error())
	}
	if rec.Distribution == "" {
		return dist.Handle{}, core.NewFormatError("record has no distribution field")
	}

	kind, err := core.ParseDistKind(rec.Distribution)
	if err != nil {
		return dist.Handle{}, core.NewFormatError(err.Error())
	}
	if rec.Parameters == nil {
		rec.Parameters = map[string]float64{}
	}
	// Constructing resolves defaults and rejects out-of-domain values.
	d, err := s.catalog.Construct(kind, rec.Parameters)
	if err != nil {
		return dist.Handle{}, err
	}
	return d.Handle(), nil
}

// SaveFile writes a handle to a local file path
func (s *YAMLStore) SaveFile(h dist.Handle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := s.Save(h, f); err != nil {
		return err
	}
	return f.Close()
}

// LoadFile reads a handle from a local file path
func (s *YAMLStore) LoadFile(path string) (dist.Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return dist.Handle{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return s.Load(f)
}
