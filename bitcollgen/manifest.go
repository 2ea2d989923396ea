package bitcollgen

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes a whole generated file: the target package and
// the collections to declare in it. It is the YAML form consumed by
// the bitcollgen command:
//
//	package: chess
//	collections:
//	  - name: CastleRights
//	    item: CastleRight
//	    backing: uint8
//	    mask: "0b1111"
type Manifest struct {
	Package     string `yaml:"package"`
	Collections []Def  `yaml:"collections"`
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := parseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %v", path, err)
	}
	return m, nil
}

// parseManifest rejects unknown keys so that a misspelled field fails
// loudly instead of silently falling back to a default.
func parseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if m.Package == "" {
		return nil, fmt.Errorf("no package name given")
	}
	if len(m.Collections) == 0 {
		return nil, fmt.Errorf("no collection definitions given")
	}
	return &m, nil
}

// Generate emits the manifest's source file.
func (m *Manifest) Generate() ([]byte, error) {
	return Generate(m.Package, m.Collections...)
}
