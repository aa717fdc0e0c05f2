// Package materials is the on-disk materials parameter repository: a YAML
// database of Hugoniot and Grueneisen coefficients in MKS units, looked up
// by name. The engine performs no unit conversion.
package materials

import (
	"fmt"
	"os"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/ImpactsWiki/impedance-match-app/eos"
)

// Database is the parsed materials file.
type Database struct {
	Materials []eos.Material `yaml:"materials"`
}

// Load reads and parses a materials YAML file.
func Load(path string) (db *Database, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("materials: %w", err)
	}
	db = &Database{}
	if err = db.Parse(data); err != nil {
		return nil, fmt.Errorf("materials %s: %w", path, err)
	}
	return db, nil
}

// Parse fills the database from YAML bytes and validates every entry.
func (db *Database) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, db); err != nil {
		return err
	}
	if len(db.Materials) == 0 {
		return fmt.Errorf("no materials defined")
	}
	for _, m := range db.Materials {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the parameter set for name.
func (db *Database) Lookup(name string) (m eos.Material, err error) {
	for _, m = range db.Materials {
		if m.Name == name {
			return m, nil
		}
	}
	return eos.Material{}, fmt.Errorf("materials: cannot find %q in the database", name)
}

// Names lists the database entries in sorted order.
func (db *Database) Names() (names []string) {
	for _, m := range db.Materials {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return
}
