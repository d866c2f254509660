// Package seed loads a read-only list of items to start the list with.
// Nothing is ever written back.
package seed

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Entry is one seeded item. Ids are assigned by the list, not the file.
type Entry struct {
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

// Load reads entries from a YAML or JSON file, chosen by extension
// (.json is JSON, anything else YAML). Every entry must have a name and a
// positive price.
func Load(path string) ([]Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read from %s", path)
	}

	var entries []Entry
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(b, &entries)
	} else {
		err = yaml.Unmarshal(b, &entries)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s", path)
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, errors.Errorf("%s: entry %d: name is required", path, i+1)
		}
		if e.Price <= 0 {
			return nil, errors.Errorf("%s: entry %d: price must be greater than 0", path, i+1)
		}
	}
	return entries, nil
}
