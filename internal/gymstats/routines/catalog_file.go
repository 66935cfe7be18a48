package routines

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// catalogFile is the seed file layout:
//
//	exercises:
//	  - id: bench
//	    name: Press banca
//	    sets: 4
//	    reps: 8
type catalogFile struct {
	Exercises []CatalogExercise `yaml:"exercises"`
}

// ReadCatalogFile decodes and validates a YAML catalog seed file.
func ReadCatalogFile(r io.Reader) ([]CatalogExercise, error) {
	var file catalogFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	seen := make(map[string]bool, len(file.Exercises))
	for i, ex := range file.Exercises {
		if err := ex.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if ex.ID == "" {
			continue
		}
		if seen[ex.ID] {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %s", i, ex.ID)
		}
		seen[ex.ID] = true
	}

	return file.Exercises, nil
}
