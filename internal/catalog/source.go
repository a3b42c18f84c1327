package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/slovar-dev/slovar/internal/domain"
)

//go:embed seed.json
var seedJSON []byte

// Source supplies the term collection once, at startup.
type Source interface {
	Terms() ([]domain.Term, error)
	Name() string
}

// Seed is the built-in collection compiled into the binary.
type Seed struct{}

// Terms decodes the embedded seed.
func (Seed) Terms() ([]domain.Term, error) {
	return decodeTerms(seedJSON)
}

// Name identifies the source in logs.
func (Seed) Name() string {
	return "embedded seed"
}

// FileSource loads a replacement dataset from a JSON file.
// The file holds either a bare array of terms or an object {"terms": [...]}.
type FileSource struct {
	Path string
}

// Terms reads and decodes the file.
func (s FileSource) Terms() ([]domain.Term, error) {
	data, err := os.ReadFile(s.Path) //#nosec G304 -- dataset path is operator-supplied
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	terms, err := decodeTerms(data)
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", s.Path, err)
	}
	return terms, nil
}

// Name identifies the source in logs.
func (s FileSource) Name() string {
	return s.Path
}

// SourceFor returns a FileSource for a non-empty path and the embedded Seed otherwise.
func SourceFor(path string) Source {
	if path == "" {
		return Seed{}
	}
	return FileSource{Path: path}
}

func decodeTerms(data []byte) ([]domain.Term, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty document")
	}

	if data[0] == '{' {
		var wrapper struct {
			Terms []domain.Term `json:"terms"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, err
		}
		return wrapper.Terms, nil
	}

	var terms []domain.Term
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}
