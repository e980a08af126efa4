// Package jsonstore is a type-keyed JSON blob store over a data directory.
// Each type key maps to one file, data/<type>.json. Reads of an absent file
// leave the caller's default value in place; every other failure surfaces.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jaewoo/careerfolio/internal/schemas"
)

// TypeKeys are the snapshot files a data directory may hold, in the order
// export writes them and import loads them.
var TypeKeys = []string{
	"basic-info",
	"careers",
	"skills",
	"educations",
	"projects",
	"other-items",
}

// Store reads and writes typed JSON files under a single directory
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file backing a type key
func (s *Store) Path(typeKey string) string {
	return filepath.Join(s.dir, typeKey+".json")
}

// Read loads the blob for typeKey into out. An absent file is not an error:
// out keeps whatever default the caller initialized it with. Present files
// are schema-checked before unmarshaling.
func (s *Store) Read(typeKey string, out any) error {
	data, err := os.ReadFile(s.Path(typeKey))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", typeKey, err)
	}

	if err := schemas.Validate(typeKey, string(data)); err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", typeKey, err)
	}
	return nil
}

// Write stores v as the blob for typeKey, schema-checking the encoded form
func (s *Store) Write(typeKey string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", typeKey, err)
	}
	if err := schemas.Validate(typeKey, string(data)); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.Path(typeKey), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", typeKey, err)
	}
	return nil
}
