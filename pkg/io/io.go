package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// MaxFileBytes caps how much ReadJSON consumes.
const MaxFileBytes = 16 << 20

// ErrNoAlgorithm is returned for sequences without an algorithm name.
var ErrNoAlgorithm = errors.New("sequence has no algorithm name")

// ReadJSON decodes one sequence from r. It does not close r.
func ReadJSON(r io.Reader) (*step.Sequence, error) {
	var seq step.Sequence
	if err := json.NewDecoder(io.LimitReader(r, MaxFileBytes)).Decode(&seq); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if seq.Algorithm() == "" {
		return nil, ErrNoAlgorithm
	}
	return &seq, nil
}

// ImportJSON reads the sequence stored at path.
func ImportJSON(path string) (*step.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	seq, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// WriteJSON encodes seq to w as indented JSON.
func WriteJSON(seq *step.Sequence, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(seq); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes seq to path, creating parent directories. The file
// is written to a temporary name first and renamed into place.
func ExportJSON(seq *step.Sequence, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".dsaviz-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteJSON(seq, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
