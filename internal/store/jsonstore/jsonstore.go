package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/calc/internal/model"
)

// JSON-backed tape. Single file, human-readable, portable.
// No locking; one calculator writes it at a time.

const dataFileName = "calc_tape.json"

// DataPath is $CALC_TAPE when set, else calc_tape.json in the working directory.
func DataPath() (string, error) {
	if env := strings.TrimSpace(os.Getenv("CALC_TAPE")); env != "" {
		return env, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, dataFileName), nil
}

// Load reads the tape at p. A missing file is an empty tape.
func Load(p string) ([]model.Entry, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Entry{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var entries []model.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return entries, nil
}

func Save(p string, entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Append adds entries to the end of the tape at p.
func Append(p string, entries []model.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	old, err := Load(p)
	if err != nil {
		return err
	}
	return Save(p, append(old, entries...))
}
