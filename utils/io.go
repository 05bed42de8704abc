package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileString writes content wholesale, creating parent
// directories as needed. Outputs are regenerated on every run, so
// no partial-write recovery is attempted.
func WriteFileString(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func ReadFileBytes(path string) ([]byte, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return bytes, nil
}
