package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LoadDraft returns the editor text saved by the last session. A missing
// draft is not an error.
func LoadDraft() (string, error) {
	path, err := DraftPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read draft: %w", err)
	}
	return string(data), nil
}

// SaveDraft stores text for the next session. Saving an empty text removes
// the draft.
func SaveDraft(text string) error {
	path, err := DraftPath()
	if err != nil {
		return err
	}
	if text == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove draft: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}
