package util

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/nakachan-ing/lifeos-cli/internal/model"
)

func OpenEditor(filePath string, config model.Config) error {
	c := exec.Command(config.Editor, filePath)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to open editor (%s): %w", filePath, err)
	}
	return nil
}

// EditNotes opens a temp file in the configured editor and returns its
// contents, for drafting longer parent notes before a check-in.
func EditNotes(config model.Config) (string, error) {
	tmpFile, err := os.CreateTemp("", "lifeos-notes-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	if err := OpenEditor(tmpPath, config); err != nil {
		return "", err
	}

	content, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to read notes file: %w", err)
	}
	return string(content), nil
}
