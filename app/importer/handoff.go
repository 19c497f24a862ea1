package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

const transientPattern = "wp-import-*.xml"

// Handoff writes a posts document to a transient file, passes it to the
// importer and removes the file afterwards, whatever the importer returns.
type Handoff struct {
	importer Importer
	tempDir  string
}

// NewHandoff creates a hand-off writing transient files to tempDir, or to
// the system temporary directory when tempDir is empty.
func NewHandoff(importer Importer, tempDir string) *Handoff {
	return &Handoff{
		importer: importer,
		tempDir:  tempDir,
	}
}

func (h *Handoff) Run(ctx context.Context, document string, req Request) error {
	path, err := writeTransient(h.tempDir, document)
	if err != nil {
		return err
	}
	defer removeTransient(path)

	req.PostsPath = path
	slog.Debug("Posts document written", "path", path, "bytes", len(document))

	if err := h.importer.Import(ctx, req); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	return nil
}

func writeTransient(dir, document string) (string, error) {
	file, err := os.CreateTemp(dir, transientPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create transient file: %w", err)
	}

	if _, err := file.WriteString(document); err != nil {
		file.Close()
		removeTransient(file.Name())
		return "", fmt.Errorf("failed to write transient file: %w", err)
	}

	if err := file.Close(); err != nil {
		removeTransient(file.Name())
		return "", fmt.Errorf("failed to close transient file: %w", err)
	}

	return file.Name(), nil
}

func removeTransient(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to remove transient file", "path", path, "error", err)
	}
}

// WriteDocument stores a posts document at path for later inspection.
func WriteDocument(path, document string) error {
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write posts document: %w", err)
	}
	return nil
}
