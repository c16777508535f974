package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileRepo stores the document as a single JSON file. Every save rewrites
// the whole file through a temporary file and a rename, so a crash leaves
// either the old or the new document on disk.
type FileRepo struct {
	path   string
	logger *zap.Logger
}

var _ Repo = (*FileRepo)(nil)

// NewFileRepo creates a repo for the JSON file at path.
func NewFileRepo(path string, logger *zap.Logger) *FileRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRepo{path: path, logger: logger}
}

func (r *FileRepo) Load(_ context.Context) (*Document, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("progress file unreadable, starting fresh", zap.String("path", r.path), zap.Error(err))
		}
		return New(), nil
	}

	doc := New()
	if err := json.Unmarshal(raw, doc); err != nil {
		r.logger.Warn("progress file corrupt, starting fresh", zap.String("path", r.path), zap.Error(err))
		return New(), nil
	}
	doc.normalize()
	return doc, nil
}

func (r *FileRepo) Save(_ context.Context, d *Document) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}

	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(append(raw, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close progress: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace progress file: %w", err)
	}
	return nil
}

// Reset overwrites the stored document with a fresh one.
func Reset(ctx context.Context, r Repo) error {
	return r.Save(ctx, New())
}
