package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps objects as plain files under a root directory. Used for
// development and tests.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) fullPath(path string) string {
	// Object paths are generated server-side, but keep traversal out anyway.
	return filepath.Join(s.root, filepath.Base(strings.TrimSpace(path)))
}

func (s *LocalStore) Upload(ctx context.Context, path string, contentType string, r io.Reader) error {
	f, err := os.Create(s.fullPath(path))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return nil
}

func (s *LocalStore) Download(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(s.fullPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *LocalStore) Remove(ctx context.Context, path string) error {
	if err := os.Remove(s.fullPath(path)); err != nil {
		if os.IsNotExist(err) {
			return ErrObjectNotFound
		}
		return err
	}
	return nil
}
