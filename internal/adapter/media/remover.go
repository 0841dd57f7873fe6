// Package media manages the on-disk media directory of each article.
package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store owns one directory per article under a root directory.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Dir returns the media directory of an article.
func (s *Store) Dir(articleID string) (string, error) {
	if _, err := uuid.Parse(articleID); err != nil {
		return "", fmt.Errorf("media: invalid article id %q", articleID)
	}
	return filepath.Join(s.root, strings.ToLower(articleID)), nil
}

// Purge removes every media file of an article. A missing directory is not
// an error.
func (s *Store) Purge(ctx context.Context, articleID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir, err := s.Dir(articleID)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("media: purge %s: %w", articleID, err)
	}
	return nil
}

// Check verifies that the root exists and is a directory.
func (s *Store) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("media: root %s does not exist", s.root)
		}
		return fmt.Errorf("media: stat root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("media: root %s is not a directory", s.root)
	}
	return nil
}
