package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	portsrepo "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/repositories"
)

// LocalStore writes reports below a directory on the local disk.
type LocalStore struct {
	root      string
	publicURL string
}

// NewLocalStore creates the root directory if needed. When publicURL is set,
// locations are returned as URLs below it instead of file paths.
func NewLocalStore(root, publicURL string) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve report dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &LocalStore{root: abs, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

var _ portsrepo.ReportStore = (*LocalStore)(nil)

// SaveReport writes data to root/key. Keys may not escape the root.
func (s *LocalStore) SaveReport(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean := filepath.Clean("/" + key)
	path := filepath.Join(s.root, clean)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create report folder: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report %s: %w", key, err)
	}

	if s.publicURL != "" {
		return s.publicURL + "/" + strings.TrimLeft(filepath.ToSlash(clean), "/"), nil
	}
	return path, nil
}
