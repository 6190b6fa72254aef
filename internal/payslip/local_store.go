package payslip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes payslips to a directory that is served under
// publicBaseURL.
type LocalStore struct {
	dir           string
	publicBaseURL string
}

func NewLocalStore(dir, publicBaseURL string) (*LocalStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("payslip storage dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create payslip storage dir: %w", err)
	}
	return &LocalStore{
		dir:           dir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(ctx context.Context, key string, body []byte) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid payslip key %q", key)
	}

	// write then rename so readers never see a partial file
	path := filepath.Join(s.dir, key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return "", fmt.Errorf("write payslip: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write payslip: %w", err)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *LocalStore) URL(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", errors.New("payslip reference is required")
	}
	return ref, nil
}
