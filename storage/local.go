// Package storage persists uploaded files to a local content directory under
// generated names.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// tokenLength is the number of random characters in a generated filename.
const tokenLength = 13

// LocalStore writes uploads to a directory on disk.
type LocalStore struct {
	basePath string
}

func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalStore{basePath: basePath}, nil
}

// Save persists the reader's contents under a generated name and returns
// that name.
func (s *LocalStore) Save(r io.Reader, originalName string) (string, error) {
	name := GenerateName(originalName)
	path := filepath.Join(s.basePath, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing file: %w", err)
	}
	return name, nil
}

// Open returns the stored file for reading. Names that escape the base
// directory are rejected.
func (s *LocalStore) Open(name string) (io.ReadCloser, error) {
	path, err := s.safeJoin(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found")
		}
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return f, nil
}

// safeJoin resolves name relative to basePath and rejects directory traversal.
func (s *LocalStore) safeJoin(name string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(s.basePath, name))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}

// GenerateName builds a unique filename from the current time, a random
// token, and the original file's extension.
func GenerateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:tokenLength]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), token, ext)
}
