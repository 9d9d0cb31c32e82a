package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage is the backend for item images. Keys are opaque identifiers
// returned by Save; URL turns a key into a client-fetchable address.
type Storage interface {
	Save(filename string, r io.Reader) (key string, err error)
	Open(key string) (io.ReadCloser, error)
	Delete(key string) error
	URL(key string) string
}

// LocalStorage keeps files on the local filesystem, for development and
// single-node deployments.
type LocalStorage struct {
	baseURL   string
	uploadDir string
}

func NewLocalStorage(baseURL, uploadDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		baseURL:   strings.TrimRight(baseURL, "/"),
		uploadDir: uploadDir,
	}, nil
}

func (s *LocalStorage) Save(filename string, r io.Reader) (string, error) {
	ext := filepath.Ext(filename)
	key := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.uploadDir, key))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return key, nil
}

func (s *LocalStorage) Open(key string) (io.ReadCloser, error) {
	// Keys are generated server side; reject anything path-like.
	if key != filepath.Base(key) {
		return nil, os.ErrNotExist
	}
	return os.Open(filepath.Join(s.uploadDir, key))
}

func (s *LocalStorage) Delete(key string) error {
	if key != filepath.Base(key) {
		return os.ErrNotExist
	}
	return os.Remove(filepath.Join(s.uploadDir, key))
}

func (s *LocalStorage) URL(key string) string {
	return s.baseURL + "/api/uploads/" + key
}
