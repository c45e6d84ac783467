package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/gin-gonic/gin"
)

// LocalStore writes objects into a single shared directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Save(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if !ValidName(name) {
		return ErrInvalidName
	}

	absPath := filepath.Join(s.dir, name)
	dst, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		_ = os.Remove(absPath)
		return fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(absPath)
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}

func (s *LocalStore) Delete(_ context.Context, name string) error {
	if !ValidName(name) {
		return ErrInvalidName
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

func (s *LocalStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *LocalStore) Serve(c *gin.Context, name string) {
	if !ValidName(name) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	absPath := filepath.Join(s.dir, name)
	info, err := os.Stat(absPath)
	if err != nil || !info.Mode().IsRegular() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.File(absPath)
}
