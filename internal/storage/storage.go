// Package storage keeps uploaded image bytes outside the relational store.
// Rows only hold a public path; the bytes live in a Store.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound    = errors.New("object not found")
	ErrInvalidName = errors.New("invalid object name")
)

type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	// Serve writes the object to the response, or redirects to where it lives.
	Serve(c *gin.Context, name string)
}

// ValidName reports whether name is a bare file name with no path parts.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}
