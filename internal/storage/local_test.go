package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("1700000000000-abc.png"))
	for _, name := range []string{"", ".", "..", "../etc/passwd", "a/b.png", `a\b.png`} {
		assert.False(t, ValidName(name), name)
	}
}

func TestLocalStore_SaveListDelete(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "b.png", strings.NewReader("bbb"), 3, "image/png"))
	require.NoError(t, s.Save(ctx, "a.png", strings.NewReader("aa"), 2, "image/png"))

	data, err := os.ReadFile(filepath.Join(dir, "b.png"))
	require.NoError(t, err)
	assert.Equal(t, "bbb", string(data))

	// names are never reused
	assert.Error(t, s.Save(ctx, "a.png", strings.NewReader("again"), 5, "image/png"))
	assert.ErrorIs(t, s.Save(ctx, "../x.png", strings.NewReader("x"), 1, "image/png"), ErrInvalidName)

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.png"}, names)

	require.NoError(t, s.Delete(ctx, "a.png"))
	assert.ErrorIs(t, s.Delete(ctx, "a.png"), ErrNotFound)

	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.png"}, names)
}

func TestLocalStore_Serve(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), "pic.png", strings.NewReader("pixels"), 6, "image/png"))

	r := gin.New()
	r.GET("/uploads/:name", func(c *gin.Context) { s.Serve(c, c.Param("name")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/pic.png", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pixels", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
