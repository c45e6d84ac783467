package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]struct {
		id int64
		ok bool
	}{
		"/t/42":  {id: 42, ok: true},
		"/t/0":   {ok: false},
		"/t/-3":  {ok: false},
		"/t/abc": {ok: false},
	}

	for path, want := range cases {
		r := gin.New()
		r.GET("/t/:id", func(c *gin.Context) {
			id, ok := PathID(c, "id")
			assert.Equal(t, want.ok, ok, path)
			assert.Equal(t, want.id, id, path)
			c.Status(http.StatusNoContent)
		})
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
}

func TestStringOr(t *testing.T) {
	assert.Equal(t, "", StringOr(nil, ""))
	assert.Equal(t, "cut", StringOr(StringPtr("cut"), ""))
}
