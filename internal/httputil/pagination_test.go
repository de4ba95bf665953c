package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestParsePage_Defaults(t *testing.T) {
	page, pageSize, err := ParsePage(pageContext(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, pageSize)
}

func TestParsePage_Explicit(t *testing.T) {
	page, pageSize, err := ParsePage(pageContext(t, "page=3&pageSize=25"))
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, pageSize)
}

func TestParsePage_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"zero page", "page=0"},
		{"negative page", "page=-1"},
		{"non-numeric page", "page=abc"},
		{"zero pageSize", "pageSize=0"},
		{"oversized pageSize", "pageSize=101"},
		{"non-numeric pageSize", "pageSize=xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParsePage(pageContext(t, tt.query))
			assert.Error(t, err)
		})
	}
}

func TestPageToOffset(t *testing.T) {
	offset, limit := PageToOffset(1, 10)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 10, limit)

	offset, limit = PageToOffset(3, 25)
	assert.Equal(t, 50, offset)
	assert.Equal(t, 25, limit)
}
