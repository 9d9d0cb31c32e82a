package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentkart-backend/internal/security"
)

type stubStorage struct {
	content string
}

func (s *stubStorage) Save(filename string, r io.Reader) (string, error) { return "key.jpg", nil }
func (s *stubStorage) Open(key string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.content)), nil
}
func (s *stubStorage) Delete(key string) error { return nil }
func (s *stubStorage) URL(key string) string   { return "http://localhost:8080/api/uploads/" + key }

func TestDownloadContentType(t *testing.T) {
	tokens := security.NewTokenManager("a-secret-that-is-at-least-32-chars!!", 1)
	router := NewRouter(Services{Storage: &stubStorage{content: "jpeg-bytes"}, Tokens: tokens})

	req := httptest.NewRequest(http.MethodGet, "/api/uploads/photo.jpg", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg-bytes", rec.Body.String())
}
