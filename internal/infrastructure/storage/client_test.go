package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/config"
)

func TestClient_Upload(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful upload", func(t *testing.T) {
		var gotAuth, gotContentType string
		var gotBody []byte

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/object/spots/photo.jpg", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{
				"key":  "spots/photo.jpg",
				"path": "photo.jpg",
			})
		}))
		defer server.Close()

		cfg := &config.StorageConfig{
			BaseURL:        server.URL,
			ServiceKey:     "test_key",
			RequestTimeout: 30 * time.Second,
		}
		c := NewStorageClient(cfg, logger)

		path, err := c.Upload(context.Background(), "spots", "photo.jpg", []byte("fake-jpeg"), "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, "photo.jpg", path)
		assert.Equal(t, "Bearer test_key", gotAuth)
		assert.Equal(t, "image/jpeg", gotContentType)
		assert.Equal(t, []byte("fake-jpeg"), gotBody)
	})

	t.Run("server error surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"bucket not found"}`, http.StatusNotFound)
		}))
		defer server.Close()

		cfg := &config.StorageConfig{
			BaseURL:        server.URL,
			ServiceKey:     "test_key",
			RequestTimeout: 30 * time.Second,
		}
		c := NewStorageClient(cfg, logger)

		_, err := c.Upload(context.Background(), "spots", "photo.jpg", []byte("x"), "image/jpeg")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("missing bucket or key rejected before any call", func(t *testing.T) {
		cfg := &config.StorageConfig{
			BaseURL:        "http://storage.invalid",
			ServiceKey:     "test_key",
			RequestTimeout: time.Second,
		}
		c := NewStorageClient(cfg, logger)

		_, err := c.Upload(context.Background(), "", "photo.jpg", []byte("x"), "")
		assert.Error(t, err)

		_, err = c.Upload(context.Background(), "spots", "", []byte("x"), "")
		assert.Error(t, err)
	})
}

func TestClient_PublicURL(t *testing.T) {
	cfg := &config.StorageConfig{
		BaseURL:        "https://storage.example.com/",
		ServiceKey:     "k",
		RequestTimeout: time.Second,
	}
	c := NewStorageClient(cfg, zap.NewNop())

	assert.Equal(t,
		"https://storage.example.com/object/public/avatars/user-1.png",
		c.PublicURL("avatars", "user-1.png"))
	assert.Equal(t,
		"https://storage.example.com/object/public/avatars/user-1.png",
		c.PublicURL("avatars", "/user-1.png"))
}
