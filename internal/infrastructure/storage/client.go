package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/config"
	"github.com/horecaseek-service/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
	logger     *zap.Logger
}

// NewStorageClient creates an HTTP client for the object-storage service.
// Objects are uploaded under /object/{bucket}/{key} with a bearer service
// key; public retrieval goes through /object/public/{bucket}/{path}.
func NewStorageClient(cfg *config.StorageConfig, logger *zap.Logger) repository.StorageRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		logger:     logger,
	}
}

type uploadResponse struct {
	Key  string `json:"key"`
	Path string `json:"path"`
}

func (c *client) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	if bucket == "" || key == "" {
		return "", fmt.Errorf("bucket and key are required")
	}

	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		c.logger.Error("Failed to create upload request", zap.Error(err))
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute upload request", zap.Error(err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Storage service returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.String("body", string(body)))
		return "", fmt.Errorf("storage error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var uploadResp uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		c.logger.Error("Failed to decode upload response", zap.Error(err))
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	path := uploadResp.Path
	if path == "" {
		// Older storage versions only return the object key
		path = uploadResp.Key
	}
	if path == "" {
		path = key
	}

	c.logger.Debug("Object uploaded",
		zap.String("bucket", bucket),
		zap.String("path", path),
		zap.Int("size", len(data)))

	return path, nil
}

func (c *client) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, bucket, strings.TrimLeft(path, "/"))
}
