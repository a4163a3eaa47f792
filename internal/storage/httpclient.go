package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPStore talks to another dashboard instance's blob API. An unreachable
// server surfaces as an error; the caller treats the operation as a no-op
// and keeps its in-memory state.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStore creates a client for the blob API at baseURL.
func NewHTTPStore(baseURL string) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Load fetches the blob for the namespace from the remote server.
func (h *HTTPStore) Load(ctx context.Context, namespace string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/load-data/"+namespace, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load from server: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("load from server: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read server response: %w", err)
	}
	if len(data) == 0 {
		return EmptyBlob, nil
	}
	return data, nil
}

// Save posts the blob for the namespace to the remote server.
func (h *HTTPStore) Save(ctx context.Context, namespace string, data json.RawMessage) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/api/save-data/"+namespace, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("save to server: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("save to server: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Healthy hits the server's health endpoint.
func (h *HTTPStore) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: unexpected status %d", resp.StatusCode)
	}
	return nil
}
