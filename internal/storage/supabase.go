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

// SupabaseStore talks to the Supabase Storage REST API with a service-role
// key. One object per historical upload lives in a single bucket.
type SupabaseStore struct {
	baseURL string
	bucket  string
	key     string
	client  *http.Client
}

func NewSupabaseStore(baseURL, key, bucket string) *SupabaseStore {
	return &SupabaseStore{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		bucket:  bucket,
		key:     key,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *SupabaseStore) objectURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, path)
}

func (s *SupabaseStore) Upload(ctx context.Context, path string, contentType string, r io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.objectURL(path), r)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage upload returned status %d", resp.StatusCode)
	}
	return nil
}

func (s *SupabaseStore) Download(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.objectURL(path), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.key)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrObjectNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storage download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (s *SupabaseStore) Remove(ctx context.Context, path string) error {
	body, err := json.Marshal(map[string][]string{"prefixes": {path}})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s", s.baseURL, s.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrObjectNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage remove returned status %d", resp.StatusCode)
	}
	return nil
}
