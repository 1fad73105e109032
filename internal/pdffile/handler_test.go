package pdffile

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pdfshorts/backend/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func newUploadHandler(maxBytes int64, generate GenerateFunc) (*Handler, *memoryFileRepo, *memoryStore) {
	repo := &memoryFileRepo{}
	store := newMemoryStore()
	svc := NewService(repo, store, events.NewBroker())
	return NewHandler(svc, generate, maxBytes), repo, store
}

func TestUpload_Success(t *testing.T) {
	h, repo, store := newUploadHandler(1024*1024, nil)

	body, contentType := multipartBody(t, "doc.pdf", "application/pdf", "%PDF-1.4 content")
	req := httptest.NewRequest(http.MethodPost, "/api/pdfs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "File uploaded successfully", resp["message"])
	assert.True(t, strings.HasSuffix(resp["filePath"], ".pdf"))

	assert.Len(t, repo.rows, 1)
	assert.Len(t, store.blobs, 1)
}

func TestUpload_RejectsWrongContentType(t *testing.T) {
	h, repo, store := newUploadHandler(1024*1024, nil)

	body, contentType := multipartBody(t, "notes.txt", "text/plain", "plain text")
	req := httptest.NewRequest(http.MethodPost, "/api/pdfs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.rows, "zero rows created")
	assert.Empty(t, store.blobs, "zero blobs created")
}

func TestUpload_RejectsOversizeBeforeStore(t *testing.T) {
	h, repo, store := newUploadHandler(64, nil) // tiny limit for the test

	body, contentType := multipartBody(t, "big.pdf", "application/pdf", strings.Repeat("x", 4096))
	req := httptest.NewRequest(http.MethodPost, "/api/pdfs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)

	assert.Contains(t, []int{http.StatusBadRequest, http.StatusRequestEntityTooLarge}, rec.Code)
	assert.Empty(t, repo.rows, "zero rows created")
	assert.Empty(t, store.blobs, "zero blobs created")
}

func TestUpload_MissingFileField(t *testing.T) {
	h, _, _ := newUploadHandler(1024*1024, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/pdfs", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Upload(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_TriggersGeneration(t *testing.T) {
	var calls atomic.Int32
	generate := func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}
	h, _, _ := newUploadHandler(1024*1024, generate)

	body, contentType := multipartBody(t, "doc.pdf", "application/pdf", "%PDF-1.4 content")
	req := httptest.NewRequest(http.MethodPost, "/api/pdfs?generate=true", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Upload(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 10*time.Millisecond)
}
