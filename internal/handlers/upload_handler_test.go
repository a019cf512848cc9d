package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/W-Anubhav/resumeinsight/internal/models"
	"github.com/W-Anubhav/resumeinsight/internal/services"
)

type mockDocRepo struct {
	docs map[uuid.UUID]*models.Document
}

func newMockDocRepo() *mockDocRepo {
	return &mockDocRepo{docs: make(map[uuid.UUID]*models.Document)}
}

func (m *mockDocRepo) Create(doc *models.Document) error {
	m.docs[doc.ID] = doc
	return nil
}

func (m *mockDocRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return doc, nil
}

// mockStorage drops every upload into one fixed file under dir.
type mockStorage struct {
	dir     string
	deleted []string
}

func (m *mockStorage) SaveFile(file *multipart.FileHeader) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", "", err
	}

	path := filepath.Join(m.dir, "resume_test.pdf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", "", err
	}
	return "resume_test.pdf", path, nil
}

func (m *mockStorage) GetFilePath(filename string) string {
	return filepath.Join(m.dir, filename)
}

func (m *mockStorage) DeleteFile(filename string) error {
	m.deleted = append(m.deleted, filename)
	return nil
}

func (m *mockStorage) EnsureUploadDir() error { return nil }

// mockExtractor returns a fixed text regardless of input.
type mockExtractor struct {
	text string
	err  error
}

func (m *mockExtractor) Validate(data []byte) bool { return m.err == nil }

func (m *mockExtractor) Extract(data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func multipartResume(t *testing.T, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("resume", "cv.pdf")
	if err != nil {
		t.Fatalf("failed to build form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	mw.Close()
	return body, mw.FormDataContentType()
}

func TestHandleUpload_CharCountIsRunes(t *testing.T) {
	docRepo := newMockDocRepo()
	storage := &mockStorage{dir: t.TempDir()}
	// 11 runes, 13 bytes once encoded.
	extractor := &mockExtractor{text: "héllo wörld"}

	handler := NewUploadHandler(docRepo, storage, extractor, 1024*1024)

	app := fiber.New()
	app.Post("/upload", handler.HandleUpload)

	body, contentType := multipartResume(t, []byte("%PDF-1.4 fake content"))
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var payload struct {
		Document models.UploadResponse `json:"document"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if payload.Document.CharCount != 11 {
		t.Errorf("char_count should count runes (11), got %d", payload.Document.CharCount)
	}
	if payload.Document.OriginalName != "cv.pdf" {
		t.Errorf("unexpected original name: %q", payload.Document.OriginalName)
	}

	if len(docRepo.docs) != 1 {
		t.Fatalf("expected one stored document, got %d", len(docRepo.docs))
	}
	for _, doc := range docRepo.docs {
		if doc.CharCount != 11 {
			t.Errorf("persisted char count should be 11, got %d", doc.CharCount)
		}
	}
}

func TestHandleUpload_ExtractionFailureCleansUp(t *testing.T) {
	docRepo := newMockDocRepo()
	storage := &mockStorage{dir: t.TempDir()}
	extractor := &mockExtractor{err: services.ErrCorruptDocument}

	handler := NewUploadHandler(docRepo, storage, extractor, 1024*1024)

	app := fiber.New()
	app.Post("/upload", handler.HandleUpload)

	body, contentType := multipartResume(t, []byte("not a pdf"))
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	if len(storage.deleted) != 1 {
		t.Error("the saved file should be removed when extraction fails")
	}
	if len(docRepo.docs) != 0 {
		t.Error("no document row should be created when extraction fails")
	}
}
