package analysis_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/analysis"
	"resume-coach/internal/llm"
	"resume-coach/internal/shared/storage/scratch"
)

const validResume = "Senior Go engineer with ten years of backend experience across several product teams."

func newTestRouter(t *testing.T, client llm.Client) (*gin.Engine, *scratch.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := scratch.New(t.TempDir())
	if err != nil {
		t.Fatalf("scratch store: %v", err)
	}

	r := gin.New()
	api := r.Group("/api")
	analysis.NewHandler(&analysis.Service{LLM: client}, store).RegisterRoutes(api)
	return r, store
}

func uploadRequest(t *testing.T, fileName string, contents []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(contents); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload-resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadResumeSuccess(t *testing.T) {
	modelJSON := `{"overall_score": 9, "strengths": ["strong"], "weaknesses": [], "suggestions": [], "keywords_missing": [], "formatting_feedback": "fine", "summary": "great"}`
	router, store := newTestRouter(t, llm.CompleteFunc(func(ctx context.Context, req llm.CompletionRequest) (string, error) {
		return modelJSON, nil
	}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "resume.txt", []byte(validResume)))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Success    bool                    `json:"success"`
		Filename   string                  `json:"filename"`
		Analysis   analysis.ResumeAnalysis `json:"analysis"`
		ResumeText string                  `json:"resume_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success {
		t.Fatal("expected success true")
	}
	if out.Filename != "resume.txt" {
		t.Fatalf("unexpected filename: %q", out.Filename)
	}
	if out.Analysis.OverallScore != 9 {
		t.Fatalf("unexpected score: %v", out.Analysis.OverallScore)
	}
	if !strings.HasSuffix(out.ResumeText, "...") {
		t.Fatalf("expected preview ellipsis, got %q", out.ResumeText)
	}

	assertScratchEmpty(t, store)
}

func TestUploadResumeUnsupportedExtension(t *testing.T) {
	var calls int
	router, store := newTestRouter(t, llm.CompleteFunc(func(ctx context.Context, req llm.CompletionRequest) (string, error) {
		calls++
		return "{}", nil
	}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "resume.xyz", []byte(validResume)))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, ".pdf, .docx, .txt") {
		t.Fatalf("expected allowed extensions in body, got %s", body)
	}
	if calls != 0 {
		t.Fatalf("expected no completion calls, got %d", calls)
	}

	assertScratchEmpty(t, store)
}

func TestUploadResumeTooShort(t *testing.T) {
	var calls int
	router, store := newTestRouter(t, llm.CompleteFunc(func(ctx context.Context, req llm.CompletionRequest) (string, error) {
		calls++
		return "{}", nil
	}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "short.txt", []byte("only 10ch")))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, "too short") {
		t.Fatalf("expected too-short message, got %s", body)
	}
	if calls != 0 {
		t.Fatalf("expected no completion calls before validation, got %d", calls)
	}

	assertScratchEmpty(t, store)
}

func TestUploadResumeRemoteFailureStillOK(t *testing.T) {
	router, store := newTestRouter(t, llm.CompleteFunc(func(ctx context.Context, req llm.CompletionRequest) (string, error) {
		return "", errors.New("upstream unavailable")
	}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "resume.txt", []byte(validResume)))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with fallback, got %d", resp.Code)
	}

	var out struct {
		Analysis analysis.ResumeAnalysis `json:"analysis"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Analysis.OverallScore != 5 {
		t.Fatalf("expected remote-failure fallback score 5, got %v", out.Analysis.OverallScore)
	}

	assertScratchEmpty(t, store)
}

func TestUploadResumeCorruptPDFCleansUp(t *testing.T) {
	router, store := newTestRouter(t, llm.CompleteFunc(func(ctx context.Context, req llm.CompletionRequest) (string, error) {
		return "{}", nil
	}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "broken.pdf", []byte("not a pdf")))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for corrupt pdf, got %d", resp.Code)
	}

	assertScratchEmpty(t, store)
}

func TestUploadResumeMissingFile(t *testing.T) {
	router, _ := newTestRouter(t, llm.CompleteFunc(func(ctx context.Context, req llm.CompletionRequest) (string, error) {
		return "{}", nil
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/upload-resume", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func assertScratchEmpty(t *testing.T, store *scratch.Store) {
	t.Helper()
	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("read scratch dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty scratch dir, found %d entries", len(entries))
	}
}
