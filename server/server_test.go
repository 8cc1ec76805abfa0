package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frndlabs/gobhasha"
	"github.com/frndlabs/gobhasha/provider"
	"github.com/frndlabs/gobhasha/translog"
)

func newTestServer(t *testing.T, p gobhasha.Provider) *Server {
	t.Helper()
	logger := translog.NewCSVLogger(filepath.Join(t.TempDir(), "log.csv"))
	tr := gobhasha.NewTranslator(p,
		gobhasha.WithLogger(logger),
		gobhasha.WithPreservedTerms([]string{"FRND"}),
	)
	return NewWith(tr, logger)
}

func postTranslate(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestHandleTranslate(t *testing.T) {
	mock := provider.NewMockProvider()
	s := newTestServer(t, mock)

	w := postTranslate(t, s, `{"source_lang":"en-IN","target_lang":"hi-IN","text":"Good morning"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp translateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Text == "" {
		t.Error("Expected a translation in the response")
	}
	if resp.RequestID == "" {
		t.Error("Expected a request id")
	}
	if resp.Confidence < 0 || resp.Confidence > 1 {
		t.Errorf("Confidence out of range: %f", resp.Confidence)
	}
	if mock.CallCount != 1 {
		t.Errorf("Expected 1 engine call, got %d", mock.CallCount)
	}
}

func TestHandleTranslate_EmptyText(t *testing.T) {
	s := newTestServer(t, provider.NewMockProvider())

	w := postTranslate(t, s, `{"target_lang":"hi-IN","text":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty text, got %d", w.Code)
	}
}

func TestHandleTranslate_MissingTarget(t *testing.T) {
	s := newTestServer(t, provider.NewMockProvider())

	w := postTranslate(t, s, `{"text":"hello"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing target_lang, got %d", w.Code)
	}
}

func TestHandleTranslate_EngineFailure(t *testing.T) {
	mock := provider.NewMockProvider()
	mock.Err = &gobhasha.ProviderError{Message: "engine down", StatusCode: 500, Body: "oops"}
	s := newTestServer(t, mock)

	w := postTranslate(t, s, `{"target_lang":"hi-IN","text":"hello"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", w.Code)
	}

	var resp translateResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !strings.HasPrefix(resp.Text, gobhasha.ErrorMark) {
		t.Errorf("Expected error-marked text, got %q", resp.Text)
	}
	if resp.Confidence != 0 {
		t.Errorf("Expected zero confidence, got %f", resp.Confidence)
	}
	if resp.Error == "" {
		t.Error("Expected an error field")
	}
}

func TestHandleLogExport(t *testing.T) {
	s := newTestServer(t, provider.NewMockProvider())

	postTranslate(t, s, `{"source_lang":"en-IN","target_lang":"hi-IN","text":"Good morning"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/log.csv", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Expected text/csv, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Input Language") {
		t.Error("Expected header row in export")
	}
	if !strings.Contains(body, "Good morning") {
		t.Error("Expected logged row in export")
	}
}

func TestHandleMonthlyExport(t *testing.T) {
	s := newTestServer(t, provider.NewMockProvider())

	postTranslate(t, s, `{"source_lang":"en-IN","target_lang":"hi-IN","text":"Good morning"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/log/monthly.csv", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Good morning") {
		t.Error("Expected current-month row in export")
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "translations-") {
		t.Errorf("Expected month-stamped filename, got %q", cd)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, provider.NewMockProvider())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("Unexpected health body: %s", w.Body.String())
	}
}
