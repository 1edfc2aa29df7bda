package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPPromptService_Invoke(t *testing.T) {
	var got invokeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/invocations" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"summary": "ok"})
	}))
	defer server.Close()

	svc := NewHTTPPromptService(server.URL)

	result, err := svc.Invoke(context.Background(), "summarize", "doc-1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.PromptID != "summarize" || got.DocumentID != "doc-1" || !got.ForceRecompute {
		t.Errorf("unexpected request body: %+v", got)
	}
	if result["summary"] != "ok" {
		t.Errorf("unexpected result: %v", result)
	}
}

func TestHTTPPromptService_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "prompt not found", http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewHTTPPromptService(server.URL)

	_, err := svc.Invoke(context.Background(), "missing", "", false)
	if !errors.Is(err, ErrInvocation) {
		t.Errorf("expected ErrInvocation, got %v", err)
	}
}

func TestHTTPPromptService_BadResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	svc := NewHTTPPromptService(server.URL)

	_, err := svc.Invoke(context.Background(), "summarize", "", false)
	if !errors.Is(err, ErrInvocation) {
		t.Errorf("expected ErrInvocation, got %v", err)
	}
}

func TestHTTPPromptService_ConnectionRefused(t *testing.T) {
	// Закрытый сервер гарантирует ошибку соединения
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	svc := NewHTTPPromptService(server.URL)

	_, err := svc.Invoke(context.Background(), "summarize", "", false)
	if !errors.Is(err, ErrInvocation) {
		t.Errorf("expected ErrInvocation, got %v", err)
	}
}
