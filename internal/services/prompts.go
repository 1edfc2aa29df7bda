package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultInvokeTimeout = 60 * time.Second

// ErrInvocation — вызов сервиса промптов завершился ошибкой.
var ErrInvocation = errors.New("prompt invocation failed")

// PromptInvoker — сервис вызова промптов.
//
// Один вызов — один внешний запрос (prompt × document), ответ ожидается
// синхронно, повторных попыток нет.
type PromptInvoker interface {
	Invoke(ctx context.Context, promptID, documentID string, forceRecompute bool) (map[string]any, error)
}

// HTTPPromptService — PromptInvoker поверх HTTP API бэкенда промптов.
type HTTPPromptService struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPromptService создаёт HTTPPromptService.
func NewHTTPPromptService(baseURL string) *HTTPPromptService {
	return &HTTPPromptService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultInvokeTimeout},
	}
}

// invokeRequest — тело запроса к сервису промптов.
type invokeRequest struct {
	PromptID       string `json:"prompt_id"`
	DocumentID     string `json:"document_id"`
	ForceRecompute bool   `json:"force_recompute"`
}

// Invoke выполняет один запрос вызова промпта.
func (s *HTTPPromptService) Invoke(ctx context.Context, promptID, documentID string, forceRecompute bool) (map[string]any, error) {
	body, err := json.Marshal(invokeRequest{
		PromptID:       promptID,
		DocumentID:     documentID,
		ForceRecompute: forceRecompute,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrInvocation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/v1/invocations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrInvocation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvocation, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrInvocation, err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrInvocation, resp.StatusCode, truncate(string(respBody), 200))
	}

	var result map[string]any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrInvocation, err)
	}
	return result, nil
}

// DefaultPromptURL возвращает URL сервиса промптов из окружения.
func DefaultPromptURL() string {
	if v := os.Getenv("PROMPT_API_URL"); v != "" {
		return v
	}
	return "http://localhost:8090"
}

// truncate обрезает строку до указанной длины.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
