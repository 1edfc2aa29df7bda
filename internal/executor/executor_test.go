package executor

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shaiso/Docflow/internal/domain"
	"github.com/shaiso/Docflow/internal/services"
)

// fakeFiles — in-memory файловый источник.
type fakeFiles struct {
	files map[string][]byte
}

func (f *fakeFiles) Read(_ context.Context, name string) ([]byte, error) {
	data, ok := f.files[name]
	if !ok {
		return nil, services.ErrFileNotFound
	}
	return data, nil
}

// fakePrompts — сервис промптов, запоминающий аргументы вызова.
type fakePrompts struct {
	promptID       string
	documentID     string
	forceRecompute bool
	response       map[string]any
	err            error
}

func (f *fakePrompts) Invoke(_ context.Context, promptID, documentID string, forceRecompute bool) (map[string]any, error) {
	f.promptID = promptID
	f.documentID = documentID
	f.forceRecompute = forceRecompute
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

// --- DocumentInputExecutor ---

func TestDocumentInput_NoFileSelected(t *testing.T) {
	e := &DocumentInputExecutor{Files: &fakeFiles{}}
	node := &domain.Node{ID: "D", Kind: domain.KindDocumentInput}

	_, err := e.Execute(context.Background(), node, nil)
	if !errors.Is(err, ErrNoFileSelected) {
		t.Errorf("expected ErrNoFileSelected, got %v", err)
	}
}

func TestDocumentInput_MissingFile(t *testing.T) {
	e := &DocumentInputExecutor{Files: &fakeFiles{}}
	node := &domain.Node{
		ID:     "D",
		Kind:   domain.KindDocumentInput,
		Config: domain.NodeConfig{FileName: "ghost.txt"},
	}

	_, err := e.Execute(context.Background(), node, nil)
	if !errors.Is(err, services.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestDocumentInput_Text(t *testing.T) {
	files := &fakeFiles{files: map[string][]byte{"note.txt": []byte("hello")}}
	e := &DocumentInputExecutor{Files: files}
	node := &domain.Node{
		ID:     "D",
		Kind:   domain.KindDocumentInput,
		Config: domain.NodeConfig{FileName: "note.txt", ContentType: "text/plain"},
	}

	result, err := e.Execute(context.Background(), node, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result["name"] != "note.txt" || result["content_type"] != "text/plain" {
		t.Errorf("unexpected metadata: %v", result)
	}
	if result["content"] != "hello" {
		t.Errorf("expected text content, got %v", result["content"])
	}
}

func TestDocumentInput_JSON(t *testing.T) {
	files := &fakeFiles{files: map[string][]byte{"doc.json": []byte(`{"title":"report","pages":3}`)}}
	e := &DocumentInputExecutor{Files: files}
	node := &domain.Node{
		ID:     "D",
		Kind:   domain.KindDocumentInput,
		Config: domain.NodeConfig{FileName: "doc.json", ContentType: "application/json; charset=utf-8"},
	}

	result, err := e.Execute(context.Background(), node, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, ok := result["content"].(map[string]any)
	if !ok || content["title"] != "report" {
		t.Errorf("expected parsed JSON, got %v", result["content"])
	}
}

func TestDocumentInput_BadJSON(t *testing.T) {
	files := &fakeFiles{files: map[string][]byte{"doc.json": []byte("{broken")}}
	e := &DocumentInputExecutor{Files: files}
	node := &domain.Node{
		ID:     "D",
		Kind:   domain.KindDocumentInput,
		Config: domain.NodeConfig{FileName: "doc.json", ContentType: "application/json"},
	}

	_, err := e.Execute(context.Background(), node, nil)
	if !errors.Is(err, ErrDocumentDecode) {
		t.Errorf("expected ErrDocumentDecode, got %v", err)
	}
}

func TestDocumentInput_BinaryBecomesDataURL(t *testing.T) {
	files := &fakeFiles{files: map[string][]byte{"img.png": {0x89, 0x50, 0x4e, 0x47}}}
	e := &DocumentInputExecutor{Files: files}
	node := &domain.Node{
		ID:     "D",
		Kind:   domain.KindDocumentInput,
		Config: domain.NodeConfig{FileName: "img.png", ContentType: "image/png"},
	}

	result, err := e.Execute(context.Background(), node, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, _ := result["content"].(string)
	if !strings.HasPrefix(content, "data:image/png;base64,") {
		t.Errorf("expected data URL, got %v", content)
	}
}

func TestDocumentInput_DefaultContentType(t *testing.T) {
	files := &fakeFiles{files: map[string][]byte{"blob": []byte("x")}}
	e := &DocumentInputExecutor{Files: files}
	node := &domain.Node{
		ID:     "D",
		Kind:   domain.KindDocumentInput,
		Config: domain.NodeConfig{FileName: "blob"},
	}

	result, err := e.Execute(context.Background(), node, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["content_type"] != "application/octet-stream" {
		t.Errorf("expected default content type, got %v", result["content_type"])
	}
}

// --- PromptInvocationExecutor ---

func TestPromptInvocation_NoPromptSelected(t *testing.T) {
	e := &PromptInvocationExecutor{Prompts: &fakePrompts{}}
	node := &domain.Node{ID: "P", Kind: domain.KindPromptInvocation}

	_, err := e.Execute(context.Background(), node, nil)
	if !errors.Is(err, ErrNoPromptSelected) {
		t.Errorf("expected ErrNoPromptSelected, got %v", err)
	}
}

func TestPromptInvocation_ResultUnderDisplayName(t *testing.T) {
	prompts := &fakePrompts{response: map[string]any{"summary": "ok"}}
	e := &PromptInvocationExecutor{Prompts: prompts}
	node := &domain.Node{
		ID:    "P",
		Label: "Summary",
		Kind:  domain.KindPromptInvocation,
		Config: domain.NodeConfig{
			PromptID:       "summarize",
			DocumentID:     "doc-1",
			ForceRecompute: true,
		},
	}

	result, err := e.Execute(context.Background(), node, map[string]any{"content": "text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Ответ сервиса кладётся целиком под именем узла
	want := map[string]any{"Summary": map[string]any{"summary": "ok"}}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("expected %v, got %v", want, result)
	}

	if prompts.promptID != "summarize" || prompts.documentID != "doc-1" || !prompts.forceRecompute {
		t.Errorf("service called with wrong arguments: %+v", prompts)
	}
}

func TestPromptInvocation_FallsBackToNodeID(t *testing.T) {
	prompts := &fakePrompts{response: map[string]any{}}
	e := &PromptInvocationExecutor{Prompts: prompts}
	node := &domain.Node{
		ID:     "P",
		Kind:   domain.KindPromptInvocation,
		Config: domain.NodeConfig{PromptID: "summarize"},
	}

	result, err := e.Execute(context.Background(), node, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result["P"]; !ok {
		t.Errorf("unlabeled node keys result by ID, got %v", result)
	}
}

func TestPromptInvocation_ServiceError(t *testing.T) {
	serviceErr := errors.New("model overloaded")
	e := &PromptInvocationExecutor{Prompts: &fakePrompts{err: serviceErr}}
	node := &domain.Node{
		ID:     "P",
		Kind:   domain.KindPromptInvocation,
		Config: domain.NodeConfig{PromptID: "summarize"},
	}

	_, err := e.Execute(context.Background(), node, nil)
	if !errors.Is(err, serviceErr) {
		t.Errorf("expected service error, got %v", err)
	}
}

// --- OutputAggregationExecutor ---

func TestOutputAggregation_ReturnsInputVerbatim(t *testing.T) {
	e := &OutputAggregationExecutor{}
	node := &domain.Node{ID: "O", Kind: domain.KindOutputAggregation}

	input := map[string]any{"a": 1, "b": "x"}
	result, err := e.Execute(context.Background(), node, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(result, input) {
		t.Errorf("expected %v, got %v", input, result)
	}
}

func TestOutputAggregation_NilInput(t *testing.T) {
	e := &OutputAggregationExecutor{}
	node := &domain.Node{ID: "O", Kind: domain.KindOutputAggregation}

	result, err := e.Execute(context.Background(), node, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || len(result) != 0 {
		t.Errorf("expected empty map, got %v", result)
	}
}

// --- Registry ---

func TestRegistry_AllKindsRegistered(t *testing.T) {
	r := NewRegistry(&fakeFiles{}, &fakePrompts{})

	for _, kind := range []domain.NodeKind{
		domain.KindDocumentInput,
		domain.KindPromptInvocation,
		domain.KindOutputAggregation,
	} {
		if _, err := r.Get(kind); err != nil {
			t.Errorf("kind %s: unexpected error: %v", kind, err)
		}
	}
}

func TestRegistry_UnknownKind(t *testing.T) {
	r := NewRegistry(&fakeFiles{}, &fakePrompts{})

	if _, err := r.Get("teleport"); !errors.Is(err, ErrUnknownNodeKind) {
		t.Errorf("expected ErrUnknownNodeKind, got %v", err)
	}
}
