package engine

import (
	"errors"
	"testing"

	"github.com/shaiso/Docflow/internal/domain"
)

// validGraph — минимальный корректный граф D → P → O.
func validGraph() ([]domain.Node, []domain.Edge) {
	nodes := []domain.Node{
		{ID: "D", Kind: domain.KindDocumentInput},
		{ID: "P", Kind: domain.KindPromptInvocation},
		{ID: "O", Kind: domain.KindOutputAggregation},
	}
	es := edges([2]string{"D", "P"}, [2]string{"P", "O"})
	return nodes, es
}

func TestValidate_OK(t *testing.T) {
	nodes, es := validGraph()
	if err := Validate(nodes, es); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EmptyGraph(t *testing.T) {
	if err := Validate(nil, nil); !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("expected ErrEmptyGraph, got %v", err)
	}
}

func TestValidate_EmptyNodeID(t *testing.T) {
	nodes := []domain.Node{{Kind: domain.KindDocumentInput}}
	if err := Validate(nodes, nil); !errors.Is(err, ErrEmptyNodeID) {
		t.Errorf("expected ErrEmptyNodeID, got %v", err)
	}
}

func TestValidate_DuplicateNodeID(t *testing.T) {
	nodes := []domain.Node{
		{ID: "D", Kind: domain.KindDocumentInput},
		{ID: "D", Kind: domain.KindPromptInvocation},
	}
	err := Validate(nodes, edges([2]string{"D", "D"}))
	if !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("expected ErrDuplicateNode, got %v", err)
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	nodes := []domain.Node{
		{ID: "D", Kind: domain.KindDocumentInput},
		{ID: "X", Kind: "teleport"},
	}
	err := Validate(nodes, edges([2]string{"D", "X"}))
	if !errors.Is(err, ErrUnknownNodeKind) {
		t.Errorf("expected ErrUnknownNodeKind, got %v", err)
	}

	// Ошибка должна нести ID виновного узла
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.NodeID != "X" {
		t.Errorf("expected ValidationError for node X, got %v", err)
	}
}

func TestValidate_EdgeToMissingNode(t *testing.T) {
	nodes := []domain.Node{{ID: "D", Kind: domain.KindDocumentInput}}
	err := Validate(nodes, edges([2]string{"D", "ghost"}))
	if !errors.Is(err, ErrUnknownNode) {
		t.Errorf("expected ErrUnknownNode, got %v", err)
	}
}

func TestValidate_SelfLoop(t *testing.T) {
	nodes := []domain.Node{{ID: "D", Kind: domain.KindDocumentInput}}
	err := Validate(nodes, edges([2]string{"D", "D"}))
	if !errors.Is(err, ErrSelfLoop) {
		t.Errorf("expected ErrSelfLoop, got %v", err)
	}
}

func TestValidate_IsolatedNode(t *testing.T) {
	nodes, es := validGraph()
	nodes = append(nodes, domain.Node{ID: "lonely", Kind: domain.KindPromptInvocation})

	err := Validate(nodes, es)
	if !errors.Is(err, ErrIsolatedNode) {
		t.Errorf("expected ErrIsolatedNode, got %v", err)
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.NodeID != "lonely" {
		t.Errorf("expected ValidationError for node lonely, got %v", err)
	}
}

func TestValidate_NoDocumentInput(t *testing.T) {
	nodes := []domain.Node{
		{ID: "P", Kind: domain.KindPromptInvocation},
		{ID: "O", Kind: domain.KindOutputAggregation},
	}
	err := Validate(nodes, edges([2]string{"P", "O"}))
	if !errors.Is(err, ErrNoDocumentInput) {
		t.Errorf("expected ErrNoDocumentInput, got %v", err)
	}
}
