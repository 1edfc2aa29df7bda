package engine

import (
	"errors"
	"testing"

	"github.com/shaiso/Docflow/internal/domain"
)

func nodeList(ids ...string) []domain.Node {
	out := make([]domain.Node, len(ids))
	for i, id := range ids {
		out[i] = domain.Node{ID: id, Kind: domain.KindPromptInvocation}
	}
	return out
}

// indexOf возвращает позицию узла в порядке.
func indexOf(t *testing.T, order []domain.Node, id string) int {
	t.Helper()
	for i := range order {
		if order[i].ID == id {
			return i
		}
	}
	t.Fatalf("node %s not in order", id)
	return -1
}

func TestOrder_Chain(t *testing.T) {
	nodes := nodeList("D", "P", "O")
	es := edges([2]string{"D", "P"}, [2]string{"P", "O"})

	order, err := Order(nodes, es)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"D", "P", "O"}
	for i, id := range want {
		if order[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, order[i].ID)
		}
	}
}

func TestOrder_Diamond(t *testing.T) {
	nodes := nodeList("A", "B", "C", "D")
	es := edges(
		[2]string{"A", "B"},
		[2]string{"A", "C"},
		[2]string{"B", "D"},
		[2]string{"C", "D"},
	)

	order, err := Order(nodes, es)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Каждое ребро должно идти слева направо в порядке
	for _, e := range es {
		if indexOf(t, order, e.Source) >= indexOf(t, order, e.Target) {
			t.Errorf("edge %s -> %s violated by order", e.Source, e.Target)
		}
	}
}

func TestOrder_Deterministic(t *testing.T) {
	nodes := nodeList("A", "B", "C", "D", "E")
	es := edges(
		[2]string{"A", "C"},
		[2]string{"B", "C"},
		[2]string{"C", "D"},
		[2]string{"C", "E"},
	)

	first, err := Order(nodes, es)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Повторные вызовы на тех же входах дают тот же порядок
	for range 10 {
		again, err := Order(nodes, es)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range first {
			if again[i].ID != first[i].ID {
				t.Fatalf("order is not deterministic: %v vs %v", first, again)
			}
		}
	}
}

func TestOrder_DisconnectedComponents(t *testing.T) {
	nodes := nodeList("A", "B", "X", "Y")
	es := edges([2]string{"A", "B"}, [2]string{"X", "Y"})

	order, err := Order(nodes, es)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(order) != 4 {
		t.Fatalf("expected all 4 nodes, got %d", len(order))
	}
	if indexOf(t, order, "A") >= indexOf(t, order, "B") {
		t.Error("A must precede B")
	}
	if indexOf(t, order, "X") >= indexOf(t, order, "Y") {
		t.Error("X must precede Y")
	}
}

func TestOrder_Cycle(t *testing.T) {
	nodes := nodeList("A", "B", "C")
	es := edges(
		[2]string{"A", "B"},
		[2]string{"B", "C"},
		[2]string{"C", "A"},
	)

	if _, err := Order(nodes, es); !errors.Is(err, ErrCyclicDependency) {
		t.Errorf("expected ErrCyclicDependency, got %v", err)
	}
}

func TestOrder_UnknownEndpoint(t *testing.T) {
	nodes := nodeList("A")
	es := edges([2]string{"A", "ghost"})

	if _, err := Order(nodes, es); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("expected ErrUnknownNode, got %v", err)
	}
}

func TestOrder_Empty(t *testing.T) {
	order, err := Order(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 0 {
		t.Errorf("expected empty order, got %d nodes", len(order))
	}
}
