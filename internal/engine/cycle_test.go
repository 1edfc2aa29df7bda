package engine

import (
	"testing"

	"github.com/shaiso/Docflow/internal/domain"
)

func edges(pairs ...[2]string) []domain.Edge {
	out := make([]domain.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = domain.Edge{Source: p[0], Target: p[1]}
	}
	return out
}

func TestWouldCreateCycle_SelfLoop(t *testing.T) {
	if !WouldCreateCycle(nil, "A", "A") {
		t.Error("self loop must be rejected even on empty edge set")
	}
}

func TestWouldCreateCycle_Chain(t *testing.T) {
	// D → P → O: замыкающее ребро O → D создаёт цикл
	es := edges([2]string{"D", "P"}, [2]string{"P", "O"})

	if !WouldCreateCycle(es, "O", "D") {
		t.Error("O -> D closes a cycle and must be detected")
	}
	if !WouldCreateCycle(es, "P", "D") {
		t.Error("P -> D closes a cycle and must be detected")
	}

	// Рёбра вперёд и дубликаты направления цикла не создают
	if WouldCreateCycle(es, "D", "O") {
		t.Error("D -> O is a forward edge, not a cycle")
	}
}

func TestWouldCreateCycle_Diamond(t *testing.T) {
	// A → B → D, A → C → D: ромб остаётся ацикличным
	es := edges(
		[2]string{"A", "B"},
		[2]string{"A", "C"},
		[2]string{"B", "D"},
	)

	if WouldCreateCycle(es, "C", "D") {
		t.Error("closing a diamond is not a cycle")
	}
	if !WouldCreateCycle(es, "D", "A") {
		t.Error("D -> A must be detected as a cycle")
	}
}

func TestWouldCreateCycle_DisconnectedComponents(t *testing.T) {
	es := edges([2]string{"A", "B"}, [2]string{"X", "Y"})

	// Ребро между компонентами безопасно
	if WouldCreateCycle(es, "B", "X") {
		t.Error("edge between components is not a cycle")
	}
}
