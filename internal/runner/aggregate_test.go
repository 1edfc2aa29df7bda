package runner

import (
	"reflect"
	"testing"

	"github.com/shaiso/Docflow/internal/domain"
)

func edgeList(pairs ...[2]string) []domain.Edge {
	out := make([]domain.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = domain.Edge{Source: p[0], Target: p[1]}
	}
	return out
}

func TestMergeInputs_LaterPredecessorWins(t *testing.T) {
	results := NewResults()
	results.Set("A", map[string]any{"a": 1})
	results.Set("B", map[string]any{"a": 2, "b": 3})

	es := edgeList([2]string{"A", "C"}, [2]string{"B", "C"})

	merged := MergeInputs("C", es, results)

	want := map[string]any{"a": 2, "b": 3}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("expected %v, got %v", want, merged)
	}
}

func TestMergeInputs_EdgeOrderDecides(t *testing.T) {
	results := NewResults()
	results.Set("A", map[string]any{"a": 1})
	results.Set("B", map[string]any{"a": 2, "b": 3})

	// Те же предшественники, но рёбра вставлены в обратном порядке
	es := edgeList([2]string{"B", "C"}, [2]string{"A", "C"})

	merged := MergeInputs("C", es, results)

	want := map[string]any{"a": 1, "b": 3}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("expected %v, got %v", want, merged)
	}
}

func TestMergeInputs_MissingPredecessorSkipped(t *testing.T) {
	results := NewResults()
	results.Set("A", map[string]any{"a": 1})
	// B ещё не выполнялся — записи нет

	es := edgeList([2]string{"A", "C"}, [2]string{"B", "C"})

	merged := MergeInputs("C", es, results)

	want := map[string]any{"a": 1}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("expected %v, got %v", want, merged)
	}
}

func TestMergeInputs_NoPredecessors(t *testing.T) {
	results := NewResults()
	results.Set("X", map[string]any{"x": 1})

	// У D нет входящих рёбер: input — пустой map, не nil
	merged := MergeInputs("D", edgeList([2]string{"D", "X"}), results)

	if merged == nil {
		t.Fatal("merged input must not be nil")
	}
	if len(merged) != 0 {
		t.Errorf("expected empty input, got %v", merged)
	}
}

func TestMergeInputs_ShallowMerge(t *testing.T) {
	// Слияние поверхностное: вложенные map заменяются целиком
	results := NewResults()
	results.Set("A", map[string]any{"doc": map[string]any{"title": "old", "pages": 3}})
	results.Set("B", map[string]any{"doc": map[string]any{"title": "new"}})

	es := edgeList([2]string{"A", "C"}, [2]string{"B", "C"})

	merged := MergeInputs("C", es, results)

	want := map[string]any{"doc": map[string]any{"title": "new"}}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("expected %v, got %v", want, merged)
	}
}

func TestResults_SurvivesAndOverwrites(t *testing.T) {
	results := NewResults()
	results.Set("A", map[string]any{"v": 1})
	results.Set("A", map[string]any{"v": 2})

	value, ok := results.Get("A")
	if !ok || value["v"] != 2 {
		t.Errorf("expected overwritten value 2, got %v", value)
	}

	results.Delete("A")
	if _, ok := results.Get("A"); ok {
		t.Error("entry should be deleted")
	}
}

func TestResults_SnapshotIsCopy(t *testing.T) {
	results := NewResults()
	results.Set("A", map[string]any{"v": 1})

	snapshot := results.Snapshot()
	snapshot["A"]["v"] = 99

	value, _ := results.Get("A")
	if value["v"] != 1 {
		t.Error("mutating snapshot must not affect the store")
	}
}

func TestResults_Clear(t *testing.T) {
	results := NewResults()
	results.Set("A", map[string]any{"v": 1})
	results.Set("B", map[string]any{"v": 2})

	results.Clear()

	if results.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", results.Len())
	}
}
