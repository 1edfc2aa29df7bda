package engine

import "github.com/shaiso/Docflow/internal/domain"

// WouldCreateCycle проверяет, создаст ли добавление ребра source → target цикл.
//
// Новое ребро замыкает цикл тогда и только тогда, когда target уже может
// достичь source по существующим рёбрам (путь target → … → source).
// Самопетля (source == target) считается циклом без запуска поиска.
//
// Поиск — обход в глубину по явному стеку с множеством посещённых узлов,
// поэтому завершается на любом входе, включая графы, загруженные из
// внешнего хранилища без прохождения через редактор.
func WouldCreateCycle(edges []domain.Edge, source, target string) bool {
	if source == target {
		return true
	}

	// Список смежности по исходящим рёбрам.
	adjacency := make(map[string][]string, len(edges))
	for _, e := range edges {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
	}

	visited := make(map[string]bool)
	stack := []string{target}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == source {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true

		stack = append(stack, adjacency[current]...)
	}

	return false
}
