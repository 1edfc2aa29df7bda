package engine

import "github.com/shaiso/Docflow/internal/domain"

// Validate проверяет структурные инварианты графа целиком.
//
// Вызывается при сохранении графа и перед запуском — не при каждой правке.
// Проверяет:
//   - граф не пуст, ID узлов непустые и уникальные, типы узлов известны
//   - рёбра ссылаются на существующие узлы, самопетель нет
//   - каждый узел связан хотя бы одним ребром (нет изолированных узлов)
//   - есть хотя бы один узел document_input
func Validate(nodes []domain.Node, edges []domain.Edge) error {
	if len(nodes) == 0 {
		return ErrEmptyGraph
	}

	seen := make(map[string]bool, len(nodes))
	hasInput := false

	for i := range nodes {
		node := &nodes[i]

		if node.ID == "" {
			return NewValidationError("", "node has empty ID", ErrEmptyNodeID)
		}
		if seen[node.ID] {
			return NewValidationError(node.ID, "duplicate node ID", ErrDuplicateNode)
		}
		seen[node.ID] = true

		if !node.Kind.Valid() {
			return NewValidationError(node.ID, "unknown node kind: "+string(node.Kind), ErrUnknownNodeKind)
		}
		if node.Kind == domain.KindDocumentInput {
			hasInput = true
		}
	}

	connected := make(map[string]bool, len(nodes))
	for _, e := range edges {
		if !seen[e.Source] {
			return NewValidationError(e.Source, "edge source does not exist", ErrUnknownNode)
		}
		if !seen[e.Target] {
			return NewValidationError(e.Target, "edge target does not exist", ErrUnknownNode)
		}
		if e.Source == e.Target {
			return NewValidationError(e.Source, "edge connects node to itself", ErrSelfLoop)
		}
		connected[e.Source] = true
		connected[e.Target] = true
	}

	for i := range nodes {
		if !connected[nodes[i].ID] {
			return NewValidationError(nodes[i].ID, "node is not connected by any edge", ErrIsolatedNode)
		}
	}

	if !hasInput {
		return NewValidationError("", "graph has no document_input node", ErrNoDocumentInput)
	}

	return nil
}
