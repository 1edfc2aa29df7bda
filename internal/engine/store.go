package engine

import (
	"fmt"

	"github.com/shaiso/Docflow/internal/domain"
)

// Store — in-memory хранилище текущего набора узлов и рёбер.
//
// Порядок вставки сохраняется и для узлов, и для рёбер: от него зависит
// детерминизм топологической сортировки и порядок слияния результатов
// предшественников.
//
// Store не выполняет валидацию за пределами проверки существования ID:
// циклы отсекает проверка в AddEdge, структурные инварианты — Validate.
type Store struct {
	nodes     map[string]*domain.Node
	nodeOrder []string
	edges     []domain.Edge
	edgeIDs   map[string]bool
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{
		nodes:   make(map[string]*domain.Node),
		edgeIDs: make(map[string]bool),
	}
}

// Load создаёт хранилище из сохранённого графа.
//
// Рёбра добавляются через AddEdge, поэтому граф с циклом, самопетлёй
// или ссылкой на несуществующий узел будет отвергнут — граф мог быть
// загружен из внешнего хранилища, минуя редактор.
func Load(g *domain.Graph) (*Store, error) {
	s := NewStore()
	for i := range g.Nodes {
		if err := s.AddNode(g.Nodes[i]); err != nil {
			return nil, fmt.Errorf("load node %s: %w", g.Nodes[i].ID, err)
		}
	}
	for _, e := range g.Edges {
		if err := s.AddEdge(e.Source, e.Target); err != nil {
			return nil, fmt.Errorf("load edge %s: %w", e.ID(), err)
		}
	}
	return s, nil
}

// AddNode добавляет узел.
func (s *Store) AddNode(node domain.Node) error {
	if node.ID == "" {
		return ErrEmptyNodeID
	}
	if _, exists := s.nodes[node.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNode, node.ID)
	}

	n := node
	s.nodes[node.ID] = &n
	s.nodeOrder = append(s.nodeOrder, node.ID)
	return nil
}

// RemoveNode удаляет узел и все рёбра, которые его касаются.
func (s *Store) RemoveNode(id string) error {
	if _, exists := s.nodes[id]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}

	delete(s.nodes, id)

	for i, nodeID := range s.nodeOrder {
		if nodeID == id {
			s.nodeOrder = append(s.nodeOrder[:i], s.nodeOrder[i+1:]...)
			break
		}
	}

	kept := s.edges[:0]
	for _, e := range s.edges {
		if e.Source == id || e.Target == id {
			delete(s.edgeIDs, e.ID())
			continue
		}
		kept = append(kept, e)
	}
	s.edges = kept

	return nil
}

// AddEdge добавляет ребро source → target.
//
// Проверка выполняется синхронно до фиксации: отвергнутое ребро
// не меняет хранилище. Возвращает:
//   - ErrUnknownNode, если один из концов не существует
//   - ErrSelfLoop для ребра из узла в самого себя
//   - ErrDuplicateEdge, если такое ребро уже есть
//   - ErrCyclicDependency, если ребро замкнуло бы цикл
func (s *Store) AddEdge(source, target string) error {
	if _, exists := s.nodes[source]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownNode, source)
	}
	if _, exists := s.nodes[target]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownNode, target)
	}
	if source == target {
		return fmt.Errorf("%w: %s", ErrSelfLoop, source)
	}

	edge := domain.Edge{Source: source, Target: target}
	if s.edgeIDs[edge.ID()] {
		return fmt.Errorf("%w: %s", ErrDuplicateEdge, edge.ID())
	}

	if WouldCreateCycle(s.edges, source, target) {
		return fmt.Errorf("%w: %s", ErrCyclicDependency, edge.ID())
	}

	s.edges = append(s.edges, edge)
	s.edgeIDs[edge.ID()] = true
	return nil
}

// RemoveEdge удаляет ребро source → target.
func (s *Store) RemoveEdge(source, target string) error {
	id := domain.Edge{Source: source, Target: target}.ID()
	if !s.edgeIDs[id] {
		return fmt.Errorf("%w: %s", ErrUnknownEdge, id)
	}

	delete(s.edgeIDs, id)
	for i, e := range s.edges {
		if e.ID() == id {
			s.edges = append(s.edges[:i], s.edges[i+1:]...)
			break
		}
	}
	return nil
}

// Node возвращает узел по ID.
func (s *Store) Node(id string) (*domain.Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Nodes возвращает все узлы в порядке вставки.
func (s *Store) Nodes() []domain.Node {
	nodes := make([]domain.Node, 0, len(s.nodeOrder))
	for _, id := range s.nodeOrder {
		nodes = append(nodes, *s.nodes[id])
	}
	return nodes
}

// Edges возвращает все рёбра в порядке вставки.
func (s *Store) Edges() []domain.Edge {
	edges := make([]domain.Edge, len(s.edges))
	copy(edges, s.edges)
	return edges
}

// Outgoing возвращает исходящие рёбра узла в порядке вставки.
func (s *Store) Outgoing(id string) []domain.Edge {
	var out []domain.Edge
	for _, e := range s.edges {
		if e.Source == id {
			out = append(out, e)
		}
	}
	return out
}

// Incoming возвращает входящие рёбра узла в порядке вставки.
func (s *Store) Incoming(id string) []domain.Edge {
	var in []domain.Edge
	for _, e := range s.edges {
		if e.Target == id {
			in = append(in, e)
		}
	}
	return in
}

// Len возвращает количество узлов.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Clear удаляет все узлы и рёбра.
func (s *Store) Clear() {
	s.nodes = make(map[string]*domain.Node)
	s.nodeOrder = nil
	s.edges = nil
	s.edgeIDs = make(map[string]bool)
}
