package engine

import (
	"fmt"

	"github.com/shaiso/Docflow/internal/domain"
)

// Цвета узлов при обходе в глубину.
const (
	colorWhite uint8 = iota // не посещён
	colorGrey               // в обработке (в текущем пути обхода)
	colorBlack              // обработан
)

// Order строит тотальный порядок узлов, согласованный со всеми зависимостями.
//
// Алгоритм — postorder-обход в глубину с трёхцветной разметкой: узел,
// завершивший обход своих исходящих рёбер, ставится в начало результата.
// Обход стартует от каждого узла списка по очереди (в порядке вставки),
// уже посещённые пропускаются — так каждый узел, включая недостижимые
// из других компонент, посещается ровно один раз.
//
// Попадание в "серый" узел означает цикл — ErrCyclicDependency. Редактор
// отсекает циклы при добавлении рёбер, но граф мог быть загружен из
// внешнего хранилища, поэтому проверка здесь обязана быть независимой.
//
// Обход ведётся по явному стеку: глубина не ограничена размером стека
// вызовов даже на патологических входах.
//
// Для фиксированного порядка узлов и рёбер результат детерминирован.
func Order(nodes []domain.Node, edges []domain.Edge) ([]domain.Node, error) {
	byID := make(map[string]*domain.Node, len(nodes))
	for i := range nodes {
		byID[nodes[i].ID] = &nodes[i]
	}

	// Список смежности в порядке вставки рёбер.
	adjacency := make(map[string][]string, len(nodes))
	for _, e := range edges {
		if _, ok := byID[e.Source]; !ok {
			return nil, fmt.Errorf("%w: edge source %s", ErrUnknownNode, e.Source)
		}
		if _, ok := byID[e.Target]; !ok {
			return nil, fmt.Errorf("%w: edge target %s", ErrUnknownNode, e.Target)
		}
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
	}

	color := make(map[string]uint8, len(nodes))
	order := make([]domain.Node, len(nodes))
	next := len(nodes)

	// frame — кадр явного стека обхода: узел и индекс следующего потомка.
	type frame struct {
		id    string
		child int
	}

	for i := range nodes {
		rootID := nodes[i].ID
		if color[rootID] != colorWhite {
			continue
		}

		color[rootID] = colorGrey
		stack := []frame{{id: rootID}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := adjacency[top.id]

			if top.child < len(children) {
				childID := children[top.child]
				top.child++

				switch color[childID] {
				case colorWhite:
					color[childID] = colorGrey
					stack = append(stack, frame{id: childID})
				case colorGrey:
					// Потомок ещё в текущем пути обхода — цикл.
					return nil, fmt.Errorf("%w: %s -> %s", ErrCyclicDependency, top.id, childID)
				}
				continue
			}

			// Все исходящие рёбра пройдены — ставим узел в начало порядка.
			color[top.id] = colorBlack
			next--
			order[next] = *byID[top.id]
			stack = stack[:len(stack)-1]
		}
	}

	return order, nil
}
