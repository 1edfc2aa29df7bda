package runner

import "fmt"

// NodeError — ошибка выполнения узла с контекстом для диагностики.
//
// Оборачивает ошибку конфигурации (не выбран файл/промпт) или ошибку
// внешнего вызова; несёт ID и имя узла, чтобы UI мог показать,
// на каком узле прервался run.
type NodeError struct {
	NodeID string // ID упавшего узла
	Label  string // человекочитаемое имя узла
	Err    error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *NodeError) Error() string {
	if e.Label != "" && e.Label != e.NodeID {
		return fmt.Sprintf("node %s (%s): %v", e.NodeID, e.Label, e.Err)
	}
	return fmt.Sprintf("node %s: %v", e.NodeID, e.Err)
}

// Unwrap возвращает базовую ошибку.
func (e *NodeError) Unwrap() error {
	return e.Err
}
