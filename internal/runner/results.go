package runner

import "sync"

// Results — Result Store: результаты выполнения узлов, ключ — ID узла.
//
// Заполняется по ходу run'а и переживает его: повторный запуск
// перезаписывает записи, очистка происходит только вместе с графом.
// Запись узла не существует, пока узел не выполнился успешно.
//
// Доступ защищён мьютексом: каждый узел пишет только свою запись,
// но диагностика может читать параллельно с выполнением.
type Results struct {
	mu      sync.RWMutex
	entries map[string]map[string]any
}

// NewResults создаёт пустой Result Store.
func NewResults() *Results {
	return &Results{entries: make(map[string]map[string]any)}
}

// Get возвращает результат узла и признак его наличия.
func (r *Results) Get(nodeID string) (map[string]any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.entries[nodeID]
	return value, ok
}

// Set записывает результат узла, перезаписывая предыдущий.
func (r *Results) Set(nodeID string, value map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[nodeID] = value
}

// Delete удаляет запись узла.
func (r *Results) Delete(nodeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, nodeID)
}

// Len возвращает количество записей.
func (r *Results) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear удаляет все записи.
func (r *Results) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]map[string]any)
}

// Snapshot возвращает копию всех записей (для диагностики и ответов API).
func (r *Results) Snapshot() map[string]map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]map[string]any, len(r.entries))
	for nodeID, value := range r.entries {
		entry := make(map[string]any, len(value))
		for k, v := range value {
			entry[k] = v
		}
		snapshot[nodeID] = entry
	}
	return snapshot
}
