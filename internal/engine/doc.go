// Package engine содержит графовое ядро Docflow.
//
// Включает:
//   - store.go    — in-memory хранилище узлов и рёбер
//   - cycle.go    — проверка, создаст ли новое ребро цикл
//   - topo.go     — топологическая сортировка (DFS, три цвета)
//   - validate.go — структурная валидация графа перед сохранением/запуском
//
// Все функции пакета чистые и синхронные: никаких побочных эффектов
// за пределами мутации in-memory структуры хранилища.
package engine
