// Package runner содержит контроллер выполнения графа.
//
// Включает:
//   - results.go   — Result Store: результаты узлов текущей сессии
//   - aggregate.go — слияние результатов предшественников в input узла
//   - runner.go    — Controller: машина состояний Idle → Running →
//     (Completed | Aborted), последовательное выполнение узлов
//
// Runner — это "мозг" выполнения: запрашивает порядок у планировщика,
// собирает input каждого узла, вызывает executor и записывает результат.
package runner
