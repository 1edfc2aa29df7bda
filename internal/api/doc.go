// Package api реализует HTTP API консоли Docflow.
//
// Поверхность для внешнего UI:
//   - CRUD сохранённых графов
//   - валидация графа перед сохранением
//   - проверка ребра перед фиксацией соединения, нарисованного пользователем
//   - запуск графа (runFlow) с синхронным ответом
//
// Конвенции:
//   - JSON запросы/ответы, обёртки {"data": ...} и {"error": {...}}
//   - middleware: Recovery, Logging
package api
