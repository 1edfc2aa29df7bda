// Package mq предоставляет инфраструктуру событий run'ов поверх RabbitMQ.
//
// Структура:
//   - connection.go — управление соединением (reconnect, graceful shutdown)
//   - topology.go   — объявление exchange, queues, bindings
//   - publisher.go  — публикация событий run'а
//   - consumer.go   — потребление событий (CLI `events`, внешние подписчики)
//
// События:
//   - run.started    — run начал выполнение
//   - run.completed  — все узлы выполнены успешно
//   - run.aborted    — run прерван на первой ошибке
//   - node.completed — узел выполнен, результат записан
//
// Publisher опционален: без RabbitMQ ядро работает, события просто
// не публикуются.
package mq
