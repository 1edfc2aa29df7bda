// Package executor содержит executor'ы типов узлов.
//
// Каждый тип узла (document_input, prompt_invocation, output_aggregation)
// реализует интерфейс Executor и регистрируется в Registry. Диспетчеризация
// по типу узла происходит через реестр; неизвестный тип — ошибка.
//
// Вся асинхронная работа (чтение файла, внешний вызов) изолирована здесь:
// графовые алгоритмы в internal/engine остаются чистыми и синхронными.
package executor
