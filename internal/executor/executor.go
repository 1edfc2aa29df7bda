package executor

import (
	"context"
	"fmt"

	"github.com/shaiso/Docflow/internal/domain"
	"github.com/shaiso/Docflow/internal/services"
)

// Executor — интерфейс выполнения конкретного типа узла.
//
// input — объединённые результаты прямых предшественников узла
// (собраны контроллером до вызова). Результат записывается контроллером
// в Result Store под ID узла; ошибка не перехватывается локально и
// прерывает весь run.
type Executor interface {
	Execute(ctx context.Context, node *domain.Node, input map[string]any) (map[string]any, error)
}

// Registry — реестр executor'ов по типу узла.
type Registry struct {
	executors map[domain.NodeKind]Executor
}

// NewRegistry создаёт реестр с executor'ами для всех известных типов.
//
// files и prompts — внешние коллабораторы: примитив чтения файлов
// и сервис вызова промптов.
func NewRegistry(files services.FileReader, prompts services.PromptInvoker) *Registry {
	r := &Registry{executors: make(map[domain.NodeKind]Executor)}
	r.Register(domain.KindDocumentInput, &DocumentInputExecutor{Files: files})
	r.Register(domain.KindPromptInvocation, &PromptInvocationExecutor{Prompts: prompts})
	r.Register(domain.KindOutputAggregation, &OutputAggregationExecutor{})
	return r
}

// Register добавляет executor для типа узла.
func (r *Registry) Register(kind domain.NodeKind, executor Executor) {
	r.executors[kind] = executor
}

// Get возвращает executor для типа узла.
func (r *Registry) Get(kind domain.NodeKind) (Executor, error) {
	executor, ok := r.executors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNodeKind, kind)
	}
	return executor, nil
}
