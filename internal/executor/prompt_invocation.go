package executor

import (
	"context"

	"github.com/shaiso/Docflow/internal/domain"
	"github.com/shaiso/Docflow/internal/services"
)

// PromptInvocationExecutor — executor для узла типа "prompt_invocation".
//
// Требует выбранный промпт (Config.PromptID). Выполняет один внешний вызов
// (prompt × document) и ждёт ответ синхронно; повторных попыток нет.
//
// Результат: payload ответа под ключом с именем узла — так результаты
// нескольких prompt-узлов не затирают друг друга при агрегации ниже
// по графу.
type PromptInvocationExecutor struct {
	Prompts services.PromptInvoker
}

// Execute выполняет вызов промпта.
func (e *PromptInvocationExecutor) Execute(ctx context.Context, node *domain.Node, _ map[string]any) (map[string]any, error) {
	promptID := node.Config.PromptID
	if promptID == "" {
		return nil, ErrNoPromptSelected
	}

	response, err := e.Prompts.Invoke(ctx, promptID, node.Config.DocumentID, node.Config.ForceRecompute)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		node.DisplayName(): response,
	}, nil
}
