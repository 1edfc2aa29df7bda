package executor

import (
	"context"

	"github.com/shaiso/Docflow/internal/domain"
)

// OutputAggregationExecutor — executor для узла типа "output_aggregation".
//
// Конфигурации не требует и побочных эффектов не имеет: объединённые
// результаты предшественников уже собраны контроллером и переданы как
// input. Узел записывает их verbatim как собственный результат — так
// они доступны потребителям ниже по графу и для отображения.
type OutputAggregationExecutor struct{}

// Execute возвращает объединённый input как результат узла.
func (e *OutputAggregationExecutor) Execute(_ context.Context, _ *domain.Node, input map[string]any) (map[string]any, error) {
	if input == nil {
		input = make(map[string]any)
	}
	return input, nil
}
