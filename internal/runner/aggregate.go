package runner

import "github.com/shaiso/Docflow/internal/domain"

// MergeInputs собирает объединённый input узла из результатов
// его прямых предшественников.
//
// Предшественники перебираются в порядке вставки рёбер; их результаты
// сливаются поверхностно (shallow merge), при совпадении ключей
// побеждает более поздний предшественник. Предшественник без записи
// в Result Store не вносит ничего — это не ошибка: узел мог по задумке
// не произвести вывод.
//
// Обязательные поля здесь не проверяются — это работа executor'а
// конкретного типа узла.
func MergeInputs(nodeID string, edges []domain.Edge, results *Results) map[string]any {
	merged := make(map[string]any)

	for _, e := range edges {
		if e.Target != nodeID {
			continue
		}
		value, ok := results.Get(e.Source)
		if !ok {
			continue
		}
		for k, v := range value {
			merged[k] = v
		}
	}

	return merged
}
