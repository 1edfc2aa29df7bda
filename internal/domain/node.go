package domain

// NodeKind — тип узла графа обработки.
//
// Набор типов закрытый: document_input, prompt_invocation, output_aggregation.
// Новый тип добавляется константой здесь + executor'ом в internal/executor.
type NodeKind string

const (
	// KindDocumentInput — узел загрузки документа.
	// Читает выбранный файл и декодирует его по content type.
	KindDocumentInput NodeKind = "document_input"

	// KindPromptInvocation — узел вызова промпта (LLM).
	// Выполняет один внешний запрос (prompt × document).
	KindPromptInvocation NodeKind = "prompt_invocation"

	// KindOutputAggregation — узел агрегации результатов.
	// Возвращает объединённые результаты предшественников как свой результат.
	KindOutputAggregation NodeKind = "output_aggregation"
)

// Valid возвращает true, если kind входит в закрытый набор типов.
func (k NodeKind) Valid() bool {
	switch k {
	case KindDocumentInput, KindPromptInvocation, KindOutputAggregation:
		return true
	default:
		return false
	}
}

// Position — координаты узла на канвасе редактора.
// Используется только UI, на выполнение не влияет.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeConfig — конфигурация узла, зависящая от типа.
//
// Для document_input: FileName + ContentType.
// Для prompt_invocation: PromptID + DocumentID (+ ForceRecompute).
// Для output_aggregation конфигурация не требуется.
type NodeConfig struct {
	// FileName — имя выбранного исходного файла (document_input).
	FileName string `json:"file_name,omitempty"`

	// ContentType — заявленный content type файла (document_input).
	// Например: "application/json", "text/plain", "application/pdf".
	ContentType string `json:"content_type,omitempty"`

	// PromptID — идентификатор выбранного промпта (prompt_invocation).
	PromptID string `json:"prompt_id,omitempty"`

	// DocumentID — идентификатор целевого документа (prompt_invocation).
	DocumentID string `json:"document_id,omitempty"`

	// ForceRecompute — принудительный пересчёт без использования кэша
	// сервиса промптов (prompt_invocation).
	ForceRecompute bool `json:"force_recompute,omitempty"`
}

// Node — узел графа обработки.
//
// Узел создаётся когда пользователь перетаскивает элемент палитры на канвас
// или когда сохранённый граф загружается из хранилища.
type Node struct {
	// ID — уникальный идентификатор узла в рамках графа.
	ID string `json:"id"`

	// Label — человекочитаемое имя узла. Используется в диагностике
	// и как ключ результата для prompt_invocation.
	Label string `json:"label,omitempty"`

	// Kind — тип узла.
	Kind NodeKind `json:"kind"`

	// Config — конфигурация, зависящая от типа.
	Config NodeConfig `json:"config"`

	// Position — координаты на канвасе (только для UI).
	Position Position `json:"position"`
}

// DisplayName возвращает Label, а если он пуст — ID.
func (n *Node) DisplayName() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge — направленная зависимость между узлами.
//
// Source → Target означает "Target зависит от результата Source".
// Инварианты (проверяются графовым хранилищем): оба конца существуют,
// Source != Target, добавление не создаёт цикл.
type Edge struct {
	// Source — ID узла-источника.
	Source string `json:"source"`

	// Target — ID зависимого узла.
	Target string `json:"target"`
}

// ID возвращает идентификатор ребра, производный от его концов.
func (e Edge) ID() string {
	return e.Source + "->" + e.Target
}
