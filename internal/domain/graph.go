package domain

import (
	"time"

	"github.com/google/uuid"
)

// Graph — сохранённый граф обработки документов.
//
// Graph — это то, что пользователь собирает в редакторе и сохраняет:
// набор узлов и рёбер плюс метаданные (имя, описание, теги).
// Узлы и рёбра хранятся verbatim — ядро не интерпретирует payload
// за пределами их формы.
type Graph struct {
	// ID — уникальный идентификатор графа.
	ID uuid.UUID `json:"id"`

	// Name — имя графа.
	Name string `json:"name"`

	// Description — описание назначения графа.
	Description string `json:"description,omitempty"`

	// Tags — идентификаторы классификационных тегов.
	Tags []string `json:"tags,omitempty"`

	// Nodes — узлы графа в порядке создания.
	Nodes []Node `json:"nodes"`

	// Edges — рёбра графа в порядке создания.
	Edges []Edge `json:"edges"`

	// CreatedAt — время создания.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt — время последнего обновления.
	UpdatedAt time.Time `json:"updated_at"`
}
