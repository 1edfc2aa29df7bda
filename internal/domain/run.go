package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus — статус выполнения run.
//
// Жизненный цикл:
//
//	IDLE → RUNNING → COMPLETED
//	               ↘ ABORTED
type RunStatus string

const (
	// RunStatusIdle — run создан, выполнение ещё не началось.
	RunStatusIdle RunStatus = "IDLE"

	// RunStatusRunning — run в процессе выполнения.
	RunStatusRunning RunStatus = "RUNNING"

	// RunStatusCompleted — все узлы выполнены успешно.
	RunStatusCompleted RunStatus = "COMPLETED"

	// RunStatusAborted — run прерван на первой ошибке.
	RunStatusAborted RunStatus = "ABORTED"
)

// IsTerminal возвращает true, если статус финальный.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusAborted:
		return true
	default:
		return false
	}
}

// Run — один прогон графа.
//
// Run живёт только в памяти на время выполнения: история прогонов
// не сохраняется, результаты узлов живут в Result Store до очистки графа.
type Run struct {
	// ID — уникальный идентификатор run.
	ID uuid.UUID `json:"id"`

	// GraphID — идентификатор графа, который выполняется.
	// Нулевой UUID для графов, собранных в памяти без сохранения.
	GraphID uuid.UUID `json:"graph_id"`

	// Status — текущий статус выполнения.
	Status RunStatus `json:"status"`

	// StartedAt — время начала выполнения.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// FinishedAt — время завершения (успешного или с ошибкой).
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// FailedNodeID — ID узла, на котором run прервался.
	FailedNodeID string `json:"failed_node_id,omitempty"`

	// Error — текст ошибки, если run прерван.
	Error string `json:"error,omitempty"`
}

// NewRun создаёт новый run в статусе IDLE.
func NewRun(graphID uuid.UUID) *Run {
	return &Run{
		ID:      uuid.New(),
		GraphID: graphID,
		Status:  RunStatusIdle,
	}
}

// Duration возвращает продолжительность выполнения.
// Возвращает 0, если run ещё не завершён.
func (r *Run) Duration() time.Duration {
	if r.StartedAt == nil || r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(*r.StartedAt)
}

// MarkRunning переводит run в статус RUNNING.
func (r *Run) MarkRunning() {
	now := time.Now()
	r.Status = RunStatusRunning
	r.StartedAt = &now
}

// MarkCompleted переводит run в статус COMPLETED.
func (r *Run) MarkCompleted() {
	now := time.Now()
	r.Status = RunStatusCompleted
	r.FinishedAt = &now
}

// MarkAborted переводит run в статус ABORTED с указанием упавшего узла.
func (r *Run) MarkAborted(nodeID, errMsg string) {
	now := time.Now()
	r.Status = RunStatusAborted
	r.FinishedAt = &now
	r.FailedNodeID = nodeID
	r.Error = errMsg
}
