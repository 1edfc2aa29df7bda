package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shaiso/Docflow/internal/domain"
)

// Graph DTOs

// SaveGraphRequest — запрос на создание/обновление графа.
// Узлы и рёбра сохраняются verbatim.
type SaveGraphRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Nodes       []domain.Node `json:"nodes"`
	Edges       []domain.Edge `json:"edges"`
}

// GraphResponse — ответ с графом.
type GraphResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Nodes       []domain.Node `json:"nodes"`
	Edges       []domain.Edge `json:"edges"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// GraphFromDomain конвертирует domain.Graph в GraphResponse.
func GraphFromDomain(g domain.Graph) GraphResponse {
	return GraphResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Tags:        g.Tags,
		Nodes:       g.Nodes,
		Edges:       g.Edges,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// Validation DTOs

// ValidateGraphRequest — запрос на валидацию графа.
type ValidateGraphRequest struct {
	Nodes []domain.Node `json:"nodes"`
	Edges []domain.Edge `json:"edges"`
}

// ValidateGraphResponse — результат валидации.
type ValidateGraphResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Edge check DTOs

// CheckEdgeRequest — запрос на проверку ребра перед фиксацией.
type CheckEdgeRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// CheckEdgeResponse — результат проверки ребра.
type CheckEdgeResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Run DTOs

// RunResponse — результат прогона графа.
type RunResponse struct {
	ID           uuid.UUID                 `json:"id"`
	GraphID      uuid.UUID                 `json:"graph_id"`
	Status       domain.RunStatus          `json:"status"`
	StartedAt    *time.Time                `json:"started_at,omitempty"`
	FinishedAt   *time.Time                `json:"finished_at,omitempty"`
	FailedNodeID string                    `json:"failed_node_id,omitempty"`
	Error        string                    `json:"error,omitempty"`
	Results      map[string]map[string]any `json:"results"`
}

// RunFromDomain конвертирует run и снимок Result Store в RunResponse.
func RunFromDomain(r *domain.Run, results map[string]map[string]any) RunResponse {
	return RunResponse{
		ID:           r.ID,
		GraphID:      r.GraphID,
		Status:       r.Status,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
		FailedNodeID: r.FailedNodeID,
		Error:        r.Error,
		Results:      results,
	}
}
