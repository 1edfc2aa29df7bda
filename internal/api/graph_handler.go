package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shaiso/Docflow/internal/domain"
	"github.com/shaiso/Docflow/internal/engine"
)

// ListGraphs возвращает список сохранённых графов.
// GET /api/v1/graphs
func (h *Handler) ListGraphs(w http.ResponseWriter, r *http.Request) {
	graphs, err := h.graphRepo.List(r.Context())
	if err != nil {
		InternalError(w, h.logger, err)
		return
	}

	responses := make([]GraphResponse, len(graphs))
	for i, g := range graphs {
		responses[i] = GraphFromDomain(g)
	}

	List(w, responses, len(responses))
}

// CreateGraph сохраняет новый граф.
// POST /api/v1/graphs
//
// Перед сохранением граф проходит структурную валидацию целиком
// (нет изолированных узлов, есть document_input и т.д.).
func (h *Handler) CreateGraph(w http.ResponseWriter, r *http.Request) {
	var req SaveGraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	if req.Name == "" {
		BadRequest(w, "name is required")
		return
	}

	if err := engine.Validate(req.Nodes, req.Edges); err != nil {
		InvalidGraph(w, err.Error())
		return
	}

	graph := &domain.Graph{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Nodes:       req.Nodes,
		Edges:       req.Edges,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.graphRepo.Create(r.Context(), graph); err != nil {
		InternalError(w, h.logger, err)
		return
	}

	Created(w, GraphFromDomain(*graph))
}

// GetGraph возвращает граф по ID.
// GET /api/v1/graphs/{id}
func (h *Handler) GetGraph(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	graph, err := h.graphRepo.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, "graph not found") {
		return
	}

	Success(w, GraphFromDomain(*graph))
}

// UpdateGraph обновляет граф целиком.
// PUT /api/v1/graphs/{id}
func (h *Handler) UpdateGraph(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req SaveGraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	if req.Name == "" {
		BadRequest(w, "name is required")
		return
	}

	if err := engine.Validate(req.Nodes, req.Edges); err != nil {
		InvalidGraph(w, err.Error())
		return
	}

	graph, err := h.graphRepo.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, "graph not found") {
		return
	}

	graph.Name = req.Name
	graph.Description = req.Description
	graph.Tags = req.Tags
	graph.Nodes = req.Nodes
	graph.Edges = req.Edges

	if err := h.graphRepo.Update(r.Context(), graph); err != nil {
		HandleRepoError(w, h.logger, err, "graph not found")
		return
	}

	Success(w, GraphFromDomain(*graph))
}

// DeleteGraph удаляет граф.
// DELETE /api/v1/graphs/{id}
func (h *Handler) DeleteGraph(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	err := h.graphRepo.Delete(r.Context(), id)
	if HandleRepoError(w, h.logger, err, "graph not found") {
		return
	}

	NoContent(w)
}

// ValidateGraph проверяет структурные инварианты графа без сохранения.
// POST /api/v1/graphs/validate
func (h *Handler) ValidateGraph(w http.ResponseWriter, r *http.Request) {
	var req ValidateGraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body: "+err.Error())
		return
	}

	resp := ValidateGraphResponse{Valid: true}
	if err := engine.Validate(req.Nodes, req.Edges); err != nil {
		resp.Valid = false
		resp.Error = err.Error()
	}

	Success(w, resp)
}

// CheckEdge проверяет, можно ли добавить ребро в сохранённый граф.
// POST /api/v1/graphs/{id}/edges/check
//
// UI обязан вызывать эту проверку до фиксации нарисованного пользователем
// соединения: отвергнутое ребро не меняет граф.
func (h *Handler) CheckEdge(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req CheckEdgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body: "+err.Error())
		return
	}
	if req.Source == "" || req.Target == "" {
		BadRequest(w, "source and target are required")
		return
	}

	graph, err := h.graphRepo.GetByID(r.Context(), id)
	if HandleRepoError(w, h.logger, err, "graph not found") {
		return
	}

	store, err := engine.Load(graph)
	if err != nil {
		InvalidGraph(w, err.Error())
		return
	}

	resp := CheckEdgeResponse{Allowed: true}
	if err := store.AddEdge(req.Source, req.Target); err != nil {
		resp.Allowed = false
		resp.Reason = err.Error()
	}

	Success(w, resp)
}

// parseID извлекает UUID из path-параметра {id}.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid graph id")
		return uuid.Nil, false
	}
	return id, true
}
