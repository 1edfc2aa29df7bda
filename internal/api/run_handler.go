package api

import (
	"net/http"

	"github.com/shaiso/Docflow/internal/engine"
	"github.com/shaiso/Docflow/internal/runner"
)

// RunGraph выполняет сохранённый граф синхронно и возвращает итог прогона.
// POST /api/v1/graphs/{id}/run
//
// Прерванный run — штатный исход, а не ошибка API: ответ 200 со статусом
// ABORTED, упавшим узлом и частичными результатами.
func (h *Handler) RunGraph(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
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

	ctrl := runner.New(runner.Config{
		Store:     store,
		Registry:  h.registry,
		Publisher: h.publisher,
		Logger:    h.logger,
	})

	run, err := ctrl.RunFlow(r.Context(), graph.ID)
	if err != nil {
		h.logger.Warn("run aborted",
			"graph_id", graph.ID,
			"run_id", run.ID,
			"failed_node_id", run.FailedNodeID,
			"error", err,
		)
	}

	Success(w, RunFromDomain(run, ctrl.Results().Snapshot()))
}
