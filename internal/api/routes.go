package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		Logging(h.logger),
	)

	// Graphs
	mux.Handle("GET /api/v1/graphs", chain(http.HandlerFunc(h.ListGraphs)))
	mux.Handle("POST /api/v1/graphs", chain(http.HandlerFunc(h.CreateGraph)))
	mux.Handle("GET /api/v1/graphs/{id}", chain(http.HandlerFunc(h.GetGraph)))
	mux.Handle("PUT /api/v1/graphs/{id}", chain(http.HandlerFunc(h.UpdateGraph)))
	mux.Handle("DELETE /api/v1/graphs/{id}", chain(http.HandlerFunc(h.DeleteGraph)))

	// Валидация графа перед сохранением
	mux.Handle("POST /api/v1/graphs/validate", chain(http.HandlerFunc(h.ValidateGraph)))

	// Проверка ребра перед фиксацией соединения в редакторе
	mux.Handle("POST /api/v1/graphs/{id}/edges/check", chain(http.HandlerFunc(h.CheckEdge)))

	// Запуск графа
	mux.Handle("POST /api/v1/graphs/{id}/run", chain(http.HandlerFunc(h.RunGraph)))
}
