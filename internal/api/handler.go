package api

import (
	"log/slog"

	"github.com/shaiso/Docflow/internal/executor"
	"github.com/shaiso/Docflow/internal/mq"
	"github.com/shaiso/Docflow/internal/repo"
)

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	graphRepo *repo.GraphRepo
	registry  *executor.Registry
	publisher *mq.Publisher
	logger    *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	GraphRepo *repo.GraphRepo
	Registry  *executor.Registry

	// Publisher — публикация событий run'ов (опционально, может быть nil).
	Publisher *mq.Publisher

	Logger *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		graphRepo: cfg.GraphRepo,
		registry:  cfg.Registry,
		publisher: cfg.Publisher,
		logger:    cfg.Logger,
	}
}
