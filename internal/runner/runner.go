package runner

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shaiso/Docflow/internal/domain"
	"github.com/shaiso/Docflow/internal/engine"
	"github.com/shaiso/Docflow/internal/executor"
	"github.com/shaiso/Docflow/internal/mq"
)

// Controller выполняет граф обработки.
//
// Машина состояний: Idle → Running → (Completed | Aborted).
// Узлы выполняются строго последовательно в топологическом порядке:
// узел i+1 не начинается, пока не завершился побочный эффект узла i,
// потому что i+1 может зависеть от результата i. Первая ошибка
// немедленно прерывает run; частичные результаты остаются в Result
// Store (не откатываются), чтобы диагностика могла показать,
// до какого места дошло выполнение.
//
// Controller рассчитан на один run за раз: повторный RunFlow ждёт
// завершения текущего. Повторный запуск после прерывания начинается
// с начала порядка и перезаписывает результаты уже выполненных узлов.
type Controller struct {
	store    *engine.Store
	results  *Results
	registry *executor.Registry

	// publisher публикует события run'а; nil — события не публикуются.
	publisher *mq.Publisher

	logger *slog.Logger

	// mu сериализует runs: Result Store и Graph Store —
	// single-writer-at-a-time.
	mu sync.Mutex

	status   domain.RunStatus
	statusMu sync.RWMutex
}

// Config — конфигурация Controller.
type Config struct {
	// Store — графовое хранилище (read-only во время run'а).
	Store *engine.Store

	// Registry — реестр executor'ов по типу узла.
	Registry *executor.Registry

	// Publisher — публикация событий run'а (опционально).
	Publisher *mq.Publisher

	// Logger — логгер (default: slog.Default()).
	Logger *slog.Logger
}

// New создаёт новый Controller со свежим Result Store.
func New(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		store:     cfg.Store,
		results:   NewResults(),
		registry:  cfg.Registry,
		publisher: cfg.Publisher,
		logger:    logger,
		status:    domain.RunStatusIdle,
	}
}

// Store возвращает графовое хранилище контроллера.
func (c *Controller) Store() *engine.Store {
	return c.store
}

// Results возвращает Result Store контроллера.
func (c *Controller) Results() *Results {
	return c.results
}

// Status возвращает текущий статус выполнения.
func (c *Controller) Status() domain.RunStatus {
	c.statusMu.RLock()
	defer c.statusMu.RUnlock()
	return c.status
}

func (c *Controller) setStatus(s domain.RunStatus) {
	c.statusMu.Lock()
	c.status = s
	c.statusMu.Unlock()
}

// ClearGraph очищает граф вместе с Result Store.
//
// Result Store переживает отдельные runs, но не очистку графа.
func (c *Controller) ClearGraph() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Clear()
	c.results.Clear()
	c.setStatus(domain.RunStatusIdle)
}

// RunFlow выполняет один прогон графа.
//
// Последовательность: структурная валидация → топологический порядок →
// для каждого узла по порядку: слияние input'а из результатов
// предшественников, выполнение executor'а, запись результата.
//
// Возвращает run с финальным статусом. При прерывании ошибка —
// *NodeError с ID и именем упавшего узла; ошибки планировщика
// (цикл в загруженном графе) и валидации возвращаются как есть.
func (c *Controller) RunFlow(ctx context.Context, graphID uuid.UUID) (*domain.Run, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	run := domain.NewRun(graphID)
	logger := c.logger.With("run_id", run.ID)

	nodes := c.store.Nodes()
	edges := c.store.Edges()

	if err := engine.Validate(nodes, edges); err != nil {
		return c.abort(ctx, logger, run, failedNodeID(err), err)
	}

	order, err := engine.Order(nodes, edges)
	if err != nil {
		// Планировщик обнаружил цикл: граф мог быть загружен из внешнего
		// хранилища, минуя проверку при добавлении рёбер.
		return c.abort(ctx, logger, run, "", err)
	}

	run.MarkRunning()
	c.setStatus(domain.RunStatusRunning)
	c.publishRunStarted(ctx, run, len(order))

	logger.Info("run started", "graph_id", graphID, "nodes", len(order))

	for i := range order {
		node := &order[i]

		// Точка отмены — между узлами: побочный эффект узла атомарен.
		select {
		case <-ctx.Done():
			return c.abort(ctx, logger, run, node.ID, ctx.Err())
		default:
		}

		input := MergeInputs(node.ID, edges, c.results)

		exec, err := c.registry.Get(node.Kind)
		if err != nil {
			return c.abort(ctx, logger, run, node.ID, &NodeError{NodeID: node.ID, Label: node.Label, Err: err})
		}

		output, err := exec.Execute(ctx, node, input)
		if err != nil {
			nodeErr := &NodeError{NodeID: node.ID, Label: node.Label, Err: err}
			return c.abort(ctx, logger, run, node.ID, nodeErr)
		}

		c.results.Set(node.ID, output)
		c.publishNodeCompleted(ctx, run, node)

		logger.Debug("node completed", "node_id", node.ID, "kind", node.Kind)
	}

	run.MarkCompleted()
	c.setStatus(domain.RunStatusCompleted)
	c.publishRunCompleted(ctx, run)

	logger.Info("run completed", "duration", run.Duration())

	return run, nil
}

// abort финализирует прерванный run.
func (c *Controller) abort(ctx context.Context, logger *slog.Logger, run *domain.Run, nodeID string, err error) (*domain.Run, error) {
	run.MarkAborted(nodeID, err.Error())
	c.setStatus(domain.RunStatusAborted)
	c.publishRunAborted(ctx, run)

	logger.Warn("run aborted", "node_id", nodeID, "error", err)

	return run, err
}

// failedNodeID извлекает ID узла из ошибки валидации, если он есть.
func failedNodeID(err error) string {
	var vErr *engine.ValidationError
	if errors.As(err, &vErr) {
		return vErr.NodeID
	}
	return ""
}

// --- Публикация событий (publisher может быть nil) ---

func (c *Controller) publishRunStarted(ctx context.Context, run *domain.Run, nodes int) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishRunStarted(ctx, run.ID, run.GraphID, nodes); err != nil {
		c.logger.Warn("failed to publish run.started", "run_id", run.ID, "error", err)
	}
}

func (c *Controller) publishNodeCompleted(ctx context.Context, run *domain.Run, node *domain.Node) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishNodeCompleted(ctx, run.ID, node.ID, string(node.Kind)); err != nil {
		c.logger.Warn("failed to publish node.completed", "run_id", run.ID, "error", err)
	}
}

func (c *Controller) publishRunCompleted(ctx context.Context, run *domain.Run) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishRunCompleted(ctx, run.ID, run.Duration().Milliseconds()); err != nil {
		c.logger.Warn("failed to publish run.completed", "run_id", run.ID, "error", err)
	}
}

func (c *Controller) publishRunAborted(ctx context.Context, run *domain.Run) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishRunAborted(ctx, run.ID, run.FailedNodeID, run.Error); err != nil {
		c.logger.Warn("failed to publish run.aborted", "run_id", run.ID, "error", err)
	}
}
