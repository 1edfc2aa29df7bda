package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shaiso/Docflow/internal/domain"
)

// GraphRepo — репозиторий сохранённых графов.
//
// Узлы и рёбра хранятся verbatim как JSONB: репозиторий не интерпретирует
// payload за пределами формы Node/Edge.
type GraphRepo struct {
	pool *pgxpool.Pool
}

// NewGraphRepo создаёт новый GraphRepo.
func NewGraphRepo(pool *pgxpool.Pool) *GraphRepo {
	return &GraphRepo{pool: pool}
}

// Create сохраняет новый граф.
func (r *GraphRepo) Create(ctx context.Context, graph *domain.Graph) error {
	nodesJSON, edgesJSON, err := marshalGraph(graph)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO graphs (id, name, description, tags, nodes, edges, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err = r.pool.QueryRow(ctx, query,
		graph.ID,
		graph.Name,
		graph.Description,
		graph.Tags,
		nodesJSON,
		edgesJSON,
	).Scan(&graph.CreatedAt, &graph.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert graph: %w", err)
	}
	return nil
}

// GetByID возвращает граф по ID.
func (r *GraphRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Graph, error) {
	query := `
		SELECT id, name, description, tags, nodes, edges, created_at, updated_at
		FROM graphs
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	graph, err := scanGraph(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get graph by id: %w", err)
	}
	return graph, nil
}

// List возвращает все сохранённые графы, новые первыми.
func (r *GraphRepo) List(ctx context.Context) ([]domain.Graph, error) {
	query := `
		SELECT id, name, description, tags, nodes, edges, created_at, updated_at
		FROM graphs
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list graphs: %w", err)
	}
	defer rows.Close()

	var graphs []domain.Graph
	for rows.Next() {
		graph, err := scanGraph(rows)
		if err != nil {
			return nil, fmt.Errorf("scan graph: %w", err)
		}
		graphs = append(graphs, *graph)
	}
	return graphs, rows.Err()
}

// Update обновляет граф целиком (имя, описание, теги, узлы, рёбра).
func (r *GraphRepo) Update(ctx context.Context, graph *domain.Graph) error {
	nodesJSON, edgesJSON, err := marshalGraph(graph)
	if err != nil {
		return err
	}

	query := `
		UPDATE graphs
		SET name = $2, description = $3, tags = $4, nodes = $5, edges = $6, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		graph.ID,
		graph.Name,
		graph.Description,
		graph.Tags,
		nodesJSON,
		edgesJSON,
	)
	if err != nil {
		return fmt.Errorf("update graph: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет граф.
func (r *GraphRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM graphs WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete graph: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// marshalGraph сериализует узлы и рёбра графа в JSON.
func marshalGraph(graph *domain.Graph) (nodesJSON, edgesJSON []byte, err error) {
	nodesJSON, err = json.Marshal(graph.Nodes)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal nodes: %w", err)
	}
	edgesJSON, err = json.Marshal(graph.Edges)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal edges: %w", err)
	}
	return nodesJSON, edgesJSON, nil
}

// scanGraph читает граф из строки результата.
func scanGraph(row pgx.Row) (*domain.Graph, error) {
	var graph domain.Graph
	var nodesJSON, edgesJSON []byte

	err := row.Scan(
		&graph.ID,
		&graph.Name,
		&graph.Description,
		&graph.Tags,
		&nodesJSON,
		&edgesJSON,
		&graph.CreatedAt,
		&graph.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(nodesJSON, &graph.Nodes); err != nil {
		return nil, fmt.Errorf("unmarshal nodes: %w", err)
	}
	if err := json.Unmarshal(edgesJSON, &graph.Edges); err != nil {
		return nil, fmt.Errorf("unmarshal edges: %w", err)
	}

	return &graph, nil
}
