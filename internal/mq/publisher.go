package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EventType — тип события в потоке.
type EventType string

// Типы событий.
const (
	EventTypeRunStarted    EventType = "run.started"
	EventTypeRunCompleted  EventType = "run.completed"
	EventTypeRunAborted    EventType = "run.aborted"
	EventTypeNodeCompleted EventType = "node.completed"
)

// Publisher публикует события run'ов в RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Event — событие для публикации.
type Event struct {
	// ID — уникальный идентификатор события.
	ID string `json:"id"`

	// Type — тип события.
	Type EventType `json:"type"`

	// Payload — полезная нагрузка.
	Payload any `json:"payload"`

	// Timestamp — время создания.
	Timestamp time.Time `json:"timestamp"`
}

// RunStartedPayload — payload события run.started.
type RunStartedPayload struct {
	RunID   uuid.UUID `json:"run_id"`
	GraphID uuid.UUID `json:"graph_id"`
	Nodes   int       `json:"nodes"`
}

// RunCompletedPayload — payload события run.completed.
type RunCompletedPayload struct {
	RunID      uuid.UUID `json:"run_id"`
	DurationMs int64     `json:"duration_ms"`
}

// RunAbortedPayload — payload события run.aborted.
type RunAbortedPayload struct {
	RunID        uuid.UUID `json:"run_id"`
	FailedNodeID string    `json:"failed_node_id,omitempty"`
	Error        string    `json:"error"`
}

// NodeCompletedPayload — payload события node.completed.
type NodeCompletedPayload struct {
	RunID  uuid.UUID `json:"run_id"`
	NodeID string    `json:"node_id"`
	Kind   string    `json:"kind"`
}

// Publish публикует событие с указанным routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey RoutingKey, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(ExchangeEvents), // exchange
			string(routingKey),     // routing key
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    event.ID,
				Timestamp:    event.Timestamp,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish %s: %w", routingKey, err)
		}

		p.logger.Debug("published event",
			"routing_key", routingKey,
			"event_id", event.ID,
			"type", event.Type,
		)

		return nil
	})
}

// PublishRunStarted публикует событие о начале run'а.
func (p *Publisher) PublishRunStarted(ctx context.Context, runID, graphID uuid.UUID, nodes int) error {
	return p.Publish(ctx, RoutingKeyRunStarted, newEvent(EventTypeRunStarted,
		RunStartedPayload{RunID: runID, GraphID: graphID, Nodes: nodes}))
}

// PublishRunCompleted публикует событие об успешном завершении run'а.
func (p *Publisher) PublishRunCompleted(ctx context.Context, runID uuid.UUID, durationMs int64) error {
	return p.Publish(ctx, RoutingKeyRunCompleted, newEvent(EventTypeRunCompleted,
		RunCompletedPayload{RunID: runID, DurationMs: durationMs}))
}

// PublishRunAborted публикует событие о прерванном run'е.
func (p *Publisher) PublishRunAborted(ctx context.Context, runID uuid.UUID, failedNodeID, errMsg string) error {
	return p.Publish(ctx, RoutingKeyRunAborted, newEvent(EventTypeRunAborted,
		RunAbortedPayload{RunID: runID, FailedNodeID: failedNodeID, Error: errMsg}))
}

// PublishNodeCompleted публикует событие о выполненном узле.
func (p *Publisher) PublishNodeCompleted(ctx context.Context, runID uuid.UUID, nodeID, kind string) error {
	return p.Publish(ctx, RoutingKeyNodeCompleted, newEvent(EventTypeNodeCompleted,
		NodeCompletedPayload{RunID: runID, NodeID: nodeID, Kind: kind}))
}

// newEvent создаёт событие с новым ID и текущим временем.
func newEvent(eventType EventType, payload any) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}
