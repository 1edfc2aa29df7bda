package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange — тип для имени обменника.
type Exchange string

// Queue — тип для имени очереди.
type Queue string

// RoutingKey — тип для ключа маршрутизации.
type RoutingKey string

// ExchangeEvents — topic-обменник всех событий Docflow.
const ExchangeEvents Exchange = "docflow.events"

// Queues — имена очередей.
const (
	// QueueRunEvents — события жизненного цикла run'ов (run.*).
	QueueRunEvents Queue = "events.runs"

	// QueueNodeEvents — события выполнения узлов (node.*).
	QueueNodeEvents Queue = "events.nodes"
)

// Routing keys.
const (
	RoutingKeyRunStarted    RoutingKey = "run.started"
	RoutingKeyRunCompleted  RoutingKey = "run.completed"
	RoutingKeyRunAborted    RoutingKey = "run.aborted"
	RoutingKeyNodeCompleted RoutingKey = "node.completed"
)

// SetupTopology объявляет exchange, очереди и привязки.
//
// Операции идемпотентны: повторный вызов на существующей топологии
// безопасен.
func SetupTopology(ctx context.Context, conn *Connection) error {
	return conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.ExchangeDeclare(
			string(ExchangeEvents), // name
			"topic",                // type
			true,                   // durable
			false,                  // auto-deleted
			false,                  // internal
			false,                  // no-wait
			nil,                    // arguments
		)
		if err != nil {
			return fmt.Errorf("declare exchange %s: %w", ExchangeEvents, err)
		}

		bindings := []struct {
			queue   Queue
			pattern string
		}{
			{QueueRunEvents, "run.*"},
			{QueueNodeEvents, "node.*"},
		}

		for _, b := range bindings {
			if _, err := ch.QueueDeclare(
				string(b.queue), // name
				true,            // durable
				false,           // delete when unused
				false,           // exclusive
				false,           // no-wait
				nil,             // arguments
			); err != nil {
				return fmt.Errorf("declare queue %s: %w", b.queue, err)
			}

			if err := ch.QueueBind(
				string(b.queue),        // queue name
				b.pattern,              // routing key pattern
				string(ExchangeEvents), // exchange
				false,                  // no-wait
				nil,                    // arguments
			); err != nil {
				return fmt.Errorf("bind queue %s: %w", b.queue, err)
			}
		}

		return nil
	})
}

// TopologyInfo возвращает описание топологии для логирования.
func TopologyInfo() string {
	return `
  Docflow RabbitMQ Topology:

    docflow.events (topic)
    ├── events.runs  [binding: run.*]
    │       run.started / run.completed / run.aborted
    └── events.nodes [binding: node.*]
            node.completed
  `
}
