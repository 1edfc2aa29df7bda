package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shaiso/Docflow/internal/mq"
)

// NewEventsCmd создаёт команду наблюдения за потоком событий run'ов.
//
// Подключается напрямую к RabbitMQ (минуя API) и печатает события
// из выбранной очереди до прерывания по Ctrl+C.
func NewEventsCmd(outputFn func() *Output) *cobra.Command {
	var (
		mqURL string
		queue string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Tail run events from the message broker",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Служебные логи соединения не должны мешать выводу событий
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			conn, err := mq.NewConnection(mqURL, logger)
			if err != nil {
				return fmt.Errorf("failed to connect to broker: %w", err)
			}
			defer conn.Close()

			if err := mq.SetupTopology(ctx, conn); err != nil {
				return fmt.Errorf("failed to setup topology: %w", err)
			}

			consumer := mq.NewConsumer(conn, logger, mq.ConsumerConfig{
				Queue: queue,
				Handler: func(ctx context.Context, d *mq.Delivery) error {
					printEvent(out, d.Event)
					return nil
				},
			})

			out.Success(fmt.Sprintf("Listening on queue %s (Ctrl+C to stop)", queue))

			if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mqURL, "mq-url", mq.DefaultURL(), "RabbitMQ connection URL")
	cmd.Flags().StringVar(&queue, "queue", string(mq.QueueRunEvents), "Queue to consume (events.runs or events.nodes)")

	return cmd
}

// printEvent печатает одно событие: строка в табличном режиме, объект в JSON.
func printEvent(out *Output, event mq.Event) {
	if out.JSONMode() {
		out.JSON(event)
		return
	}

	payload, _ := json.Marshal(event.Payload)
	out.Line(fmt.Sprintf("%s  %-15s  %s",
		event.Timestamp.Format("15:04:05"),
		event.Type,
		string(payload),
	))
}
