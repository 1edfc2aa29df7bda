package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRunCmd создаёт команду запуска графа.
func NewRunCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "run GRAPH_ID",
		Short: "Run a graph and wait for the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			run, err := client.RunGraph(args[0])
			if err != nil {
				return err
			}

			if out.JSONMode() {
				out.JSON(run)
				if run.Status == "ABORTED" {
					return fmt.Errorf("run aborted at node %s", run.FailedNodeID)
				}
				return nil
			}

			out.KV([][2]string{
				{"Run", run.ID},
				{"Graph", run.GraphID},
				{"Status", run.Status},
				{"Started", run.StartedAt},
				{"Finished", run.FinishedAt},
			})

			// Частичные результаты показываются и для прерванного run'а
			headers := []string{"NODE", "KEYS"}
			rows := make([][]string, 0, len(run.Results))
			for nodeID, result := range run.Results {
				rows = append(rows, []string{nodeID, fmt.Sprintf("%d", len(result))})
			}
			out.Table(headers, rows)

			if run.Status == "ABORTED" {
				return fmt.Errorf("run aborted at node %s: %s", run.FailedNodeID, run.Error)
			}

			out.Success("Run completed")
			return nil
		},
	}
}
