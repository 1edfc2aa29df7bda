package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewGraphCmd создаёт группу команд для управления графами.
func NewGraphCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Manage flow graphs",
	}

	cmd.AddCommand(
		newGraphListCmd(clientFn, outputFn),
		newGraphShowCmd(clientFn, outputFn),
		newGraphCreateCmd(clientFn, outputFn),
		newGraphUpdateCmd(clientFn, outputFn),
		newGraphDeleteCmd(clientFn, outputFn),
		newGraphValidateCmd(clientFn, outputFn),
		newGraphCheckEdgeCmd(clientFn, outputFn),
	)

	return cmd
}

func newGraphListCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all graphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			graphs, err := client.ListGraphs()
			if err != nil {
				return err
			}

			headers := []string{"ID", "NAME", "NODES", "EDGES", "TAGS", "UPDATED"}
			rows := make([][]string, len(graphs))
			for i, g := range graphs {
				rows[i] = []string{
					g.ID,
					g.Name,
					strconv.Itoa(len(g.Nodes)),
					strconv.Itoa(len(g.Edges)),
					strings.Join(g.Tags, ","),
					g.UpdatedAt,
				}
			}

			out.Print(headers, rows, graphs)
			return nil
		},
	}
}

func newGraphShowCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show graph details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			graph, err := client.GetGraph(args[0])
			if err != nil {
				return err
			}

			if out.JSONMode() {
				out.JSON(graph)
				return nil
			}

			out.KV([][2]string{
				{"ID", graph.ID},
				{"Name", graph.Name},
				{"Description", graph.Description},
				{"Tags", strings.Join(graph.Tags, ",")},
				{"Created", graph.CreatedAt},
				{"Updated", graph.UpdatedAt},
			})

			headers := []string{"NODE", "KIND", "LABEL"}
			rows := make([][]string, len(graph.Nodes))
			for i, n := range graph.Nodes {
				rows[i] = []string{n.ID, n.Kind, n.Label}
			}
			out.Table(headers, rows)

			headers = []string{"SOURCE", "TARGET"}
			rows = make([][]string, len(graph.Edges))
			for i, e := range graph.Edges {
				rows[i] = []string{e.Source, e.Target}
			}
			out.Table(headers, rows)

			return nil
		},
	}
}

// readGraphFile читает JSON-описание графа из файла.
func readGraphFile(path string) (*SaveGraphRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}

	var req SaveGraphRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("graph file is not valid JSON: %w", err)
	}

	return &req, nil
}

func newGraphCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var graphFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a graph from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			req, err := readGraphFile(graphFile)
			if err != nil {
				return err
			}

			graph, err := client.CreateGraph(*req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Graph created: %s", graph.ID))
			out.Print(
				[]string{"ID", "NAME", "NODES", "EDGES"},
				[][]string{{graph.ID, graph.Name, strconv.Itoa(len(graph.Nodes)), strconv.Itoa(len(graph.Edges))}},
				graph,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&graphFile, "file", "", "Path to graph JSON file (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newGraphUpdateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var graphFile string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a graph with the contents of a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			req, err := readGraphFile(graphFile)
			if err != nil {
				return err
			}

			graph, err := client.UpdateGraph(args[0], *req)
			if err != nil {
				return err
			}

			out.Success("Graph updated")
			out.Print(
				[]string{"ID", "NAME", "NODES", "EDGES"},
				[][]string{{graph.ID, graph.Name, strconv.Itoa(len(graph.Nodes)), strconv.Itoa(len(graph.Edges))}},
				graph,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&graphFile, "file", "", "Path to graph JSON file (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newGraphDeleteCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			if err := client.DeleteGraph(args[0]); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Graph deleted: %s", args[0]))
			return nil
		},
	}
}

func newGraphValidateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var graphFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a graph JSON file without saving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			req, err := readGraphFile(graphFile)
			if err != nil {
				return err
			}

			resp, err := client.ValidateGraph(*req)
			if err != nil {
				return err
			}

			if out.JSONMode() {
				out.JSON(resp)
				return nil
			}

			if !resp.Valid {
				return fmt.Errorf("graph is invalid: %s", resp.Error)
			}

			out.Success("Graph is valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&graphFile, "file", "", "Path to graph JSON file (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newGraphCheckEdgeCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "check-edge GRAPH_ID SOURCE TARGET",
		Short: "Check whether an edge can be added without creating a cycle",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clientFn()
			out := outputFn()

			resp, err := client.CheckEdge(args[0], CheckEdgeRequest{
				Source: args[1],
				Target: args[2],
			})
			if err != nil {
				return err
			}

			if out.JSONMode() {
				out.JSON(resp)
				return nil
			}

			if !resp.Allowed {
				return fmt.Errorf("edge %s -> %s rejected: %s", args[1], args[2], resp.Reason)
			}

			out.Success(fmt.Sprintf("Edge %s -> %s is allowed", args[1], args[2]))
			return nil
		},
	}
}
