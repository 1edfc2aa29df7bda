// Docflow CLI — инструмент командной строки для управления
// графами обработки документов через HTTP API.
//
// Использование:
//
//	docflow [--api-url URL] [--json] <command> <subcommand> [flags]
//
// Команды:
//
//	graph   Управление графами
//	run     Запуск графа
//	events  Наблюдение за потоком событий run'ов
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Docflow/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var apiURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "docflow",
		Short:         "Docflow CLI — document flow graph tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *cli.Client { return cli.NewClient(apiURL) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewGraphCmd(clientFn, outputFn),
		cli.NewRunCmd(clientFn, outputFn),
		cli.NewEventsCmd(outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
