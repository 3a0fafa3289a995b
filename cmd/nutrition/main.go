// Command nutrition is the terminal client of the nutrition lookup tool.
// It talks to the backend at API_BASE_URL and logs to LOG_FILE.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guttosm/nutrition-lookup/config"
	"github.com/guttosm/nutrition-lookup/internal/app"
	"github.com/guttosm/nutrition-lookup/internal/tui"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "nutrition:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logFile, err := app.InitializeFileLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	client := app.InitializeClient(cfg)

	dispatcher := tui.NewDispatcher(cfg.Client.Timeout, tui.DefaultQueueSize)
	defer dispatcher.Stop()

	program := tui.NewProgram(client.Remote, dispatcher, client.Locale, tea.WithAltScreen(), tea.WithMouseCellMotion())

	log.Info().Str("backend", cfg.Client.APIBaseURL).Msg("Terminal client starting")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	log.Info().Msg("Terminal client stopped")
	return nil
}
