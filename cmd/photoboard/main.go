package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"photoboard/internal/api"
	"photoboard/internal/board"
	"photoboard/internal/config"
	"photoboard/internal/logger"
	"photoboard/internal/telemetry"
	"photoboard/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photoboard",
		Short: "Browse and collect images on photo boards",
		Long: `photoboard is a terminal client for a photo board backend.
Pick a board, add image URLs to it, fetch tags for images and save
new boards and images in one batch.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log, err := logger.OpenFile(cfg.Logger.File, logger.Config{
		Format: cfg.Logger.Format,
		Level:  logger.ParseLevel(cfg.Logger.Level),
	})
	if err != nil {
		return err
	}
	defer log.Close()

	tp, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		// Tracing is optional; keep going without it.
		log.WithError(err).Warn("telemetry disabled")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("telemetry shutdown")
		}
	}()

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout,
		api.WithTracer(tp.Tracer()),
		api.WithLogger(log),
	)
	log.Info("starting", "api", cfg.API.BaseURL, "tracing", tp.Enabled())

	model := ui.NewAppModel(client, board.NewView(), log).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "photoboard: %v\n", err)
		os.Exit(1)
	}
}
