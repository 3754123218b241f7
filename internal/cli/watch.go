package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/condense/internal/config"
	"github.com/nguyentantai21042004/condense/internal/watcher"
)

func newWatchCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Summarize documents dropped into the input folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, *cfgPath)
			if err != nil {
				return err
			}
			defer a.logger.Zap().Sync()

			log := a.logger
			log.Info(ctx, "========================================")
			log.Info(ctx, "Document Summary Pipeline")
			log.Info(ctx, "========================================")
			log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
			log.Info(ctx, "Max Concurrent Processing: %d", a.cfg.Performance.MaxConcurrent)

			if err := ensureDirectories(a.cfg); err != nil {
				return fmt.Errorf("create directories: %w", err)
			}

			w, err := watcher.New(watcher.Options{
				Dir:           a.cfg.Paths.Input,
				MaxConcurrent: a.cfg.Performance.MaxConcurrent,
			}, a.processor.Process, log)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
			log.Info(ctx, "Output: %s", a.cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("watcher: %w", err)
			}

			log.Info(context.Background(), "Pipeline stopped")
			return nil
		},
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
