package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/condense/internal/httpapi"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, *cfgPath)
			if err != nil {
				return err
			}
			defer a.logger.Zap().Sync()

			gin.SetMode(gin.ReleaseMode)
			h := httpapi.NewHandler(a.processor, a.renderer, a.synthesizer, a.logger, a.cfg.Server.MaxUploadBytes)
			srv := &http.Server{
				Addr:              a.cfg.Server.Addr,
				Handler:           httpapi.NewRouter(h),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info(ctx, "HTTP API listening on %s", a.cfg.Server.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case <-ctx.Done():
				a.logger.Info(context.Background(), "Shutdown signal received")
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			a.logger.Info(shutdownCtx, "HTTP API stopped")
			return nil
		},
	}
}
