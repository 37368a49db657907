package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-directory/api"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				opts.cfg.Server.Port = port
				if err := opts.cfg.Validate(); err != nil {
					return err
				}
			}
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides server.port)")
	return cmd
}

func runServe(ctx context.Context, opts *rootOptions) error {
	eng, err := opts.engine()
	if err != nil {
		return err
	}

	router := api.NewRouter(eng, api.RouterOptions{
		Mode:          opts.cfg.Server.Mode,
		AllowedOrigin: opts.cfg.Server.AllowedOrigin,
		Logger:        slog.Default(),
	})

	srv := &http.Server{
		Addr:              opts.cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", srv.Addr, "mode", opts.cfg.Server.Mode)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
