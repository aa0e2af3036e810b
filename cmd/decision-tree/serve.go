package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Simba256/Decision-Tree/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		Long: `Serve loads the program catalog, career graph, and profile, then
exposes the projection, affordability, and calibration engines as a
JSON API.

Examples:
  decision-tree serve
  decision-tree serve --listen :9090`,
		RunE: runServe,
	}

	cmd.Flags().String("listen", ":8080", "listen address")
	_ = vip.BindPFlag("listen_addr", cmd.Flags().Lookup("listen"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	programs, err := a.loadPrograms()
	if err != nil {
		return err
	}
	graph, err := a.loadGraph()
	if err != nil {
		return err
	}
	profile, err := a.loadProfile()
	if err != nil {
		return err
	}

	srv := server.NewServer(a.engine, programs, graph, profile, a.logger)
	httpServer := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	a.logger.Infof("listening on %s", a.cfg.ListenAddr)

	select {
	case <-cmd.Context().Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
