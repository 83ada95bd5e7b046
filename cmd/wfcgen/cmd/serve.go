package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crossplay/wfc/internal/api"
	"github.com/crossplay/wfc/internal/auth"
	"github.com/crossplay/wfc/internal/config"
	"github.com/crossplay/wfc/internal/realtime"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP and WebSocket",
	Long: `serve starts an HTTP server exposing session creation
(POST /api/sessions) and a per-session WebSocket (GET
/api/sessions/:id/ws) that a client drives with set/solve/stop
commands and listens to for grid snapshots.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	authService := auth.NewAuthService(cfg.JWTSecret)
	hub := realtime.NewHub()
	go hub.Run()

	router := api.NewRouter(cfg, hub, authService)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logf("server error: %v", err)
			os.Exit(1)
		}
	}()

	logf("server listening on %s", cfg.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
