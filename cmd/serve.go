package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hkaya/timelineheat/internal/server"
)

var (
	serveHost string
	servePort string
	serveFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a generated heatmap for local preview",
	Long: `Serves an already-generated heatmap HTML file over HTTP so it can be
viewed in a browser without opening the file directly. Nothing is
regenerated; run "timelineheat generate" first.`,
	RunE: runServe,
}

func setupServeFlags() {
	flags := serveCmd.Flags()
	flags.StringVar(&serveHost, "host", cfg.Server.Host, "address to bind")
	flags.StringVar(&servePort, "port", cfg.Server.Port, "port to listen on")
	flags.StringVarP(&serveFile, "output", "o", cfg.Output.HTMLPath, "heatmap HTML file to serve")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := fmt.Sprintf("%s:%s", serveHost, servePort)
	srv := server.New(addr, serveFile, cfg.Env, appLogger)

	go func() {
		appLogger.Info("Preview server starting", "address", addr, "file", serveFile)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down preview server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		return err
	}

	appLogger.Info("Server stopped")
	return nil
}
