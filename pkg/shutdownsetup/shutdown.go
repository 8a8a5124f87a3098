package shutdownsetup

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localconnect/pkg/logger"
)

// SetupGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// HTTP server with a bounded shutdown window.
func SetupGracefulShutdown(server *http.Server, appLogger *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	appLogger.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Graceful shutdown failed, forcing close", "error", err)
		if err := server.Close(); err != nil {
			appLogger.Error("Forced close failed", "error", err)
		}
		return
	}

	appLogger.Info("Server stopped gracefully")
}
