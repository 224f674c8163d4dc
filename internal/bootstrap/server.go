package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Domenick1991/skypath/api"
	"github.com/Domenick1991/skypath/config"
	"github.com/Domenick1991/skypath/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// Run starts the HTTP server and blocks until context is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase) error {
	srv := newServer(cfg, flightSvc)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "address", cfg.HTTP.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
		slog.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServer(cfg *config.Config, flightSvc flights.FlightUseCase) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           newHandler(cfg, flightSvc),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func newHandler(cfg *config.Config, flightSvc flights.FlightUseCase) http.Handler {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{api.RequestIDHeader},
	})

	return corsHandler.Handler(api.NewRouter(flightSvc))
}
