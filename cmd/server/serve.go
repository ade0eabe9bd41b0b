package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vedic-backend/internal/api"
	"vedic-backend/internal/ephemeris"
	"vedic-backend/internal/places"
	"vedic-backend/internal/service"
)

func newGeocoder(path string) *places.Geocoder {
	cities, err := places.LoadCities(path)
	if err != nil {
		logger.Warn("city list unavailable, place lookup returns no results",
			zap.String("file", path), zap.Error(err))
		return places.NewGeocoder(nil)
	}
	logger.Info("loaded city list", zap.String("file", path), zap.Int("cities", len(cities)))
	return places.NewGeocoder(cities)
}

func newChartService() *service.ChartService {
	eph := ephemeris.NewAdapter(cfg.EphemerisPath)
	logger.Info("ephemeris ready", zap.String("precision", eph.Precision()))
	return service.NewChartService(eph, logger)
}

func runServe(cmd *cobra.Command, args []string) error {
	placeSvc := places.NewService(newGeocoder(cfg.CitiesFile), cfg.PlacesLimit, cfg.PlacesCacheTTL, logger)
	handler := api.NewHandler(newChartService(), placeSvc, places.LongitudeResolver{}, cfg, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.NewRouter(handler, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(cfg.PlacesCacheTTL)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				remaining := placeSvc.Cache().Purge()
				logger.Debug("purged place cache", zap.Int("remaining", remaining))
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.Strings("allowed_origins", cfg.AllowedOrigins))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
