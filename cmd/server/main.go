// Package main is the entry point for the tool hub service.
//
//	@title						Tool Hub API
//	@version					1.0.0
//	@description				A service exposing callable tools: Google Flights search via SerpAPI, Taiwan weather forecasts, and dice rolling.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/shkao/mcp-hub/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/shkao/mcp-hub/docs"

	toolhttp "github.com/shkao/mcp-hub/internal/adapter/http"
	"github.com/shkao/mcp-hub/internal/adapter/http/middleware"
	"github.com/shkao/mcp-hub/internal/adapter/provider/cwa"
	"github.com/shkao/mcp-hub/internal/adapter/provider/serpapi"
	"github.com/shkao/mcp-hub/internal/config"
	"github.com/shkao/mcp-hub/internal/domain"
	"github.com/shkao/mcp-hub/internal/infrastructure/logger"
	"github.com/shkao/mcp-hub/internal/tool"
	"github.com/shkao/mcp-hub/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	log := logger.New(logCfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	setupRoutes(e, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires providers, tools, and HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	httpClient := &http.Client{Timeout: cfg.Provider.HTTPTimeout}

	flightClient := serpapi.NewClient(
		serpapi.WithBaseURL(cfg.Provider.SerpAPIBaseURL),
		serpapi.WithHTTPClient(httpClient),
	)
	weatherClient := cwa.NewClient(
		cwa.WithBaseURL(cfg.Provider.CWABaseURL),
		cwa.WithHTTPClient(httpClient),
	)

	registry := domain.NewToolRegistry()
	registry.Register(tool.NewFlightSearchTool(flightClient, cfg.Provider.DefaultCurrency))
	registry.Register(tool.NewWeatherForecastTool(weatherClient))
	registry.Register(tool.NewDiceRollTool())

	invoker := usecase.NewToolInvoker(registry, nil)

	handler := toolhttp.NewToolHandler(invoker)
	toolhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
