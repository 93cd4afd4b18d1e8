package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fxdelta/internal/adapters/httpclient"
	"fxdelta/internal/api"
	"fxdelta/internal/config"
	"fxdelta/internal/delta"
	"fxdelta/internal/delta/handler"
	httpserver "fxdelta/internal/platform/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const configPath = "config.yaml"

// Run wires the application components and serves HTTP until SIGINT/SIGTERM.
func Run() error {
	appCfg, err := config.Init(configPath)
	if err != nil {
		return err
	}
	setupLogger(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := NewRouter(appCfg)
	if err != nil {
		return err
	}

	logrus.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// NewRouter builds the full handler chain from configuration.
func NewRouter(appCfg *config.AppConfig) (*chi.Mux, error) {
	// Shared upstream HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	rateClient := httpclient.NewExchangeRateClient(baseHTTPClient, httpclient.Settings{
		BaseURL: appCfg.ExchangeRateAPI.BaseURL,
		APIKey:  appCfg.ExchangeRateAPI.APIKey,
	})

	deltaService := delta.NewService(delta.NewValidator(), rateClient)
	deltaHandler := handler.NewDeltaHandler(deltaService)

	opts := api.RouterOptions{AllowedOrigins: appCfg.CORS.AllowedOrigins}
	if rate := strings.TrimSpace(appCfg.RateLimit.Rate); rate != "" {
		l, err := api.NewLimiter(rate)
		if err != nil {
			logrus.WithError(err).WithField("rate", rate).Error("Invalid rate limit")
			return nil, err
		}
		opts.Limiter = l
		logrus.WithField("rate", rate).Info("✅ Rate limiter enabled")
	}
	return api.NewRouter(deltaHandler, opts), nil
}

func setupLogger(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}
