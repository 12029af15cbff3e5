package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"rider/cmd"
	httpadapter "rider/internal/adapters/in/http"
	"rider/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("no .env file loaded: %v", err)
	}

	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.Configure(configs.LogLevel)
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = startWebServer(ctx, app, configs.HTTPPort); err != nil {
		log.Errorf("web server: %v", err)
	}
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		BackendBaseURL:      os.Getenv("BACKEND_BASE_URL"),
		BackendToken:        os.Getenv("BACKEND_TOKEN"),
		BackendTimeout:      time.Duration(envInt("BACKEND_TIMEOUT_SECONDS", 10)) * time.Second,
		RiderActorID:        envInt("RIDER_ACTOR_ID", 0),
		LogLevel:            envOr("LOG_LEVEL", "info"),
		WorklistRefreshSpec: envOr("WORKLIST_REFRESH_SPEC", "*/15 * * * * *"),
		ViewIdleTTL:         time.Duration(envInt("VIEW_IDLE_TTL_SECONDS", 1800)) * time.Second,
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int64) int64 {
	raw := envOr(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("%s must be an integer: %v", key, err)
	}
	return n
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	e, err := httpadapter.NewRouter(app.CreateServer())
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
