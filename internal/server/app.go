// Package server initializes and runs the TaskKeeper server: it wires the
// configured store, the auth and task services, and the HTTP endpoint, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mbelyaev/taskkeeper/internal/logging"
	"github.com/mbelyaev/taskkeeper/internal/server/config"
	"github.com/mbelyaev/taskkeeper/internal/server/httpapi"
	"github.com/mbelyaev/taskkeeper/internal/server/repositories/repomanager"
	"github.com/mbelyaev/taskkeeper/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *services.AuthService
	taskService *services.TaskService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var db *sql.DB
	var m repomanager.RepositoryManager

	if cfg.UseMemoryStore {
		logger.Warn(ctx, "Using in-memory store, all data is lost on shutdown")
		m = repomanager.NewMemoryRepositoryManager()
	} else {
		var err error
		db, err = sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}

		m = repomanager.NewPostgresRepositoryManager()

		if err := m.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("db migration error: %w", err)
		}
	}

	authService, err := services.NewAuthService(db, m, cfg)
	if err != nil {
		return nil, fmt.Errorf("auth service init error: %w", err)
	}

	taskService := services.NewTaskService(db, m)

	return &App{
		config:      cfg,
		logger:      logger,
		authService: authService,
		taskService: taskService,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger, app.authService, app.taskService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
