package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"restaurant/internal/config"
	"restaurant/internal/menu"
	"restaurant/internal/storage"
	"restaurant/internal/storage/memory"
	"restaurant/internal/validate"
)

// App represents the application
type App struct {
	config *config.Config
	logger *zap.Logger
	ledger storage.Ledger
	menu   *menu.Menu
	in     io.Reader
}

// New creates and initializes a new application instance reading from
// stdin and writing to stdout.
func New() (*App, error) {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO is New with explicit terminal streams
func NewWithIO(in io.Reader, out io.Writer) (*App, error) {
	// Load .env file if it exists
	envErr := godotenv.Load()

	// Load configuration from environment variables
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	app := &App{config: cfg, in: in}

	if err := app.initLogger(); err != nil {
		return nil, err
	}
	if envErr != nil {
		app.logger.Debug("No .env file found, using system environment variables")
	}

	app.logger.Info("Starting restaurant reservation system")

	app.initLedger()
	app.initMenu(out)

	return app, nil
}

// initLogger builds the zap logger from configuration
func (a *App) initLogger() error {
	zapConfig := zap.NewProductionConfig()
	if a.config.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(a.config.LogLevel)
	zapConfig.Encoding = a.config.LogEncoding
	zapConfig.OutputPaths = []string{a.config.LogOutput}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.logger = logger
	return nil
}

// initLedger creates the process-lifetime reservation ledger
func (a *App) initLedger() {
	a.ledger = memory.NewLedger()
	a.logger.Debug("Using in-memory ledger")
}

// initMenu creates the text menu driver
func (a *App) initMenu(out io.Writer) {
	validator := validate.New(validate.RealClock{})
	a.menu = menu.New(a.ledger, validator, out, a.logger)
}

// Run starts the menu and blocks until the user exits, input ends, or a
// shutdown signal arrives.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// Run menu in background so a signal can interrupt a blocked read
	errChan := make(chan error, 1)
	go func() {
		errChan <- a.menu.Run(ctx, a.in)
	}()

	var runErr error
	select {
	case sig := <-sigChan:
		a.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		if err != nil {
			a.logger.Error("Menu stopped with error", zap.Error(err))
			runErr = fmt.Errorf("menu: %w", err)
		}
	}

	a.Shutdown()
	return runErr
}

// Shutdown flushes buffered log entries
func (a *App) Shutdown() {
	a.logger.Info("Shutdown complete")
	// Sync fails on terminals that do not support fsync; nothing to recover.
	_ = a.logger.Sync()
}
