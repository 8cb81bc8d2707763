// Package server initializes and runs the ledger server: storage and
// migrations, the gRPC endpoint and the Prometheus metrics endpoint, with
// graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/server/config"
	"github.com/dmitrijs2005/spakiosk/internal/server/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/spakiosk/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	storage  *Storage
	registry *prometheus.Registry
	services *Services
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	st, err := OpenStorage(ctx, c)
	if err != nil {
		return nil, err
	}

	if err := st.Manager.RunMigrations(ctx, st.DB); err != nil {
		_ = st.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc, err := NewServices(st.DB, st.Manager, c, metrics.New(reg), logger)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &App{config: c, logger: logger, storage: st, registry: reg, services: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a signal arrives or one of the servers fails.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services.Coupons,
			app.services.Policy, app.services.Limits, app.config.ClaimsPerDay, app.config.SecretKey)
		return s.Run(ctx)
	})

	if app.config.MetricsAddr != "" {
		g.Go(func() error {
			return runMetricsServer(ctx, app.config.MetricsAddr, app.registry, app.logger)
		})
	}

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
	}

	if cerr := app.storage.Close(); cerr != nil {
		app.logger.Error(ctx, "error closing storage", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}

func runMetricsServer(ctx context.Context, addr string, g prometheus.Gatherer, logger logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(g))

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "metrics server shutdown", "error", err)
		}
	}()

	logger.Info(ctx, "Starting metrics server", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
