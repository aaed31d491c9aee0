// Package gateway initializes and runs the HTTP gateway: it dials the
// authentication service, builds the route table, and serves HTTP until
// the process is signalled to stop.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/userhub/internal/gateway/authclient"
	"github.com/dmitrijs2005/userhub/internal/gateway/config"
	"github.com/dmitrijs2005/userhub/internal/gateway/httpapi"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	config *config.Config
	logger logging.Logger
	auth   *authclient.Client
	server *http.Server
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSON()

	auth, err := authclient.New(c.AuthServiceAddr)
	if err != nil {
		return nil, fmt.Errorf("auth service dial error: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics := httpapi.NewMetrics(registry)

	api := httpapi.NewAPI(auth, logger, []byte(c.SecretKey), c.TokenValidityDuration, metrics)

	server := &http.Server{
		Addr:    c.EndpointAddrHTTP,
		Handler: api.Router(registry),
	}

	return &App{config: c, logger: logger, auth: auth, server: server}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	app.logger.Info(ctx, "Starting http server", "address", app.config.EndpointAddrHTTP)

	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "http shutdown error", "error", err.Error())
	}

	if err := app.auth.Close(); err != nil {
		app.logger.Error(ctx, "auth client close error", "error", err.Error())
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting gateway...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	<-ctx.Done()
	app.shutdown(ctx)

	wg.Wait()
}
