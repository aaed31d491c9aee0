// Package httpapi implements the public HTTP surface of the gateway: the
// registration and login endpoints, the creator-scoped user CRUD endpoints,
// health probes, and the Prometheus metrics endpoint.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userhub/internal/authrpc"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AuthService is the slice of the auth service client the handlers need.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*authrpc.User, error)
	Validate(ctx context.Context, email, password string) (*authrpc.User, error)
	FindAll(ctx context.Context) ([]*authrpc.User, error)
	FindByCreator(ctx context.Context, creatorID string) ([]*authrpc.User, error)
	FindByID(ctx context.Context, id string) (*authrpc.User, error)
	Create(ctx context.Context, email, password, name, creatorID string) (*authrpc.User, error)
	Update(ctx context.Context, id string, email, password, name *string, creatorID string) (*authrpc.User, error)
	Delete(ctx context.Context, id, creatorID string) error
	Ready(ctx context.Context) error
}

type API struct {
	auth     AuthService
	logger   logging.Logger
	secret   []byte
	validity time.Duration
	metrics  *Metrics
}

func NewAPI(auth AuthService, logger logging.Logger, secret []byte, validity time.Duration, metrics *Metrics) *API {
	return &API{
		auth:     auth,
		logger:   logger.With("module", "httpapi"),
		secret:   secret,
		validity: validity,
		metrics:  metrics,
	}
}

// Router builds the full route table with the middleware chain applied.
func (a *API) Router(gatherer prometheus.Gatherer) http.Handler {
	r := mux.NewRouter()

	r.Use(a.requestIDMiddleware)
	r.Use(a.loggingMiddleware)
	r.Use(a.metricsMiddleware)

	r.HandleFunc("/auth/register", a.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", a.handleLogin).Methods(http.MethodPost)
	r.Handle("/auth/users", a.requireAuth(http.HandlerFunc(a.handleListAllUsers))).Methods(http.MethodGet)

	r.Handle("/users", a.requireAuth(http.HandlerFunc(a.handleListUsers))).Methods(http.MethodGet)
	r.Handle("/users", a.requireAuth(http.HandlerFunc(a.handleCreateUser))).Methods(http.MethodPost)
	r.Handle("/users/{id}", a.requireAuth(http.HandlerFunc(a.handleGetUser))).Methods(http.MethodGet)
	r.Handle("/users/{id}", a.requireAuth(http.HandlerFunc(a.handleUpdateUser))).Methods(http.MethodPut)
	r.Handle("/users/{id}", a.requireAuth(http.HandlerFunc(a.handleDeleteUser))).Methods(http.MethodDelete)

	r.HandleFunc("/health", a.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", a.handleReady).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.NotFoundHandler = a.requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "Route not found")
	}))

	return r
}
