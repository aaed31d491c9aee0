// Package grpc exposes the authentication service over gRPC on TCP.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/userhub/internal/authrpc"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/server/models"
	"github.com/dmitrijs2005/userhub/internal/server/services"
	"google.golang.org/grpc"
)

// userSvc is the slice of services.UserService the handlers need.
type userSvc interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	CreateByUser(ctx context.Context, email, password, name, creatorID string) (*models.User, error)
	Validate(ctx context.Context, email, password string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByCreator(ctx context.Context, creatorID string) ([]*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, patch services.Patch, creatorID string) (*models.User, error)
	Delete(ctx context.Context, id string, creatorID string) error
	Ping(ctx context.Context) error
}

type GRPCServer struct {
	address string
	users   userSvc
	logger  logging.Logger
}

func NewGRPCServer(addr string, l logging.Logger, us userSvc) *GRPCServer {
	return &GRPCServer{
		address: addr,
		logger:  l.With("module", "grpc_server"),
		users:   us,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	authrpc.RegisterAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
