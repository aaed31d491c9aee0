package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userhub/internal/authrpc"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/server/models"
	"github.com/dmitrijs2005/userhub/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapError translates the sentinel taxonomy into gRPC status codes. The
// gateway client performs the inverse mapping.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrorEmailExists):
		return status.Error(codes.AlreadyExists, common.ErrorEmailExists.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, common.ErrorValidation.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toWire(u *models.User) *authrpc.User {
	if u == nil {
		return nil
	}
	return &authrpc.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedBy: u.CreatedBy,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toWireList(list []*models.User) *authrpc.UserList {
	users := make([]*authrpc.User, 0, len(list))
	for _, u := range list {
		users = append(users, toWire(u))
	}
	return &authrpc.UserList{Users: users}
}

func (s *GRPCServer) Register(ctx context.Context, req *authrpc.RegisterRequest) (*authrpc.User, error) {

	user, err := s.users.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, mapError(err)
	}

	return toWire(user), nil
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *authrpc.CreateUserRequest) (*authrpc.User, error) {

	user, err := s.users.CreateByUser(ctx, req.Email, req.Password, req.Name, req.CreatorID)
	if err != nil {
		return nil, mapError(err)
	}

	return toWire(user), nil
}

func (s *GRPCServer) FindAll(ctx context.Context, req *authrpc.FindAllRequest) (*authrpc.UserList, error) {

	list, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return toWireList(list), nil
}

func (s *GRPCServer) FindByCreator(ctx context.Context, req *authrpc.FindByCreatorRequest) (*authrpc.UserList, error) {

	list, err := s.users.FindByCreator(ctx, req.CreatorID)
	if err != nil {
		return nil, mapError(err)
	}

	return toWireList(list), nil
}

func (s *GRPCServer) FindByEmail(ctx context.Context, req *authrpc.FindByEmailRequest) (*authrpc.UserResponse, error) {

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, mapError(err)
	}

	return &authrpc.UserResponse{User: toWire(user)}, nil
}

func (s *GRPCServer) FindByID(ctx context.Context, req *authrpc.FindByIDRequest) (*authrpc.UserResponse, error) {

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, mapError(err)
	}

	return &authrpc.UserResponse{User: toWire(user)}, nil
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *authrpc.UpdateUserRequest) (*authrpc.User, error) {

	patch := services.Patch{Email: req.Email, Password: req.Password, Name: req.Name}

	user, err := s.users.Update(ctx, req.UserID, patch, req.CreatorID)
	if err != nil {
		return nil, mapError(err)
	}

	return toWire(user), nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *authrpc.DeleteUserRequest) (*authrpc.DeleteUserResponse, error) {

	if err := s.users.Delete(ctx, req.UserID, req.CreatorID); err != nil {
		return nil, mapError(err)
	}

	return &authrpc.DeleteUserResponse{Deleted: true}, nil
}

// ValidateUser answers a nil user for both an unknown email and a wrong
// password; only infrastructure failures surface as errors.
func (s *GRPCServer) ValidateUser(ctx context.Context, req *authrpc.ValidateRequest) (*authrpc.UserResponse, error) {

	user, err := s.users.Validate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, mapError(err)
	}

	return &authrpc.UserResponse{User: toWire(user)}, nil
}

func (s *GRPCServer) HealthCheck(ctx context.Context, req *authrpc.HealthCheckRequest) (*authrpc.HealthCheckResponse, error) {

	if err := s.users.Ping(ctx); err != nil {
		return &authrpc.HealthCheckResponse{Status: "degraded"}, nil
	}

	return &authrpc.HealthCheckResponse{Status: "ok"}, nil
}
