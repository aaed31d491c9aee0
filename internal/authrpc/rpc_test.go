package authrpc

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// stubServer answers a fixed user and records what it was asked.
type stubServer struct {
	lastRegister *RegisterRequest
	user         *User
}

func (s *stubServer) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	s.lastRegister = req
	return s.user, nil
}

func (s *stubServer) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	return s.user, nil
}

func (s *stubServer) FindAll(ctx context.Context, req *FindAllRequest) (*UserList, error) {
	return &UserList{Users: []*User{s.user}}, nil
}

func (s *stubServer) FindByCreator(ctx context.Context, req *FindByCreatorRequest) (*UserList, error) {
	return &UserList{}, nil
}

func (s *stubServer) FindByEmail(ctx context.Context, req *FindByEmailRequest) (*UserResponse, error) {
	return &UserResponse{}, nil
}

func (s *stubServer) FindByID(ctx context.Context, req *FindByIDRequest) (*UserResponse, error) {
	return &UserResponse{User: s.user}, nil
}

func (s *stubServer) UpdateUser(ctx context.Context, req *UpdateUserRequest) (*User, error) {
	return nil, status.Error(codes.NotFound, "not found")
}

func (s *stubServer) DeleteUser(ctx context.Context, req *DeleteUserRequest) (*DeleteUserResponse, error) {
	return &DeleteUserResponse{Deleted: true}, nil
}

func (s *stubServer) ValidateUser(ctx context.Context, req *ValidateRequest) (*UserResponse, error) {
	return &UserResponse{}, nil
}

func (s *stubServer) HealthCheck(ctx context.Context, req *HealthCheckRequest) (*HealthCheckResponse, error) {
	return &HealthCheckResponse{Status: "ok"}, nil
}

func startStub(t *testing.T, impl AuthServer) (AuthClient, func()) {
	t.Helper()

	listen, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen error: %v", err)
	}

	srv := grpc.NewServer()
	RegisterAuthServer(srv, impl)
	go func() { _ = srv.Serve(listen) }()

	conn, err := grpc.NewClient(listen.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		srv.Stop()
		t.Fatalf("dial error: %v", err)
	}

	return NewAuthClient(conn), func() {
		_ = conn.Close()
		srv.Stop()
	}
}

func TestLoopback_Register(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubServer{user: &User{ID: "u-1", Email: "a@b.com", Name: "A B", CreatedAt: createdAt, UpdatedAt: createdAt}}
	client, stop := startStub(t, stub)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := client.Register(ctx, &RegisterRequest{Email: "a@b.com", Password: "Password123", Name: "A B"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if got.ID != "u-1" || got.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.CreatedBy != nil {
		t.Fatalf("expected nil creator, got %v", *got.CreatedBy)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("createdAt mismatch: got %v", got.CreatedAt)
	}
	if stub.lastRegister == nil || stub.lastRegister.Password != "Password123" {
		t.Fatalf("request did not round-trip: %+v", stub.lastRegister)
	}
}

func TestLoopback_StatusCodesPropagate(t *testing.T) {
	stub := &stubServer{user: &User{ID: "u-1"}}
	client, stop := startStub(t, stub)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := client.UpdateUser(ctx, &UpdateUserRequest{UserID: "nope", CreatorID: "u-2"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestLoopback_NilUserResponse(t *testing.T) {
	stub := &stubServer{user: &User{ID: "u-1"}}
	client, stop := startStub(t, stub)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := client.ValidateUser(ctx, &ValidateRequest{Email: "a@b.com", Password: "wrong"})
	if err != nil {
		t.Fatalf("ValidateUser error: %v", err)
	}
	if resp.User != nil {
		t.Fatalf("expected nil user, got %+v", resp.User)
	}
}
