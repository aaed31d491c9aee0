package authrpc

import (
	"context"

	"google.golang.org/grpc"
)

// AuthClient is the client-side contract of the authentication service,
// mirroring AuthServer method for method.
type AuthClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*User, error)
	CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*User, error)
	FindAll(ctx context.Context, in *FindAllRequest, opts ...grpc.CallOption) (*UserList, error)
	FindByCreator(ctx context.Context, in *FindByCreatorRequest, opts ...grpc.CallOption) (*UserList, error)
	FindByEmail(ctx context.Context, in *FindByEmailRequest, opts ...grpc.CallOption) (*UserResponse, error)
	FindByID(ctx context.Context, in *FindByIDRequest, opts ...grpc.CallOption) (*UserResponse, error)
	UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error)
	DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error)
	ValidateUser(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*UserResponse, error)
	HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error)
}

type authClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthClient returns stubs bound to cc. Every call forces the JSON
// content subtype so the connection needs no special dial options.
func NewAuthClient(cc grpc.ClientConnInterface) AuthClient {
	return &authClient{cc: cc}
}

func (c *authClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...)
}

func (c *authClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.invoke(ctx, "Register", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.invoke(ctx, "CreateUser", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) FindAll(ctx context.Context, in *FindAllRequest, opts ...grpc.CallOption) (*UserList, error) {
	out := new(UserList)
	if err := c.invoke(ctx, "FindAll", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) FindByCreator(ctx context.Context, in *FindByCreatorRequest, opts ...grpc.CallOption) (*UserList, error) {
	out := new(UserList)
	if err := c.invoke(ctx, "FindByCreator", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) FindByEmail(ctx context.Context, in *FindByEmailRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	out := new(UserResponse)
	if err := c.invoke(ctx, "FindByEmail", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) FindByID(ctx context.Context, in *FindByIDRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	out := new(UserResponse)
	if err := c.invoke(ctx, "FindByID", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	if err := c.invoke(ctx, "UpdateUser", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error) {
	out := new(DeleteUserResponse)
	if err := c.invoke(ctx, "DeleteUser", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) ValidateUser(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	out := new(UserResponse)
	if err := c.invoke(ctx, "ValidateUser", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) HealthCheck(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error) {
	out := new(HealthCheckResponse)
	if err := c.invoke(ctx, "HealthCheck", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
