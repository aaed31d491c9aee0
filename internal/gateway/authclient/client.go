// Package authclient wraps the gRPC connection from the gateway to the
// authentication service and translates transport status codes back into
// the sentinel error taxonomy.
package authclient

import (
	"context"
	"time"

	"github.com/dmitrijs2005/userhub/internal/authrpc"
	"github.com/dmitrijs2005/userhub/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// readyTimeout bounds the readiness probe round trip to authd.
const readyTimeout = 5 * time.Second

type Client struct {
	conn *grpc.ClientConn
	rpc  authrpc.AuthClient
}

func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, rpc: authrpc.NewAuthClient(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// mapError is the inverse of the authd-side status mapping.
func (c *Client) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return common.ErrorInternal
	}
	switch st.Code() {
	case codes.AlreadyExists:
		return common.ErrorEmailExists
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unauthenticated:
		return common.ErrorUnauthorized
	case codes.InvalidArgument:
		return common.ErrorValidation
	default:
		return common.ErrorInternal
	}
}

func (c *Client) Register(ctx context.Context, email, password, name string) (*authrpc.User, error) {
	user, err := c.rpc.Register(ctx, &authrpc.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, c.mapError(err)
	}
	return user, nil
}

// Validate returns (nil, nil) for a credential pair the auth service
// rejected; the caller decides how to surface that.
func (c *Client) Validate(ctx context.Context, email, password string) (*authrpc.User, error) {
	resp, err := c.rpc.ValidateUser(ctx, &authrpc.ValidateRequest{Email: email, Password: password})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp.User, nil
}

func (c *Client) FindAll(ctx context.Context) ([]*authrpc.User, error) {
	resp, err := c.rpc.FindAll(ctx, &authrpc.FindAllRequest{})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp.Users, nil
}

func (c *Client) FindByCreator(ctx context.Context, creatorID string) ([]*authrpc.User, error) {
	resp, err := c.rpc.FindByCreator(ctx, &authrpc.FindByCreatorRequest{CreatorID: creatorID})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp.Users, nil
}

func (c *Client) FindByID(ctx context.Context, id string) (*authrpc.User, error) {
	resp, err := c.rpc.FindByID(ctx, &authrpc.FindByIDRequest{UserID: id})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp.User, nil
}

func (c *Client) Create(ctx context.Context, email, password, name, creatorID string) (*authrpc.User, error) {
	user, err := c.rpc.CreateUser(ctx, &authrpc.CreateUserRequest{Email: email, Password: password, Name: name, CreatorID: creatorID})
	if err != nil {
		return nil, c.mapError(err)
	}
	return user, nil
}

func (c *Client) Update(ctx context.Context, id string, email, password, name *string, creatorID string) (*authrpc.User, error) {
	user, err := c.rpc.UpdateUser(ctx, &authrpc.UpdateUserRequest{
		UserID:    id,
		CreatorID: creatorID,
		Email:     email,
		Password:  password,
		Name:      name,
	})
	if err != nil {
		return nil, c.mapError(err)
	}
	return user, nil
}

func (c *Client) Delete(ctx context.Context, id, creatorID string) error {
	if _, err := c.rpc.DeleteUser(ctx, &authrpc.DeleteUserRequest{UserID: id, CreatorID: creatorID}); err != nil {
		return c.mapError(err)
	}
	return nil
}

// Ready reports whether authd is reachable and its database is up.
func (c *Client) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	resp, err := c.rpc.HealthCheck(ctx, &authrpc.HealthCheckRequest{})
	if err != nil {
		return c.mapError(err)
	}
	if resp.Status != "ok" {
		return common.ErrorInternal
	}
	return nil
}
