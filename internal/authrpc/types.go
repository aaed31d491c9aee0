// Package authrpc defines the wire contract between the gateway and the
// authentication service: the message types, the JSON codec they travel
// with, the gRPC service descriptor, and the client stubs.
//
// The transport is plain unary gRPC over TCP; the payloads are JSON rather
// than protobuf, matching the message-per-operation shape of the service
// (see codec.go). The method set mirrors the auth service surface 1:1.
package authrpc

import "time"

// User is the outward-facing representation of a user record. It carries no
// password material in any form; sanitization happens before a record is
// placed into this type.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedBy *string   `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterRequest creates a self-registered user; the stored record has no
// creator.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// CreateUserRequest creates a user on behalf of an authenticated caller;
// the caller becomes the record's creator.
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	CreatorID string `json:"creatorId"`
}

type FindAllRequest struct{}

type FindByCreatorRequest struct {
	CreatorID string `json:"creatorId"`
}

type FindByEmailRequest struct {
	Email string `json:"email"`
}

type FindByIDRequest struct {
	UserID string `json:"userId"`
}

// UserList is the response to the list operations, most recent first.
type UserList struct {
	Users []*User `json:"users"`
}

// UserResponse wraps a single record; User is nil when no matching record
// exists.
type UserResponse struct {
	User *User `json:"user"`
}

// UpdateUserRequest patches a record. Nil fields are left untouched. The
// update only applies when the record's creator equals CreatorID.
type UpdateUserRequest struct {
	UserID    string  `json:"userId"`
	CreatorID string  `json:"creatorId"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	Name      *string `json:"name,omitempty"`
}

type DeleteUserRequest struct {
	UserID    string `json:"userId"`
	CreatorID string `json:"creatorId"`
}

type DeleteUserResponse struct {
	Deleted bool `json:"deleted"`
}

// ValidateRequest checks a credential pair. The response User is nil for
// both an unknown email and a wrong password; callers cannot tell which
// half of the pair was wrong.
type ValidateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type HealthCheckRequest struct{}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
