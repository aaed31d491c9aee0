// Package models holds the persistence-level records of the authentication
// service.
package models

import "time"

// User is a stored user record. PasswordHash never leaves the service
// layer: every outward path goes through Sanitized first.
//
// CreatedBy is nil for self-registered users and otherwise holds the id of
// the authenticated user who created the record. It is set once at creation
// and never updated; it is the ownership key for update/delete.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy of the record with the password hash stripped.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.PasswordHash = ""
	return &c
}
