package users

import (
	"context"

	"github.com/dmitrijs2005/userhub/internal/server/models"
)

// Patch carries the mutable fields of an update. Nil fields are left
// untouched. PasswordHash, when set, is already hashed by the caller.
type Patch struct {
	Email        *string
	PasswordHash *string
	Name         *string
}

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*models.User, error)
	Update(ctx context.Context, id string, patch Patch, creatorID string) (*models.User, error)
	Delete(ctx context.Context, id string, creatorID string) error
}
