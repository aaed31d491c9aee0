// Package services contains the authentication service's business logic:
// registration, credential validation, and creator-scoped user management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/dbx"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/server/models"
	"github.com/dmitrijs2005/userhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userhub/internal/server/repositories/users"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. Fixed; changing it only affects new
// hashes, existing ones keep the cost they were created with.
const hashCost = 10

// Patch carries the optional fields of an update request. Password, when
// present, is plaintext and gets re-hashed here before touching storage.
type Patch struct {
	Email    *string
	Password *string
	Name     *string
}

// UserService provides user-related operations:
//   - Register / CreateByUser: create records (without / with a creator)
//   - Validate: check a credential pair for login
//   - FindAll / FindByCreator / FindByEmail / FindByID: reads
//   - Update / Delete: creator-scoped mutations
//
// Every returned record is sanitized; the password hash stays inside this
// package.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "user_service"),
	}
}

// Register creates a self-registered user; the stored record has no
// creator, so it is not manageable through the update/delete path.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	s.logger.Info(ctx, "registering user", "email", email)

	user, err := s.createUser(ctx, s.repomanager.Users(s.db), email, password, name, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// CreateByUser creates a user on behalf of creatorID, who becomes the
// record's owner for update/delete. The creator lookup and the insert share
// one transaction, so a creator deleted mid-request cannot gain a record.
func (s *UserService) CreateByUser(ctx context.Context, email, password, name, creatorID string) (*models.User, error) {
	s.logger.Info(ctx, "creating user", "email", email, "creator_id", creatorID)

	if _, err := uuid.Parse(creatorID); err != nil {
		return nil, common.ErrorValidation
	}

	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if _, err := repo.GetByID(ctx, creatorID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error checking creator: %w", err)
		}

		var createErr error
		user, createErr = s.createUser(ctx, repo, email, password, name, &creatorID)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user created", "user_id", user.ID, "creator_id", creatorID)
	return user, nil
}

func (s *UserService) createUser(ctx context.Context, repo users.Repository, email, password, name string, creatorID *string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        normalizeEmail(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
		CreatedBy:    creatorID,
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			return nil, common.ErrorEmailExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created.Sanitized(), nil
}

// Validate checks a credential pair. An unknown email returns (nil, nil)
// without a hash comparison; a wrong password returns (nil, nil) after the
// bcrypt compare. Callers cannot distinguish the two.
func (s *UserService) Validate(ctx context.Context, email, password string) (*models.User, error) {
	s.logger.Info(ctx, "validating credentials", "email", email)

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}

	return user.Sanitized(), nil
}

// FindAll returns every record, most recent first.
func (s *UserService) FindAll(ctx context.Context) ([]*models.User, error) {
	s.logger.Info(ctx, "listing all users")

	list, err := s.repomanager.Users(s.db).ListAll(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return sanitizeAll(list), nil
}

// FindByCreator returns the records created by creatorID, most recent first.
func (s *UserService) FindByCreator(ctx context.Context, creatorID string) ([]*models.User, error) {
	s.logger.Info(ctx, "listing users by creator", "creator_id", creatorID)

	if _, err := uuid.Parse(creatorID); err != nil {
		return []*models.User{}, nil
	}

	list, err := s.repomanager.Users(s.db).ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return sanitizeAll(list), nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user.Sanitized(), nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user.Sanitized(), nil
}

// Update applies the patch to the record with the given id when creatorID
// owns it. A patched password is re-hashed, a patched email re-normalized.
func (s *UserService) Update(ctx context.Context, id string, patch Patch, creatorID string) (*models.User, error) {
	s.logger.Info(ctx, "updating user", "user_id", id, "creator_id", creatorID)

	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	if _, err := uuid.Parse(creatorID); err != nil {
		return nil, common.ErrorNotFound
	}

	repoPatch := users.Patch{Name: patch.Name}

	if patch.Email != nil {
		normalized := normalizeEmail(*patch.Email)
		repoPatch.Email = &normalized
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), hashCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		hashed := string(hash)
		repoPatch.PasswordHash = &hashed
	}

	user, err := s.repomanager.Users(s.db).Update(ctx, id, repoPatch, creatorID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorEmailExists) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user updated", "user_id", user.ID)
	return user.Sanitized(), nil
}

// Delete removes the record with the given id when creatorID owns it.
func (s *UserService) Delete(ctx context.Context, id string, creatorID string) error {
	s.logger.Info(ctx, "deleting user", "user_id", id, "creator_id", creatorID)

	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	if _, err := uuid.Parse(creatorID); err != nil {
		return common.ErrorNotFound
	}

	if err := s.repomanager.Users(s.db).Delete(ctx, id, creatorID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "user deleted", "user_id", id)
	return nil
}

// Ping reports whether the backing database is reachable.
func (s *UserService) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeAll(list []*models.User) []*models.User {
	result := make([]*models.User, 0, len(list))
	for _, u := range list {
		result = append(result, u.Sanitized())
	}
	return result
}
