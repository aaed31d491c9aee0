package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	userID    = "4be966d1-45bf-4a9c-9c95-9c5d83a23de4"
	creatorID = "9a8f0ed9-6b38-4f0c-8f04-29e7ac9f3a11"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func userRows(ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_by", "created_at", "updated_at"})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, id+"@example.com", "hash", "Name", nil, now, now)
	}
	return rows
}

func TestCreate_Success(t *testing.T) {
	db, mock := newMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("john@example.com", "hash", "John", nil).
		WillReturnRows(userRows(userID))

	r := NewPostgresRepository(db)
	created, err := r.Create(context.Background(), &models.User{
		Email: "john@example.com", PasswordHash: "hash", Name: "John",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID != userID {
		t.Errorf("unexpected id %q", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	db, mock := newMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	r := NewPostgresRepository(db)
	_, err := r.Create(context.Background(), &models.User{Email: "john@example.com"})
	if !errors.Is(err, common.ErrorEmailExists) {
		t.Fatalf("expected ErrorEmailExists, got %v", err)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock := newMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, name, created_by, created_at, updated_at FROM users")).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	r := NewPostgresRepository(db)
	_, err := r.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestListByCreator(t *testing.T) {
	db, mock := newMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE created_by = $1")).
		WithArgs(creatorID).
		WillReturnRows(userRows(userID, creatorID))

	r := NewPostgresRepository(db)
	list, err := r.ListByCreator(context.Background(), creatorID)
	if err != nil {
		t.Fatalf("ListByCreator error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list))
	}
}

func TestUpdate_OwnershipMiss(t *testing.T) {
	db, mock := newMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WithArgs(userID, creatorID, nil, nil, nil).
		WillReturnError(sql.ErrNoRows)

	r := NewPostgresRepository(db)
	_, err := r.Update(context.Background(), userID, Patch{}, creatorID)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	db, mock := newMock(t)
	defer db.Close()

	newName := "Johnny"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WithArgs(userID, creatorID, nil, nil, &newName).
		WillReturnRows(userRows(userID))

	r := NewPostgresRepository(db)
	user, err := r.Update(context.Background(), userID, Patch{Name: &newName}, creatorID)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if user.ID != userID {
		t.Errorf("unexpected id %q", user.ID)
	}
}

func TestUpdate_EmailConflict(t *testing.T) {
	db, mock := newMock(t)
	defer db.Close()

	newEmail := "taken@example.com"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	r := NewPostgresRepository(db)
	_, err := r.Update(context.Background(), userID, Patch{Email: &newEmail}, creatorID)
	if !errors.Is(err, common.ErrorEmailExists) {
		t.Fatalf("expected ErrorEmailExists, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	db, mock := newMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WithArgs(userID, creatorID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := NewPostgresRepository(db)
	if err := r.Delete(context.Background(), userID, creatorID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_OwnershipMiss(t *testing.T) {
	db, mock := newMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WithArgs(userID, creatorID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	r := NewPostgresRepository(db)
	err := r.Delete(context.Background(), userID, creatorID)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
