package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"webinarhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	user := domain.NewUser("user-1", "alice@example.com", "Alice", "hash", "salt", createdAt, createdAt)

	tests := []struct {
		name        string
		mock        func(mock sqlmock.Sqlmock)
		wantErr     bool
		isDuplicate bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users \(id, email, name, password_hash, password_salt, created_at, updated_at\)`).
					WithArgs("user-1", "alice@example.com", "Alice", "hash", "salt", createdAt, createdAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate email",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr:     true,
			isDuplicate: true,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			err = repo.Create(ctx, user)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isDuplicate {
					require.True(t, errors.Is(err, domain.ErrDuplicateEmail))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		email      string
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.User
		wantErr    bool
		isNotFound bool
	}{
		{
			name:  "success normalizes email",
			email: " Alice@Example.com ",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, email, name, password_hash, password_salt, created_at, updated_at`).
					WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "password_salt", "created_at", "updated_at"}).
						AddRow("user-1", "alice@example.com", "Alice", "hash", "salt", createdAt, createdAt))
			},
			want: domain.NewUser("user-1", "alice@example.com", "Alice", "hash", "salt", createdAt, createdAt),
		},
		{
			name:  "not found",
			email: "missing@example.com",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, email, name, password_hash, password_salt, created_at, updated_at`).
					WithArgs("missing@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.GetByEmail(ctx, tt.email)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrUserNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, email, name, password_hash, password_salt, created_at, updated_at`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "password_salt", "created_at", "updated_at"}).
			AddRow("user-1", "alice@example.com", "Alice", "hash", "salt", createdAt, createdAt))

	repo := NewUserRepository(db)
	got, err := repo.GetByID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}
