package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/codeacademypro/contactapi/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var columns = []string{"id", "nombre", "correo", "telefono", "mensaje", "acepta_terminos", "fecha_creacion"}

func TestContactRepository_Create(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewContactRepository(db)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	contact := &models.Contact{
		Name:          "Ana",
		Email:         "ana@example.com",
		Phone:         "5512345678",
		Message:       "Hola, quiero información",
		TermsAccepted: true,
		CreatedAt:     created,
	}

	mock.ExpectQuery(`INSERT INTO contactos`).
		WithArgs("Ana", "ana@example.com", "5512345678", "Hola, quiero información", true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fecha_creacion"}).AddRow(int64(7), created))

	require.NoError(t, repo.Create(context.Background(), contact))
	assert.Equal(t, int64(7), contact.ID)
	assert.Equal(t, created, contact.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_CreateError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(`INSERT INTO contactos`).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), &models.Contact{Name: "Ana"})
	assert.ErrorContains(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_List(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewContactRepository(db)

	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM contactos ORDER BY fecha_creacion DESC, id DESC`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(2), "Beto", "beto@example.com", "5512345678", "Mensaje de Beto", true, t2).
			AddRow(int64(1), "Ana", "ana@example.com", "5587654321", "Mensaje de Ana", true, t1))

	contacts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, int64(2), contacts[0].ID)
	assert.Equal(t, int64(1), contacts[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ListEmpty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM contactos`).WillReturnRows(sqlmock.NewRows(columns))

	contacts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestContactRepository_GetByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewContactRepository(db)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM contactos WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(3), "Ana", "ana@example.com", "5512345678", "Hola, quiero información", true, created))

	contact, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", contact.Email)
	assert.True(t, contact.TermsAccepted)
}

func TestContactRepository_GetByIDNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM contactos WHERE id = \$1`).
		WithArgs(int64(999999)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactRepository_GetByIDError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM contactos WHERE id = \$1`).
		WillReturnError(errors.New("timeout"))

	_, err := repo.GetByID(context.Background(), 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
