package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestialmindworks/site-backend/models"
)

func TestContactMessageCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactMessageRepo(db)

	msg := &models.ContactMessage{
		ID:        uuid.New(),
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "Hello",
		CreatedAt: time.Now(),
	}
	returned := sqlmock.NewRows([]string{"id", "created_at"}).
		AddRow(msg.ID.String(), msg.CreatedAt)
	mock.ExpectQuery(`INSERT INTO "contact_messages"`).
		WillReturnRows(returned)

	err := repo.Create(msg)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactMessageFindAllNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactMessageRepo(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "message", "created_at"}).
		AddRow(uuid.NewString(), "Ada", "ada@example.com", "Hello", now).
		AddRow(uuid.NewString(), "Grace", "grace@example.com", "Hi", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT \* FROM "contact_messages" ORDER BY created_at DESC`).
		WillReturnRows(rows)

	messages, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Ada", messages[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactMessageCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactMessageRepo(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contact_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
