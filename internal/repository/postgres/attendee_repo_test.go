package postgres

import (
	"context"
	"testing"
	"time"

	"confkit/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var attendeeCols = []string{
	"id", "event_id", "email", "first_name", "last_name",
	"company", "job_title", "phone", "created_at", "updated_at",
}

func TestAttendeeRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO attendees`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("att-1"))

		repo := NewAttendeeRepository(db)
		a := &domain.Attendee{
			EventID:   "ev-1",
			Email:     "ada@example.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Create(ctx, a))
		assert.Equal(t, "att-1", a.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO attendees`).
			WillReturnError(&pq.Error{Code: "23505"})

		repo := NewAttendeeRepository(db)
		a := &domain.Attendee{EventID: "ev-1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
		require.ErrorIs(t, repo.Create(ctx, a), domain.ErrDuplicateEmail)
	})
}

func TestAttendeeRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM attendees`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT id, event_id, email, first_name, last_name`).
		WithArgs("ev-1", 20, 0).
		WillReturnRows(sqlmock.NewRows(attendeeCols).
			AddRow("att-1", "ev-1", "ada@example.com", "Ada", "Lovelace", "Analytical Engines", nil, nil, ts, ts))

	repo := NewAttendeeRepository(db)
	attendees, total, err := repo.ListByEventID(ctx, "ev-1", domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 42, total)
	require.Len(t, attendees, 1)
	require.NotNil(t, attendees[0].Company)
	assert.Equal(t, "Analytical Engines", *attendees[0].Company)
	assert.Nil(t, attendees[0].Phone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendeeRepository_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM attendees WHERE id`).
		WithArgs("att-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewAttendeeRepository(db)
	require.ErrorIs(t, repo.Delete(ctx, "att-missing"), domain.ErrNotFound)
}
