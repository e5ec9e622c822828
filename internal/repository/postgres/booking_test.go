package postgres

import (
	"context"
	"testing"
	"time"

	"gearshare-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingRowColumns = []string{
	"id", "start_date", "end_date", "status", "booker_id", "item_id",
	"u_id", "u_name", "u_email",
	"i_id", "i_name", "i_description", "i_available", "i_owner_id",
	"o_id", "o_name", "o_email",
}

func bookingRow(id int64, start, end time.Time, status domain.BookingStatus) *sqlmock.Rows {
	return sqlmock.NewRows(bookingRowColumns).AddRow(
		id, start, end, string(status), int64(2), int64(10),
		int64(2), "booker", "booker@example.com",
		int64(10), "drill", "18V", true, int64(1),
		int64(1), "owner", "owner@example.com",
	)
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(start, end, domain.BookingStatusWaiting, int64(2), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(100)))

	booking := &domain.Booking{Start: start, End: end, Status: domain.BookingStatusWaiting, BookerID: 2, ItemID: 10}
	require.NoError(t, repo.Create(context.Background(), booking))
	assert.Equal(t, int64(100), booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)

	mock.ExpectExec(`UPDATE bookings SET status`).
		WithArgs(domain.BookingStatusApproved, int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 100, domain.BookingStatusApproved))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByIDWithRelations(t *testing.T) {
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewBookingRepository(db)
		mock.ExpectQuery(`SELECT .+ FROM "bookings"`).
			WithArgs(int64(100)).
			WillReturnRows(bookingRow(100, start, end, domain.BookingStatusWaiting))

		booking, err := repo.GetByIDWithRelations(context.Background(), 100)
		require.NoError(t, err)
		assert.Equal(t, int64(100), booking.ID)
		assert.Equal(t, domain.BookingStatusWaiting, booking.Status)
		require.NotNil(t, booking.Booker)
		assert.Equal(t, "booker", booking.Booker.Name)
		require.NotNil(t, booking.Item)
		require.NotNil(t, booking.Item.Owner)
		assert.Equal(t, int64(1), booking.Item.Owner.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewBookingRepository(db)
		mock.ExpectQuery(`SELECT .+ FROM "bookings"`).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(bookingRowColumns))

		_, err = repo.GetByIDWithRelations(context.Background(), 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_ListByBooker(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start := now.Add(-48 * time.Hour)
	end := now.Add(-24 * time.Hour)

	t.Run("ALL filters by identity only", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewBookingRepository(db)
		mock.ExpectQuery(`SELECT .+ FROM "bookings".+ORDER BY "b"\."start_date" DESC`).
			WithArgs(int64(2)).
			WillReturnRows(bookingRow(100, start, end, domain.BookingStatusApproved))

		bookings, err := repo.ListByBooker(context.Background(), 2, domain.SearchStateAll, now)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, int64(100), bookings[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PAST adds a strict end bound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewBookingRepository(db)
		mock.ExpectQuery(`SELECT .+ FROM "bookings".+"b"\."end_date"`).
			WithArgs(int64(2), now).
			WillReturnRows(bookingRow(100, start, end, domain.BookingStatusApproved))

		bookings, err := repo.ListByBooker(context.Background(), 2, domain.SearchStatePast, now)
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("WAITING filters on status", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewBookingRepository(db)
		mock.ExpectQuery(`SELECT .+ FROM "bookings".+"b"\."status"`).
			WithArgs(int64(2), string(domain.BookingStatusWaiting)).
			WillReturnRows(sqlmock.NewRows(bookingRowColumns))

		bookings, err := repo.ListByBooker(context.Background(), 2, domain.SearchStateWaiting, now)
		require.NoError(t, err)
		assert.Empty(t, bookings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_ListByOwner(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)
	mock.ExpectQuery(`SELECT .+ FROM "bookings".+"i"\."owner_id"`).
		WithArgs(int64(1), now).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns))

	bookings, err := repo.ListByOwner(context.Background(), 1, domain.SearchStateFuture, now)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindByBookerAndItem(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	t.Run("any match is returned", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewBookingRepository(db)
		mock.ExpectQuery(`SELECT .+ FROM "bookings".+LIMIT`).
			WillReturnRows(bookingRow(100, start, end, domain.BookingStatusRejected))

		booking, err := repo.FindByBookerAndItem(context.Background(), 2, 10)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusRejected, booking.Status)
	})

	t.Run("no record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewBookingRepository(db)
		mock.ExpectQuery(`SELECT .+ FROM "bookings".+LIMIT`).
			WillReturnRows(sqlmock.NewRows(bookingRowColumns))

		_, err = repo.FindByBookerAndItem(context.Background(), 2, 10)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_ListWaitingWithRelations(t *testing.T) {
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)
	mock.ExpectQuery(`SELECT .+ FROM "bookings".+"b"\."status"`).
		WithArgs(string(domain.BookingStatusWaiting)).
		WillReturnRows(bookingRow(100, start, end, domain.BookingStatusWaiting))

	bookings, err := repo.ListWaitingWithRelations(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	require.NotNil(t, bookings[0].Item.Owner)
	assert.Equal(t, "owner@example.com", bookings[0].Item.Owner.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
