package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resort-booking-backend/internal/booking"
)

// newMockDB creates a gorm connection backed by sqlmock so failure paths can
// be scripted.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

// A failed payment insert must roll back the booking insert with it: no
// booking row may survive without its payment record.
func TestCreateBookingRollsBackOnPaymentFailure(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rooms"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity", "price_per_night"}).
			AddRow(1, "Deluxe", 2, 100.0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bookings"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "bookings"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "payments"`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := s.CreateBooking(context.Background(), date("2024-01-01"),
		params(1, 1, "2024-02-01", "2024-02-03"))
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingUnknownRoomRollsBack(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rooms"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity", "price_per_night"}))
	mock.ExpectRollback()

	_, err := s.CreateBooking(context.Background(), date("2024-01-01"),
		params(1, 42, "2024-02-01", "2024-02-03"))
	assert.ErrorIs(t, err, booking.ErrRoomNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
