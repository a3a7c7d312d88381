package slot

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

func newRepoMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, func() { db.Close() }
}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func TestEnsureSlotInsertsWithDefaults(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO reservation_slots").
		WithArgs(testDate(), domain.SlotMorning, domain.DefaultMaxCapacity, 0, true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.EnsureSlot(context.Background(), testDate(), domain.SlotMorning))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementEnsuresRowFirst(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO reservation_slots").
		WithArgs(testDate(), domain.SlotAfternoon, domain.DefaultMaxCapacity, 0, true).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE reservation_slots SET current_bookings = current_bookings \+ 1`).
		WithArgs(testDate(), domain.SlotAfternoon).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Increment(context.Background(), testDate(), domain.SlotAfternoon))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementNeverGoesBelowZero(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	// Нижнюю границу держит GREATEST в самом запросе
	mock.ExpectExec(`UPDATE reservation_slots SET current_bookings = GREATEST\(current_bookings - 1, 0\)`).
		WithArgs(testDate(), domain.SlotMorning).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Decrement(context.Background(), testDate(), domain.SlotMorning))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAvailabilityOverwritesFlag(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO reservation_slots").
		WithArgs(testDate(), domain.SlotEvening, domain.DefaultMaxCapacity, 0, true).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE reservation_slots SET is_available = ").
		WithArgs(false, testDate(), domain.SlotEvening).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetAvailability(context.Background(), testDate(), domain.SlotEvening, false))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInfoUnknownTimeSlot(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	mock.ExpectExec("INSERT INTO reservation_slots").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .+ FROM reservation_slots rs JOIN time_slots ts").
		WithArgs(testDate(), domain.SlotMorning).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetInfo(context.Background(), testDate(), domain.SlotMorning)
	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsBookableFoldsLedgerState(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	columns := []string{
		"id", "reservation_date", "time_slot", "max_capacity", "current_bookings",
		"is_available", "created_at", "updated_at",
		"display_name", "start_time", "end_time", "is_active",
	}

	// Счётчик на пределе вместимости: новое удержание ставить нельзя
	mock.ExpectExec("INSERT INTO reservation_slots").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .+ FROM reservation_slots rs JOIN time_slots ts").
		WithArgs(testDate(), domain.SlotMorning).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, testDate(), "morning", 2, 2, true, time.Now(), time.Now(),
				"Утро (09:00 - 12:00)", "09:00", "12:00", true))

	bookable, err := repo.IsBookable(context.Background(), testDate(), domain.SlotMorning)
	require.NoError(t, err)
	assert.False(t, bookable)
	require.NoError(t, mock.ExpectationsWereMet())
}
