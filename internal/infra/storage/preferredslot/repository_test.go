package preferredslot

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
	return time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
}

func TestCreateReturnsGeneratedID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO application_preferred_slots").
		WithArgs(int64(42), testDate(), domain.SlotMorning, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	created, err := repo.Create(context.Background(), &domain.PreferredSlot{
		ApplicationID: 42,
		PreferredDate: testDate(),
		TimeSlot:      domain.SlotMorning,
		Priority:      1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveFiltersDeleted(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "application_id", "preferred_date", "time_slot", "priority",
		"deleted_at", "deleted_reason", "created_at",
	}).
		AddRow(1, 42, testDate(), "morning", 1, nil, nil, time.Now()).
		AddRow(2, 42, testDate(), "evening", 2, nil, nil, time.Now())

	mock.ExpectQuery(`SELECT .+ FROM application_preferred_slots WHERE application_id = \$1 AND deleted_at IS NULL`).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	slots, err := repo.ListActive(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].IsActive())
	assert.Equal(t, 1, slots[0].Priority)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllKeepsHistory(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	deletedAt := time.Now().Add(-time.Hour)
	rows := sqlmock.NewRows([]string{
		"id", "application_id", "preferred_date", "time_slot", "priority",
		"deleted_at", "deleted_reason", "created_at",
	}).
		AddRow(1, 42, testDate(), "morning", 1, nil, nil, time.Now()).
		AddRow(2, 42, testDate(), "afternoon", 2, deletedAt, "confirmed", time.Now())

	mock.ExpectQuery("SELECT .+ FROM application_preferred_slots").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	slots, err := repo.ListAll(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].IsActive())
	assert.False(t, slots[1].IsActive())
	require.NotNil(t, slots[1].DeletedReason)
	assert.Equal(t, domain.DeletionConfirmed, *slots[1].DeletedReason)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteOnlyTouchesActiveRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	// Повторный вызов по уже удалённой строке ничего не меняет и не падает
	mock.ExpectExec(`UPDATE application_preferred_slots SET deleted_at = NOW\(\), deleted_reason = \$1 WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), 42, testDate(), domain.SlotMorning, domain.DeletionCancelled)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteOthersKeepsChosenPair(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE application_preferred_slots SET deleted_at = NOW\(\), deleted_reason = \$1 WHERE .+ \(preferred_date <> \$\d+ OR time_slot <> \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.SoftDeleteOthers(context.Background(), 42, testDate(), domain.SlotMorning)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
