package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
	availabilityRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/availability"
)

type fakeAvailabilityRepo struct {
	overrides      map[string]*domain.DateOverride
	weekly         map[string]bool
	upserted       []*domain.DateOverride
	deleted        int
	weeklyNotFound bool
}

func overrideKey(date time.Time, slot domain.TimeSlot) string {
	return date.Format(domain.DateFormat) + "/" + string(slot)
}

func weeklyKey(day domain.DayOfWeek, slot domain.TimeSlot) string {
	return string(day) + "/" + string(slot)
}

func (f *fakeAvailabilityRepo) GetWeeklySettings(ctx context.Context) ([]*domain.WeeklyAvailability, error) {
	return nil, nil
}

func (f *fakeAvailabilityRepo) IsWeeklySlotAvailable(ctx context.Context, dayOfWeek domain.DayOfWeek, timeSlot domain.TimeSlot) (bool, error) {
	return f.weekly[weeklyKey(dayOfWeek, timeSlot)], nil
}

func (f *fakeAvailabilityRepo) UpdateWeeklySetting(ctx context.Context, dayOfWeek domain.DayOfWeek, timeSlot domain.TimeSlot, isAvailable bool) error {
	if f.weeklyNotFound {
		return availabilityRepo.ErrWeeklySettingNotFound
	}
	if f.weekly == nil {
		f.weekly = make(map[string]bool)
	}
	f.weekly[weeklyKey(dayOfWeek, timeSlot)] = isAvailable
	return nil
}

func (f *fakeAvailabilityRepo) GetDateOverride(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (*domain.DateOverride, error) {
	if o, ok := f.overrides[overrideKey(date, timeSlot)]; ok {
		return o, nil
	}
	return nil, availabilityRepo.ErrOverrideNotFound
}

func (f *fakeAvailabilityRepo) UpsertDateOverride(ctx context.Context, override *domain.DateOverride) error {
	f.upserted = append(f.upserted, override)
	return nil
}

func (f *fakeAvailabilityRepo) DeleteDateOverride(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	if _, ok := f.overrides[overrideKey(date, timeSlot)]; !ok {
		return availabilityRepo.ErrOverrideNotFound
	}
	f.deleted++
	return nil
}

func (f *fakeAvailabilityRepo) GetOverridesInRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.DateOverride, error) {
	return nil, nil
}

type fakeApplicationRepo struct {
	confirmed map[string]bool
}

func (f *fakeApplicationRepo) HasConfirmedReservation(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error) {
	return f.confirmed[overrideKey(date, timeSlot)], nil
}

type fakeSlotRepo struct {
	slots []*domain.SlotInfo
}

func (f *fakeSlotRepo) GetRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.SlotInfo, error) {
	return f.slots, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// 2025-10-20 — понедельник
func monday() time.Time {
	return time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
}

func newTestService(availRepo *fakeAvailabilityRepo, appRepo *fakeApplicationRepo) *Service {
	return NewService(availRepo, appRepo, &fakeSlotRepo{}, nopLogger{})
}

func TestIsDateTimeAvailableOverrideWins(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{
		overrides: map[string]*domain.DateOverride{
			overrideKey(monday(), domain.SlotMorning): {
				Date:        monday(),
				TimeSlot:    domain.SlotMorning,
				IsAvailable: false,
			},
		},
		// Сетка открыта, но оверрайд сильнее
		weekly: map[string]bool{weeklyKey(domain.Monday, domain.SlotMorning): true},
	}
	svc := newTestService(availRepo, &fakeApplicationRepo{})

	available, err := svc.IsDateTimeAvailable(context.Background(), monday(), domain.SlotMorning)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestIsDateTimeAvailableOverrideOpensClosedCell(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{
		overrides: map[string]*domain.DateOverride{
			overrideKey(monday(), domain.SlotEvening): {
				Date:        monday(),
				TimeSlot:    domain.SlotEvening,
				IsAvailable: true,
			},
		},
		weekly: map[string]bool{weeklyKey(domain.Monday, domain.SlotEvening): false},
	}
	svc := newTestService(availRepo, &fakeApplicationRepo{})

	available, err := svc.IsDateTimeAvailable(context.Background(), monday(), domain.SlotEvening)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsDateTimeAvailableWeeklyDefault(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{
		weekly: map[string]bool{weeklyKey(domain.Monday, domain.SlotAfternoon): true},
	}
	svc := newTestService(availRepo, &fakeApplicationRepo{})

	available, err := svc.IsDateTimeAvailable(context.Background(), monday(), domain.SlotAfternoon)
	require.NoError(t, err)
	assert.True(t, available)

	// Отсутствие ячейки в сетке означает недоступность
	available, err = svc.IsDateTimeAvailable(context.Background(), monday(), domain.SlotEvening)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestIsDateTimeAvailableConfirmedReservationBlocks(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{
		weekly: map[string]bool{weeklyKey(domain.Monday, domain.SlotMorning): true},
	}
	appRepo := &fakeApplicationRepo{
		confirmed: map[string]bool{overrideKey(monday(), domain.SlotMorning): true},
	}
	svc := newTestService(availRepo, appRepo)

	available, err := svc.IsDateTimeAvailable(context.Background(), monday(), domain.SlotMorning)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestSetDateOverrideRejectsConfirmedPair(t *testing.T) {
	appRepo := &fakeApplicationRepo{
		confirmed: map[string]bool{overrideKey(monday(), domain.SlotMorning): true},
	}
	svc := newTestService(&fakeAvailabilityRepo{}, appRepo)

	err := svc.SetDateOverride(context.Background(), monday(), domain.SlotMorning, false, "ремонт", "admin:1")
	assert.ErrorIs(t, err, ErrConfirmedReservationConflict)
}

func TestSetDateOverrideUpserts(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{}
	svc := newTestService(availRepo, &fakeApplicationRepo{})

	err := svc.SetDateOverride(context.Background(), monday(), domain.SlotMorning, true, "доп. бригада", "admin:7")
	require.NoError(t, err)
	require.Len(t, availRepo.upserted, 1)
	assert.True(t, availRepo.upserted[0].IsAvailable)
	assert.Equal(t, "admin:7", availRepo.upserted[0].CreatedBy)
}

func TestRemoveDateOverrideNotFound(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{}, &fakeApplicationRepo{})

	err := svc.RemoveDateOverride(context.Background(), monday(), domain.SlotMorning)
	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestRemoveDateOverrideRejectsConfirmedPair(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{
		overrides: map[string]*domain.DateOverride{
			overrideKey(monday(), domain.SlotMorning): {Date: monday(), TimeSlot: domain.SlotMorning},
		},
	}
	appRepo := &fakeApplicationRepo{
		confirmed: map[string]bool{overrideKey(monday(), domain.SlotMorning): true},
	}
	svc := newTestService(availRepo, appRepo)

	err := svc.RemoveDateOverride(context.Background(), monday(), domain.SlotMorning)
	assert.ErrorIs(t, err, ErrConfirmedReservationConflict)
	assert.Zero(t, availRepo.deleted)
}

func TestUpdateWeeklySettingNotFound(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{weeklyNotFound: true}, &fakeApplicationRepo{})

	err := svc.UpdateWeeklySetting(context.Background(), domain.Monday, domain.SlotMorning, false)
	assert.ErrorIs(t, err, ErrWeeklySettingNotFound)
}

func TestUpdateWeeklySettingIgnoresConfirmedReservations(t *testing.T) {
	// Сетка меняется свободно: конкретные подтверждённые пары защищает
	// третий слой IsDateTimeAvailable, а не запрет на правку сетки
	availRepo := &fakeAvailabilityRepo{}
	appRepo := &fakeApplicationRepo{
		confirmed: map[string]bool{overrideKey(monday(), domain.SlotMorning): true},
	}
	svc := newTestService(availRepo, appRepo)

	err := svc.UpdateWeeklySetting(context.Background(), domain.Monday, domain.SlotMorning, false)
	require.NoError(t, err)
	assert.False(t, availRepo.weekly[weeklyKey(domain.Monday, domain.SlotMorning)])
}
