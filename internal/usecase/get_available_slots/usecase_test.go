package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

type fakeSlotRepo struct {
	infos map[domain.TimeSlot]*domain.SlotInfo
}

func (f *fakeSlotRepo) GetInfo(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (*domain.SlotInfo, error) {
	return f.infos[timeSlot], nil
}

type fakeAvailabilityService struct {
	closed map[domain.TimeSlot]bool
}

func (f *fakeAvailabilityService) IsDateTimeAvailable(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error) {
	return !f.closed[timeSlot], nil
}

type fakeBookingWindow struct {
	within bool
	window domain.BookingDateRange
}

func (f *fakeBookingWindow) IsDateWithinBookingPeriod(ctx context.Context, date time.Time) (bool, error) {
	return f.within, nil
}

func (f *fakeBookingWindow) GetBookingDateRange(ctx context.Context) (domain.BookingDateRange, error) {
	return f.window, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

func slotInfo(slot domain.TimeSlot, bookings int, isAvailable bool) *domain.SlotInfo {
	return &domain.SlotInfo{
		ReservationSlot: domain.ReservationSlot{
			TimeSlot:        slot,
			MaxCapacity:     2,
			CurrentBookings: bookings,
			IsAvailable:     isAvailable,
		},
		SlotActive: true,
	}
}

func defaultInfos() map[domain.TimeSlot]*domain.SlotInfo {
	return map[domain.TimeSlot]*domain.SlotInfo{
		domain.SlotMorning:   slotInfo(domain.SlotMorning, 0, true),
		domain.SlotAfternoon: slotInfo(domain.SlotAfternoon, 0, true),
		domain.SlotEvening:   slotInfo(domain.SlotEvening, 0, true),
	}
}

func newTestUseCase(slotRepo *fakeSlotRepo, availability *fakeAvailabilityService, window *fakeBookingWindow) *UseCase {
	return NewUseCase(slotRepo, availability, window, nopLogger{}).
		WithTimeProvider(fixedTimeProvider{now: date(1)})
}

func TestExecuteReturnsAllSlots(t *testing.T) {
	uc := newTestUseCase(
		&fakeSlotRepo{infos: defaultInfos()},
		&fakeAvailabilityService{closed: map[domain.TimeSlot]bool{}},
		&fakeBookingWindow{within: true},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date(10)})
	require.NoError(t, err)

	assert.True(t, resp.WithinPeriod)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, domain.SlotMorning, resp.Slots[0].TimeSlot)
	assert.Equal(t, domain.SlotAfternoon, resp.Slots[1].TimeSlot)
	assert.Equal(t, domain.SlotEvening, resp.Slots[2].TimeSlot)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
		assert.False(t, s.AdminDisabled)
		assert.Equal(t, 2, s.AvailableCount)
	}
}

func TestExecuteOutsideBookingPeriod(t *testing.T) {
	start := date(3)
	end := date(31)
	uc := newTestUseCase(
		&fakeSlotRepo{infos: defaultInfos()},
		&fakeAvailabilityService{closed: map[domain.TimeSlot]bool{}},
		&fakeBookingWindow{
			within: false,
			window: domain.BookingDateRange{StartDate: &start, EndDate: &end, Enabled: true},
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2)})
	require.NoError(t, err)

	assert.False(t, resp.WithinPeriod)
	assert.Empty(t, resp.Slots)
	require.NotNil(t, resp.BookingPeriod.StartDate)
	assert.Equal(t, start, *resp.BookingPeriod.StartDate)
	assert.Equal(t, end, *resp.BookingPeriod.EndDate)
}

func TestExecuteRejectsPastDate(t *testing.T) {
	uc := newTestUseCase(
		&fakeSlotRepo{infos: defaultInfos()},
		&fakeAvailabilityService{closed: map[domain.TimeSlot]bool{}},
		&fakeBookingWindow{within: true},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: date(1).AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecuteRejectsZeroDate(t *testing.T) {
	uc := newTestUseCase(
		&fakeSlotRepo{infos: defaultInfos()},
		&fakeAvailabilityService{closed: map[domain.TimeSlot]bool{}},
		&fakeBookingWindow{within: true},
	)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteAdminDisabledSlot(t *testing.T) {
	uc := newTestUseCase(
		&fakeSlotRepo{infos: defaultInfos()},
		&fakeAvailabilityService{closed: map[domain.TimeSlot]bool{domain.SlotEvening: true}},
		&fakeBookingWindow{within: true},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date(10)})
	require.NoError(t, err)

	evening := resp.Slots[2]
	assert.False(t, evening.Available)
	assert.True(t, evening.AdminDisabled)
	// Вместимость при этом не исчерпана
	assert.Equal(t, 2, evening.AvailableCount)
}

func TestExecuteFullSlotNotAvailable(t *testing.T) {
	infos := defaultInfos()
	infos[domain.SlotMorning] = slotInfo(domain.SlotMorning, 2, true)

	uc := newTestUseCase(
		&fakeSlotRepo{infos: infos},
		&fakeAvailabilityService{closed: map[domain.TimeSlot]bool{}},
		&fakeBookingWindow{within: true},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date(10)})
	require.NoError(t, err)

	morning := resp.Slots[0]
	assert.False(t, morning.Available)
	// Политика доступности окно не закрывала, кончилась вместимость
	assert.False(t, morning.AdminDisabled)
	assert.Zero(t, morning.AvailableCount)
}

func TestExecuteLockedSlotNotAvailable(t *testing.T) {
	infos := defaultInfos()
	infos[domain.SlotAfternoon] = slotInfo(domain.SlotAfternoon, 0, false)

	uc := newTestUseCase(
		&fakeSlotRepo{infos: infos},
		&fakeAvailabilityService{closed: map[domain.TimeSlot]bool{}},
		&fakeBookingWindow{within: true},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date(10)})
	require.NoError(t, err)

	afternoon := resp.Slots[1]
	assert.False(t, afternoon.Available)
	assert.False(t, afternoon.AdminDisabled)
}
