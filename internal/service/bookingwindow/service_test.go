package bookingwindow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

type fakeSettingsRepo struct {
	settings domain.BookingSettings
	updated  *domain.BookingSettings
}

func (f *fakeSettingsRepo) GetSettings(ctx context.Context) (domain.BookingSettings, error) {
	return f.settings, nil
}

func (f *fakeSettingsRepo) UpdateSettings(ctx context.Context, settings domain.BookingSettings) error {
	f.updated = &settings
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestService(repo *fakeSettingsRepo, now time.Time) *Service {
	return NewService(repo, passthroughTxManager{}, nopLogger{}).
		WithTimeProvider(fixedTimeProvider{now: now})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDateWithinBookingPeriodDisabled(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.BookingSettings{
		Enabled:             false,
		AdvanceDays:         30,
		MinimumAdvanceHours: 24,
	}}
	svc := newTestService(repo, date(2025, 10, 1))

	ok, err := svc.IsDateWithinBookingPeriod(context.Background(), date(2025, 10, 15))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsDateWithinBookingPeriodBoundaries(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.BookingSettings{
		Enabled:             true,
		AdvanceDays:         30,
		MinimumAdvanceHours: 24,
	}}
	// 10:00 утра: полночь завтрашнего дня ещё не отстоит на 24 часа
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"сегодня", date(2025, 10, 1), false},
		{"завтра, меньше 24 часов до полуночи", date(2025, 10, 2), false},
		{"послезавтра", date(2025, 10, 3), true},
		{"последний день окна", date(2025, 10, 31), true},
		{"за пределами окна", date(2025, 11, 1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := svc.IsDateWithinBookingPeriod(context.Background(), tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestIsDateWithinBookingPeriodMidnightStart(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.BookingSettings{
		Enabled:             true,
		AdvanceDays:         30,
		MinimumAdvanceHours: 24,
	}}
	// Ровно в полночь завтрашний день отстоит ровно на 24 часа и проходит
	svc := newTestService(repo, date(2025, 10, 1))

	ok, err := svc.IsDateWithinBookingPeriod(context.Background(), date(2025, 10, 2))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetBookingDateRange(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.BookingSettings{
		Enabled:             true,
		AdvanceDays:         14,
		MinimumAdvanceHours: 48,
	}}
	now := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	r, err := svc.GetBookingDateRange(context.Background())
	require.NoError(t, err)
	assert.True(t, r.Enabled)
	require.NotNil(t, r.StartDate)
	require.NotNil(t, r.EndDate)
	assert.Equal(t, date(2025, 10, 3), *r.StartDate)
	assert.Equal(t, date(2025, 10, 15), *r.EndDate)
}

func TestGetBookingDateRangeDisabled(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.BookingSettings{Enabled: false}}
	svc := newTestService(repo, date(2025, 10, 1))

	r, err := svc.GetBookingDateRange(context.Background())
	require.NoError(t, err)
	assert.False(t, r.Enabled)
	assert.Nil(t, r.StartDate)
	assert.Nil(t, r.EndDate)
}

func TestUpdateSettingsRejectsWholeGroup(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.DefaultBookingSettings()}
	svc := newTestService(repo, date(2025, 10, 1))

	err := svc.UpdateSettings(context.Background(), domain.BookingSettings{
		Enabled:             true,
		AdvanceDays:         400, // за пределами 1..365
		MinimumAdvanceHours: 24,
	})

	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.Nil(t, repo.updated)
}

func TestUpdateSettingsApplies(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.DefaultBookingSettings()}
	svc := newTestService(repo, date(2025, 10, 1))

	settings := domain.BookingSettings{
		Enabled:             false,
		AdvanceDays:         60,
		MinimumAdvanceHours: 12,
	}
	require.NoError(t, svc.UpdateSettings(context.Background(), settings))
	require.NotNil(t, repo.updated)
	assert.Equal(t, settings, *repo.updated)
}
