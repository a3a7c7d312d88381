package confirm_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
	applicationRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/application"
)

type fakeApplicationRepo struct {
	apps      map[int64]*domain.Application
	confirmed []int64
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, applicationRepo.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeApplicationRepo) Confirm(ctx context.Context, id int64, date time.Time, timeSlot domain.TimeSlot) error {
	f.confirmed = append(f.confirmed, id)
	return nil
}

type fakePreferredSlotRepo struct {
	active      []*domain.PreferredSlot
	keptDate    time.Time
	keptSlot    domain.TimeSlot
	softDeleted bool
}

func (f *fakePreferredSlotRepo) ListActive(ctx context.Context, applicationID int64) ([]*domain.PreferredSlot, error) {
	return f.active, nil
}

func (f *fakePreferredSlotRepo) SoftDeleteOthers(ctx context.Context, applicationID int64, keepDate time.Time, keepSlot domain.TimeSlot) error {
	f.softDeleted = true
	f.keptDate = keepDate
	f.keptSlot = keepSlot
	return nil
}

type fakeSlotRepo struct {
	unbookable map[string]bool
	decrements []string
	locked     []string
}

func pairKey(date time.Time, slot domain.TimeSlot) string {
	return date.Format(domain.DateFormat) + "/" + string(slot)
}

func (f *fakeSlotRepo) IsBookable(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error) {
	return !f.unbookable[pairKey(date, timeSlot)], nil
}

func (f *fakeSlotRepo) Decrement(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	f.decrements = append(f.decrements, pairKey(date, timeSlot))
	return nil
}

func (f *fakeSlotRepo) SetAvailability(ctx context.Context, date time.Time, timeSlot domain.TimeSlot, isAvailable bool) error {
	if !isAvailable {
		f.locked = append(f.locked, pairKey(date, timeSlot))
	}
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

type testEnv struct {
	uc       *UseCase
	appRepo  *fakeApplicationRepo
	prefRepo *fakePreferredSlotRepo
	slotRepo *fakeSlotRepo
}

func newTestEnv(app *domain.Application) *testEnv {
	env := &testEnv{
		appRepo:  &fakeApplicationRepo{apps: map[int64]*domain.Application{}},
		prefRepo: &fakePreferredSlotRepo{},
		slotRepo: &fakeSlotRepo{unbookable: map[string]bool{}},
	}
	if app != nil {
		env.appRepo.apps[app.ID] = app
	}
	env.uc = NewUseCase(env.appRepo, env.prefRepo, env.slotRepo, passthroughTxManager{}, nopLogger{})
	return env
}

func pendingApp() *domain.Application {
	return &domain.Application{ID: 42, Status: domain.StatusPending}
}

func TestExecuteConfirmsAndReleasesAllHolds(t *testing.T) {
	env := newTestEnv(pendingApp())
	env.prefRepo.active = []*domain.PreferredSlot{
		{ApplicationID: 42, PreferredDate: date(10), TimeSlot: domain.SlotMorning, Priority: 1},
		{ApplicationID: 42, PreferredDate: date(12), TimeSlot: domain.SlotAfternoon, Priority: 2},
		{ApplicationID: 42, PreferredDate: date(15), TimeSlot: domain.SlotEvening, Priority: 3},
	}

	resp, err := env.uc.Execute(context.Background(), &Request{
		ApplicationID:     42,
		ConfirmedDate:     date(12),
		ConfirmedTimeSlot: domain.SlotAfternoon,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ApplicationID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Удержания сняты по всем активным кандидатам, включая выбранного
	assert.Equal(t, []string{
		pairKey(date(10), domain.SlotMorning),
		pairKey(date(12), domain.SlotAfternoon),
		pairKey(date(15), domain.SlotEvening),
	}, env.slotRepo.decrements)

	// Невыбранные кандидаты удалены логически, выбранная пара сохранена
	assert.True(t, env.prefRepo.softDeleted)
	assert.Equal(t, date(12), env.prefRepo.keptDate)
	assert.Equal(t, domain.SlotAfternoon, env.prefRepo.keptSlot)

	// Подтверждённый слот закрыт для новых заявок
	assert.Equal(t, []string{pairKey(date(12), domain.SlotAfternoon)}, env.slotRepo.locked)
	assert.Equal(t, []int64{42}, env.appRepo.confirmed)
}

func TestExecuteApplicationNotFound(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.uc.Execute(context.Background(), &Request{
		ApplicationID:     42,
		ConfirmedDate:     date(12),
		ConfirmedTimeSlot: domain.SlotMorning,
	})
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestExecuteRejectsNonPendingApplication(t *testing.T) {
	for _, status := range []domain.ApplicationStatus{domain.StatusConfirmed, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			env := newTestEnv(&domain.Application{ID: 42, Status: status})

			_, err := env.uc.Execute(context.Background(), &Request{
				ApplicationID:     42,
				ConfirmedDate:     date(12),
				ConfirmedTimeSlot: domain.SlotMorning,
			})
			assert.ErrorIs(t, err, ErrInvalidStateTransition)
			assert.Empty(t, env.appRepo.confirmed)
		})
	}
}

func TestExecuteRejectsUnavailableSlot(t *testing.T) {
	env := newTestEnv(pendingApp())
	env.slotRepo.unbookable[pairKey(date(12), domain.SlotMorning)] = true

	_, err := env.uc.Execute(context.Background(), &Request{
		ApplicationID:     42,
		ConfirmedDate:     date(12),
		ConfirmedTimeSlot: domain.SlotMorning,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, env.appRepo.confirmed)
	assert.False(t, env.prefRepo.softDeleted)
}

func TestExecuteValidation(t *testing.T) {
	env := newTestEnv(pendingApp())

	cases := []struct {
		name string
		req  *Request
	}{
		{"нулевой ID", &Request{ConfirmedDate: date(12), ConfirmedTimeSlot: domain.SlotMorning}},
		{"без даты", &Request{ApplicationID: 42, ConfirmedTimeSlot: domain.SlotMorning}},
		{"неизвестное окно", &Request{ApplicationID: 42, ConfirmedDate: date(12), ConfirmedTimeSlot: "night"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
