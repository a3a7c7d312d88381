package cancel_application

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
	cancelled []int64
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, applicationRepo.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeApplicationRepo) Cancel(ctx context.Context, id int64) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

type softDeleteCall struct {
	date   time.Time
	slot   domain.TimeSlot
	reason domain.DeletionReason
}

type fakePreferredSlotRepo struct {
	active      []*domain.PreferredSlot
	softDeletes []softDeleteCall
}

func (f *fakePreferredSlotRepo) ListActive(ctx context.Context, applicationID int64) ([]*domain.PreferredSlot, error) {
	return f.active, nil
}

func (f *fakePreferredSlotRepo) SoftDelete(ctx context.Context, applicationID int64, date time.Time, timeSlot domain.TimeSlot, reason domain.DeletionReason) error {
	f.softDeletes = append(f.softDeletes, softDeleteCall{date: date, slot: timeSlot, reason: reason})
	return nil
}

type fakeSlotRepo struct {
	decrements []string
	unlocked   []string
}

func pairKey(date time.Time, slot domain.TimeSlot) string {
	return date.Format(domain.DateFormat) + "/" + string(slot)
}

func (f *fakeSlotRepo) Decrement(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	f.decrements = append(f.decrements, pairKey(date, timeSlot))
	return nil
}

func (f *fakeSlotRepo) SetAvailability(ctx context.Context, date time.Time, timeSlot domain.TimeSlot, isAvailable bool) error {
	if isAvailable {
		f.unlocked = append(f.unlocked, pairKey(date, timeSlot))
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
		slotRepo: &fakeSlotRepo{},
	}
	if app != nil {
		env.appRepo.apps[app.ID] = app
	}
	env.uc = NewUseCase(env.appRepo, env.prefRepo, env.slotRepo, passthroughTxManager{}, nopLogger{})
	return env
}

func TestExecuteCancelsPendingApplication(t *testing.T) {
	env := newTestEnv(&domain.Application{ID: 42, Status: domain.StatusPending})
	env.prefRepo.active = []*domain.PreferredSlot{
		{ApplicationID: 42, PreferredDate: date(10), TimeSlot: domain.SlotMorning, Priority: 1},
		{ApplicationID: 42, PreferredDate: date(12), TimeSlot: domain.SlotEvening, Priority: 2},
	}

	resp, err := env.uc.Execute(context.Background(), &Request{ApplicationID: 42})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	// Удержания сняты, кандидаты удалены логически с причиной cancelled
	assert.Equal(t, []string{
		pairKey(date(10), domain.SlotMorning),
		pairKey(date(12), domain.SlotEvening),
	}, env.slotRepo.decrements)
	require.Len(t, env.prefRepo.softDeletes, 2)
	for _, call := range env.prefRepo.softDeletes {
		assert.Equal(t, domain.DeletionCancelled, call.reason)
	}

	// Слоты не разблокируются: pending заявка их не блокировала
	assert.Empty(t, env.slotRepo.unlocked)
	assert.Equal(t, []int64{42}, env.appRepo.cancelled)
}

func TestExecuteCancelConfirmedUnlocksSlot(t *testing.T) {
	confirmedDate := date(12)
	confirmedSlot := domain.SlotAfternoon
	env := newTestEnv(&domain.Application{
		ID:                42,
		Status:            domain.StatusConfirmed,
		ConfirmedDate:     &confirmedDate,
		ConfirmedTimeSlot: &confirmedSlot,
	})
	// После подтверждения активным остаётся только выбранный кандидат
	env.prefRepo.active = []*domain.PreferredSlot{
		{ApplicationID: 42, PreferredDate: confirmedDate, TimeSlot: confirmedSlot, Priority: 2},
	}

	resp, err := env.uc.Execute(context.Background(), &Request{ApplicationID: 42})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	// Подтверждённый слот открыт обратно
	assert.Equal(t, []string{pairKey(confirmedDate, confirmedSlot)}, env.slotRepo.unlocked)
	assert.Equal(t, []string{pairKey(confirmedDate, confirmedSlot)}, env.slotRepo.decrements)
}

func TestExecuteRejectsDoubleCancel(t *testing.T) {
	env := newTestEnv(&domain.Application{ID: 42, Status: domain.StatusCancelled})

	_, err := env.uc.Execute(context.Background(), &Request{ApplicationID: 42})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, env.appRepo.cancelled)
}

func TestExecuteApplicationNotFound(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.uc.Execute(context.Background(), &Request{ApplicationID: 42})
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestExecuteInvalidID(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.uc.Execute(context.Background(), &Request{ApplicationID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
