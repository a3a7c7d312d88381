package create_application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

type fakeApplicationRepo struct {
	created *domain.Application
}

func (f *fakeApplicationRepo) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	app.ID = 101
	app.CreatedAt = time.Now()
	f.created = app
	return app, nil
}

type fakePreferredSlotRepo struct {
	created []*domain.PreferredSlot
}

func (f *fakePreferredSlotRepo) Create(ctx context.Context, slot *domain.PreferredSlot) (*domain.PreferredSlot, error) {
	slot.ID = int64(len(f.created) + 1)
	f.created = append(f.created, slot)
	return slot, nil
}

type fakeSlotRepo struct {
	full       map[string]bool
	increments []string
}

func pairKey(date time.Time, slot domain.TimeSlot) string {
	return date.Format(domain.DateFormat) + "/" + string(slot)
}

func (f *fakeSlotRepo) EnsureSlot(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	return nil
}

func (f *fakeSlotRepo) IsBookable(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error) {
	return !f.full[pairKey(date, timeSlot)], nil
}

func (f *fakeSlotRepo) Increment(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) error {
	f.increments = append(f.increments, pairKey(date, timeSlot))
	return nil
}

type fakeAvailabilityService struct {
	closed map[string]bool
}

func (f *fakeAvailabilityService) IsDateTimeAvailable(ctx context.Context, date time.Time, timeSlot domain.TimeSlot) (bool, error) {
	return !f.closed[pairKey(date, timeSlot)], nil
}

type fakeBookingWindow struct {
	outside map[string]bool
}

func (f *fakeBookingWindow) IsDateWithinBookingPeriod(ctx context.Context, date time.Time) (bool, error) {
	return !f.outside[date.Format(domain.DateFormat)], nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type testEnv struct {
	uc            *UseCase
	appRepo       *fakeApplicationRepo
	prefRepo      *fakePreferredSlotRepo
	slotRepo      *fakeSlotRepo
	availability  *fakeAvailabilityService
	bookingWindow *fakeBookingWindow
}

func newTestEnv() *testEnv {
	env := &testEnv{
		appRepo:       &fakeApplicationRepo{},
		prefRepo:      &fakePreferredSlotRepo{},
		slotRepo:      &fakeSlotRepo{full: map[string]bool{}},
		availability:  &fakeAvailabilityService{closed: map[string]bool{}},
		bookingWindow: &fakeBookingWindow{outside: map[string]bool{}},
	}
	env.uc = NewUseCase(
		env.appRepo,
		env.prefRepo,
		env.slotRepo,
		env.availability,
		env.bookingWindow,
		passthroughTxManager{},
		nopLogger{},
	)
	return env
}

func date(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		CustomerName:      "Иванов Иван",
		CustomerPhone:     "+79990001122",
		PostalCode:        "101000",
		Address:           "г. Москва, ул. Ленина, д. 1",
		BuildingType:      "apartment",
		RoomType:          "living_room",
		RoomSize:          "20",
		ACType:            "split",
		ACCapacity:        "2.5kw",
		ExistingAC:        "no",
		ExistingACRemoval: "no",
		ElectricalWork:    "no",
		PipingWork:        "yes",
		WallDrilling:      "yes",
		PreferredSlots: []CandidateSlot{
			{Date: date(15), TimeSlot: domain.SlotEvening, Priority: 3},
			{Date: date(10), TimeSlot: domain.SlotMorning, Priority: 1},
			{Date: date(12), TimeSlot: domain.SlotAfternoon, Priority: 2},
		},
	}
}

func TestExecuteCreatesApplicationWithAllCandidates(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Кандидаты отсортированы по приоритету
	require.Len(t, resp.PreferredSlots, 3)
	assert.Equal(t, 1, resp.PreferredSlots[0].Priority)
	assert.Equal(t, 2, resp.PreferredSlots[1].Priority)
	assert.Equal(t, 3, resp.PreferredSlots[2].Priority)

	// Каждый кандидат сохранён и поставил удержание в леджере
	require.Len(t, env.prefRepo.created, 3)
	assert.Equal(t, []string{
		pairKey(date(10), domain.SlotMorning),
		pairKey(date(12), domain.SlotAfternoon),
		pairKey(date(15), domain.SlotEvening),
	}, env.slotRepo.increments)
}

func TestExecuteRejectsWholeRequestOnFailedCandidate(t *testing.T) {
	env := newTestEnv()
	// Отказывает кандидат с приоритетом 2
	env.availability.closed[pairKey(date(12), domain.SlotAfternoon)] = true

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	var candidateErr *CandidateError
	require.ErrorAs(t, err, &candidateErr)
	assert.Equal(t, 2, candidateErr.Priority)

	// Заявка и кандидаты не сохранены, счётчики не тронуты
	assert.Nil(t, env.appRepo.created)
	assert.Empty(t, env.prefRepo.created)
	assert.Empty(t, env.slotRepo.increments)
}

func TestExecuteRejectsDateOutsideBookingPeriod(t *testing.T) {
	env := newTestEnv()
	env.bookingWindow.outside[date(10).Format(domain.DateFormat)] = true

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrOutsideBookingWindow)

	var candidateErr *CandidateError
	require.ErrorAs(t, err, &candidateErr)
	assert.Equal(t, 1, candidateErr.Priority)
}

func TestExecuteRejectsFullSlot(t *testing.T) {
	env := newTestEnv()
	env.slotRepo.full[pairKey(date(10), domain.SlotMorning)] = true

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, env.appRepo.created)
}

func TestExecuteValidation(t *testing.T) {
	env := newTestEnv()

	cases := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"без имени", func(req *Request) { req.CustomerName = "" }},
		{"без телефона", func(req *Request) { req.CustomerPhone = "" }},
		{"без адреса", func(req *Request) { req.Address = "" }},
		{"без кандидатов", func(req *Request) { req.PreferredSlots = nil }},
		{"дубль приоритета", func(req *Request) {
			req.PreferredSlots[1].Priority = 1
		}},
		{"дубль пары дата/окно", func(req *Request) {
			req.PreferredSlots[1].Date = req.PreferredSlots[0].Date
			req.PreferredSlots[1].TimeSlot = req.PreferredSlots[0].TimeSlot
		}},
		{"неизвестное окно", func(req *Request) {
			req.PreferredSlots[0].TimeSlot = "night"
		}},
		{"приоритет вне диапазона", func(req *Request) {
			req.PreferredSlots[0].Priority = 4
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
