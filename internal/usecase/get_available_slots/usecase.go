package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// UseCase use case для получения состояния слотов на дату
type UseCase struct {
	slotRepo            SlotRepository
	availabilityService AvailabilityService
	bookingWindow       BookingWindowService
	timeProvider        TimeProvider
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	availabilityService AvailabilityService,
	bookingWindow BookingWindowService,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:            slotRepo,
		availabilityService: availabilityService,
		bookingWindow:       bookingWindow,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов на дату
// Available складывается из политики доступности и остатка вместимости;
// AdminDisabled отдельно показывает только компонент политики доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: date=%s", dateStr)

	// 1. Валидация: дата обязательна и не в прошлом
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", dateStr)
		return nil, ErrInvalidDate
	}

	// 2. Проверяем период приёма заявок
	withinPeriod, err := uc.bookingWindow.IsDateWithinBookingPeriod(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: booking period check failed: %v", err)
		return nil, fmt.Errorf("%w: booking period check: %v", ErrInternal, err)
	}

	if !withinPeriod {
		bookingPeriod, err := uc.bookingWindow.GetBookingDateRange(ctx)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get booking period: %v", err)
			return nil, fmt.Errorf("%w: failed to get booking period: %v", ErrInternal, err)
		}

		uc.logger.Warn("GetAvailableSlots: date %s is outside booking period", dateStr)
		return &Response{
			Date:          req.Date,
			WithinPeriod:  false,
			BookingPeriod: bookingPeriod,
		}, nil
	}

	// 3. Собираем состояние каждого окна
	slots := make([]Slot, 0, len(domain.AllTimeSlots))

	for _, timeSlot := range domain.AllTimeSlots {
		info, err := uc.slotRepo.GetInfo(ctx, req.Date, timeSlot)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get slot info %s/%s: %v", dateStr, timeSlot, err)
			return nil, fmt.Errorf("%w: failed to get slot info: %v", ErrInternal, err)
		}

		adminAvailable, err := uc.availabilityService.IsDateTimeAvailable(ctx, req.Date, timeSlot)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: availability check failed %s/%s: %v", dateStr, timeSlot, err)
			return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}

		slots = append(slots, Slot{
			TimeSlot:        timeSlot,
			DisplayName:     info.DisplayName,
			StartTime:       info.StartTime,
			EndTime:         info.EndTime,
			MaxCapacity:     info.MaxCapacity,
			CurrentBookings: info.CurrentBookings,
			AvailableCount:  info.AvailableCount(),
			Available:       adminAvailable && info.Bookable(),
			AdminDisabled:   !adminAvailable,
		})
	}

	uc.logger.Info("GetAvailableSlots: successfully fetched %d slots for date=%s", len(slots), dateStr)

	return &Response{
		Date:         req.Date,
		WithinPeriod: true,
		Slots:        slots,
	}, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
