package create_application

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// UseCase use case для создания заявки на установку
type UseCase struct {
	applicationRepo     ApplicationRepository
	preferredSlotRepo   PreferredSlotRepository
	slotRepo            SlotRepository
	availabilityService AvailabilityService
	bookingWindow       BookingWindowService
	txManager           TransactionManager
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	applicationRepo ApplicationRepository,
	preferredSlotRepo PreferredSlotRepository,
	slotRepo SlotRepository,
	availabilityService AvailabilityService,
	bookingWindow BookingWindowService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		applicationRepo:     applicationRepo,
		preferredSlotRepo:   preferredSlotRepo,
		slotRepo:            slotRepo,
		availabilityService: availabilityService,
		bookingWindow:       bookingWindow,
		txManager:           txManager,
		logger:              logger,
	}
}

// Execute выполняет use case создания заявки
// Кандидаты проверяются в порядке приоритета; отказ любого из них отклоняет
// всю заявку (частичный набор кандидатов не сохраняется)
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateApplication: customer=%s, candidates=%d", req.CustomerName, len(req.PreferredSlots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateApplication: validation failed: %v", err)
		return nil, err
	}

	// 2. Сортируем кандидатов по приоритету
	candidates := make([]CandidateSlot, len(req.PreferredSlots))
	copy(candidates, req.PreferredSlots)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Priority < candidates[j].Priority
	})

	var result *domain.Application

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем каждого кандидата: период приёма, политика
		// доступности, вместимость слота
		for _, c := range candidates {
			if err := uc.checkCandidate(txCtx, c); err != nil {
				return err
			}
		}

		// 3.2. Создаем заявку в статусе pending
		app := &domain.Application{
			CustomerName:      req.CustomerName,
			CustomerPhone:     req.CustomerPhone,
			CustomerEmail:     req.CustomerEmail,
			PostalCode:        req.PostalCode,
			Address:           req.Address,
			BuildingType:      req.BuildingType,
			FloorNumber:       req.FloorNumber,
			RoomType:          req.RoomType,
			RoomSize:          req.RoomSize,
			ACType:            req.ACType,
			ACCapacity:        req.ACCapacity,
			ExistingAC:        req.ExistingAC,
			ExistingACRemoval: req.ExistingACRemoval,
			ElectricalWork:    req.ElectricalWork,
			PipingWork:        req.PipingWork,
			WallDrilling:      req.WallDrilling,
			SpecialRequests:   req.SpecialRequests,
			Status:            domain.StatusPending,
		}

		created, err := uc.applicationRepo.Create(txCtx, app)
		if err != nil {
			uc.logger.Error("CreateApplication: failed to create application: %v", err)
			return fmt.Errorf("%w: failed to create application: %v", ErrInternal, err)
		}

		// 3.3. Сохраняем кандидатов и увеличиваем счётчики слотов
		for _, c := range candidates {
			slot := &domain.PreferredSlot{
				ApplicationID: created.ID,
				PreferredDate: c.Date,
				TimeSlot:      c.TimeSlot,
				Priority:      c.Priority,
			}
			if _, err := uc.preferredSlotRepo.Create(txCtx, slot); err != nil {
				uc.logger.Error("CreateApplication: failed to create preferred slot priority=%d: %v", c.Priority, err)
				return fmt.Errorf("%w: failed to create preferred slot: %v", ErrInternal, err)
			}

			if err := uc.slotRepo.Increment(txCtx, c.Date, c.TimeSlot); err != nil {
				uc.logger.Error("CreateApplication: failed to increment slot %s/%s: %v",
					c.Date.Format(domain.DateFormat), c.TimeSlot, err)
				return fmt.Errorf("%w: failed to increment slot: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateApplication: successfully created application id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		Status:         string(result.Status),
		PreferredSlots: candidates,
		CreatedAt:      result.CreatedAt,
	}, nil
}

// checkCandidate проверяет одного кандидата
// Возвращает CandidateError с приоритетом отказавшего кандидата
func (uc *UseCase) checkCandidate(ctx context.Context, c CandidateSlot) error {
	dateStr := c.Date.Format(domain.DateFormat)

	// Дата попадает в период приёма заявок
	withinPeriod, err := uc.bookingWindow.IsDateWithinBookingPeriod(ctx, c.Date)
	if err != nil {
		uc.logger.Error("CreateApplication: booking period check failed for %s: %v", dateStr, err)
		return fmt.Errorf("%w: booking period check: %v", ErrInternal, err)
	}
	if !withinPeriod {
		uc.logger.Warn("CreateApplication: candidate priority=%d date=%s is outside booking period", c.Priority, dateStr)
		return &CandidateError{Priority: c.Priority, Err: ErrOutsideBookingWindow}
	}

	// Пара (дата, окно) открыта политикой доступности
	available, err := uc.availabilityService.IsDateTimeAvailable(ctx, c.Date, c.TimeSlot)
	if err != nil {
		uc.logger.Error("CreateApplication: availability check failed for %s/%s: %v", dateStr, c.TimeSlot, err)
		return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
	}
	if !available {
		uc.logger.Warn("CreateApplication: candidate priority=%d slot=%s/%s is disabled", c.Priority, dateStr, c.TimeSlot)
		return &CandidateError{Priority: c.Priority, Err: ErrSlotNotAvailable}
	}

	// Слот существует в леджере и не исчерпан по вместимости
	if err := uc.slotRepo.EnsureSlot(ctx, c.Date, c.TimeSlot); err != nil {
		uc.logger.Error("CreateApplication: failed to ensure slot %s/%s: %v", dateStr, c.TimeSlot, err)
		return fmt.Errorf("%w: failed to ensure slot: %v", ErrInternal, err)
	}

	bookable, err := uc.slotRepo.IsBookable(ctx, c.Date, c.TimeSlot)
	if err != nil {
		uc.logger.Error("CreateApplication: bookable check failed for %s/%s: %v", dateStr, c.TimeSlot, err)
		return fmt.Errorf("%w: bookable check: %v", ErrInternal, err)
	}
	if !bookable {
		uc.logger.Warn("CreateApplication: candidate priority=%d slot=%s/%s has no capacity", c.Priority, dateStr, c.TimeSlot)
		return &CandidateError{Priority: c.Priority, Err: ErrSlotNotAvailable}
	}

	return nil
}
