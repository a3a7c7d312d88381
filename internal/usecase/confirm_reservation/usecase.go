package confirm_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
	applicationRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/application"
)

// UseCase use case для подтверждения брони админом
type UseCase struct {
	applicationRepo   ApplicationRepository
	preferredSlotRepo PreferredSlotRepository
	slotRepo          SlotRepository
	txManager         TransactionManager
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	applicationRepo ApplicationRepository,
	preferredSlotRepo PreferredSlotRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		applicationRepo:   applicationRepo,
		preferredSlotRepo: preferredSlotRepo,
		slotRepo:          slotRepo,
		txManager:         txManager,
		logger:            logger,
	}
}

// Execute выполняет use case подтверждения брони
// Все шаги атомарны: любая ошибка откатывает весь набор изменений
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dateStr := req.ConfirmedDate.Format(domain.DateFormat)
	uc.logger.Info("ConfirmReservation: application=%d, date=%s, slot=%s",
		req.ApplicationID, dateStr, req.ConfirmedTimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmReservation: validation failed: %v", err)
		return nil, err
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Загружаем заявку с блокировкой (FOR UPDATE внутри транзакции)
		app, err := uc.applicationRepo.GetByID(txCtx, req.ApplicationID)
		if err != nil {
			if errors.Is(err, applicationRepo.ErrApplicationNotFound) {
				uc.logger.Warn("ConfirmReservation: application id=%d not found", req.ApplicationID)
				return ErrApplicationNotFound
			}
			uc.logger.Error("ConfirmReservation: failed to get application id=%d: %v", req.ApplicationID, err)
			return fmt.Errorf("%w: failed to get application: %v", ErrInternal, err)
		}

		// 3. Подтверждать можно только заявку в статусе pending
		if !app.CanBeConfirmed() {
			uc.logger.Warn("ConfirmReservation: application id=%d has status=%s, cannot confirm",
				req.ApplicationID, app.Status)
			return ErrInvalidStateTransition
		}

		// 4. Выбранный слот должен быть доступен на момент подтверждения
		bookable, err := uc.slotRepo.IsBookable(txCtx, req.ConfirmedDate, req.ConfirmedTimeSlot)
		if err != nil {
			uc.logger.Error("ConfirmReservation: bookable check failed for %s/%s: %v",
				dateStr, req.ConfirmedTimeSlot, err)
			return fmt.Errorf("%w: bookable check: %v", ErrInternal, err)
		}
		if !bookable {
			uc.logger.Warn("ConfirmReservation: slot %s/%s is unavailable", dateStr, req.ConfirmedTimeSlot)
			return ErrSlotUnavailable
		}

		// 5. Активные кандидаты нужны до soft-delete: по каждому из них
		// снимается "pending interest" со счётчика слота
		activeSlots, err := uc.preferredSlotRepo.ListActive(txCtx, req.ApplicationID)
		if err != nil {
			uc.logger.Error("ConfirmReservation: failed to list active slots for application id=%d: %v",
				req.ApplicationID, err)
			return fmt.Errorf("%w: failed to list active slots: %v", ErrInternal, err)
		}

		// 6. Фиксируем статус и подтверждённую пару (дата, окно)
		if err := uc.applicationRepo.Confirm(txCtx, req.ApplicationID, req.ConfirmedDate, req.ConfirmedTimeSlot); err != nil {
			uc.logger.Error("ConfirmReservation: failed to confirm application id=%d: %v", req.ApplicationID, err)
			return fmt.Errorf("%w: failed to confirm application: %v", ErrInternal, err)
		}

		// 7. Снимаем удержание со всех активных кандидатов, включая выбранного
		for _, slot := range activeSlots {
			if err := uc.slotRepo.Decrement(txCtx, slot.PreferredDate, slot.TimeSlot); err != nil {
				uc.logger.Error("ConfirmReservation: failed to decrement slot %s/%s: %v",
					slot.PreferredDate.Format(domain.DateFormat), slot.TimeSlot, err)
				return fmt.Errorf("%w: failed to decrement slot: %v", ErrInternal, err)
			}
		}

		// 8. Логически удаляем невыбранных кандидатов; выбранный остаётся
		// активным как запись о том, что было подтверждено
		if err := uc.preferredSlotRepo.SoftDeleteOthers(txCtx, req.ApplicationID, req.ConfirmedDate, req.ConfirmedTimeSlot); err != nil {
			uc.logger.Error("ConfirmReservation: failed to soft-delete other slots for application id=%d: %v",
				req.ApplicationID, err)
			return fmt.Errorf("%w: failed to soft-delete other slots: %v", ErrInternal, err)
		}

		// 9. Закрываем слот для новых заявок независимо от остатка вместимости
		if err := uc.slotRepo.SetAvailability(txCtx, req.ConfirmedDate, req.ConfirmedTimeSlot, false); err != nil {
			uc.logger.Error("ConfirmReservation: failed to lock slot %s/%s: %v",
				dateStr, req.ConfirmedTimeSlot, err)
			return fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmReservation: successfully confirmed application id=%d for %s/%s",
		req.ApplicationID, dateStr, req.ConfirmedTimeSlot)

	return &Response{
		ApplicationID:     req.ApplicationID,
		Status:            string(domain.StatusConfirmed),
		ConfirmedDate:     req.ConfirmedDate,
		ConfirmedTimeSlot: req.ConfirmedTimeSlot,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ApplicationID <= 0 {
		return fmt.Errorf("%w: applicationID must be positive", ErrInvalidInput)
	}
	if req.ConfirmedDate.IsZero() {
		return fmt.Errorf("%w: confirmedDate is required", ErrInvalidInput)
	}
	if _, err := domain.ParseTimeSlot(string(req.ConfirmedTimeSlot)); err != nil {
		return fmt.Errorf("%w: invalid time slot %q", ErrInvalidInput, req.ConfirmedTimeSlot)
	}
	return nil
}
