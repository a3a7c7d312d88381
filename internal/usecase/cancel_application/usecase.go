package cancel_application

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
	applicationRepo "github.com/m04kA/ACI-ReservationService/internal/infra/storage/application"
)

// Request модель запроса на отмену заявки
type Request struct {
	ApplicationID int64 // ID заявки
}

// Response модель ответа с отменённой заявкой
type Response struct {
	ApplicationID int64  // ID заявки
	Status        string // Статус (cancelled)
}

// UseCase use case для отмены заявки
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

// Execute выполняет use case отмены заявки
// Отменять можно и pending, и confirmed заявки; повторная отмена отклоняется
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelApplication: application=%d", req.ApplicationID)

	if req.ApplicationID <= 0 {
		uc.logger.Warn("CancelApplication: invalid application id=%d", req.ApplicationID)
		return nil, fmt.Errorf("%w: applicationID must be positive", ErrInvalidInput)
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем заявку с блокировкой (FOR UPDATE внутри транзакции)
		app, err := uc.applicationRepo.GetByID(txCtx, req.ApplicationID)
		if err != nil {
			if errors.Is(err, applicationRepo.ErrApplicationNotFound) {
				uc.logger.Warn("CancelApplication: application id=%d not found", req.ApplicationID)
				return ErrApplicationNotFound
			}
			uc.logger.Error("CancelApplication: failed to get application id=%d: %v", req.ApplicationID, err)
			return fmt.Errorf("%w: failed to get application: %v", ErrInternal, err)
		}

		// 2. Защита от двойной отмены
		if app.IsCancelled() {
			uc.logger.Warn("CancelApplication: application id=%d is already cancelled", req.ApplicationID)
			return ErrAlreadyCancelled
		}

		// 3. Для подтверждённой заявки открываем её слот обратно
		if app.IsConfirmed() && app.ConfirmedDate != nil && app.ConfirmedTimeSlot != nil {
			if err := uc.slotRepo.SetAvailability(txCtx, *app.ConfirmedDate, *app.ConfirmedTimeSlot, true); err != nil {
				uc.logger.Error("CancelApplication: failed to unlock slot %s/%s: %v",
					app.ConfirmedDate.Format(domain.DateFormat), *app.ConfirmedTimeSlot, err)
				return fmt.Errorf("%w: failed to unlock slot: %v", ErrInternal, err)
			}
		}

		// 4. Снимаем удержание со всех активных кандидатов
		activeSlots, err := uc.preferredSlotRepo.ListActive(txCtx, req.ApplicationID)
		if err != nil {
			uc.logger.Error("CancelApplication: failed to list active slots for application id=%d: %v",
				req.ApplicationID, err)
			return fmt.Errorf("%w: failed to list active slots: %v", ErrInternal, err)
		}

		for _, slot := range activeSlots {
			if err := uc.slotRepo.Decrement(txCtx, slot.PreferredDate, slot.TimeSlot); err != nil {
				uc.logger.Error("CancelApplication: failed to decrement slot %s/%s: %v",
					slot.PreferredDate.Format(domain.DateFormat), slot.TimeSlot, err)
				return fmt.Errorf("%w: failed to decrement slot: %v", ErrInternal, err)
			}

			// 5. Логически удаляем кандидата с причиной cancelled
			if err := uc.preferredSlotRepo.SoftDelete(txCtx, req.ApplicationID, slot.PreferredDate, slot.TimeSlot, domain.DeletionCancelled); err != nil {
				uc.logger.Error("CancelApplication: failed to soft-delete slot %s/%s: %v",
					slot.PreferredDate.Format(domain.DateFormat), slot.TimeSlot, err)
				return fmt.Errorf("%w: failed to soft-delete slot: %v", ErrInternal, err)
			}
		}

		// 6. Переводим заявку в терминальный статус
		if err := uc.applicationRepo.Cancel(txCtx, req.ApplicationID); err != nil {
			uc.logger.Error("CancelApplication: failed to cancel application id=%d: %v", req.ApplicationID, err)
			return fmt.Errorf("%w: failed to cancel application: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelApplication: successfully cancelled application id=%d", req.ApplicationID)

	return &Response{
		ApplicationID: req.ApplicationID,
		Status:        string(domain.StatusCancelled),
	}, nil
}
