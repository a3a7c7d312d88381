package confirm_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	confirmReservation "github.com/m04kA/ACI-ReservationService/internal/usecase/confirm_reservation"
)

const (
	msgConfirmed       = "бронь подтверждена"
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound        = "заявка не найдена"
	msgNotPending      = "заявка не находится в статусе ожидания"
	msgSlotUnavailable = "выбранный слот недоступен"
	msgInternalFailure = "не удалось подтвердить бронь"
)

type Handler struct {
	useCase ConfirmReservationUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reservations/confirm
// HTTP статус всегда 200, результат несёт флаг success в конверте
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations/confirm - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusOK, FailureResponse(msgInvalidBody))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/reservations/confirm - Failed to parse request: %v", err)
		handlers.RespondJSON(w, http.StatusOK, FailureResponse(msgInvalidDate))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, confirmReservation.ErrApplicationNotFound):
			h.logger.Warn("POST /admin/reservations/confirm - Application not found: application_id=%d", req.ApplicationID)
			handlers.RespondJSON(w, http.StatusOK, FailureResponse(msgNotFound))

		case errors.Is(err, confirmReservation.ErrInvalidStateTransition):
			h.logger.Warn("POST /admin/reservations/confirm - Invalid state: application_id=%d", req.ApplicationID)
			handlers.RespondJSON(w, http.StatusOK, FailureResponse(msgNotPending))

		case errors.Is(err, confirmReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /admin/reservations/confirm - Slot unavailable: application_id=%d, date=%s, slot=%s",
				req.ApplicationID, req.ConfirmedDate, req.ConfirmedTimeSlot)
			handlers.RespondJSON(w, http.StatusOK, FailureResponse(msgSlotUnavailable))

		case errors.Is(err, confirmReservation.ErrInvalidInput):
			h.logger.Warn("POST /admin/reservations/confirm - Invalid input: %v", err)
			handlers.RespondJSON(w, http.StatusOK, FailureResponse(msgInvalidBody))

		default:
			h.logger.Error("POST /admin/reservations/confirm - Failed to confirm: application_id=%d, error=%v",
				req.ApplicationID, err)
			handlers.RespondJSON(w, http.StatusOK, FailureResponse(msgInternalFailure))
		}
		return
	}

	h.logger.Info("POST /admin/reservations/confirm - Reservation confirmed: application_id=%d, date=%s, slot=%s",
		result.ApplicationID, req.ConfirmedDate, req.ConfirmedTimeSlot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgConfirmed))
}
