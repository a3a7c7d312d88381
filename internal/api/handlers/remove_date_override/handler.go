package remove_date_override

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	"github.com/m04kA/ACI-ReservationService/internal/domain"
	"github.com/m04kA/ACI-ReservationService/internal/service/availability"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeSlot   = "некорректное временное окно"
	msgOverrideNotFound  = "оверрайд не найден"
	msgConfirmedConflict = "на эту дату и окно есть подтверждённая бронь"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/availability/overrides?date=YYYY-MM-DD&timeSlot=morning
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("DELETE /admin/availability/overrides - Invalid date: %s", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	timeSlot, err := domain.ParseTimeSlot(query.Get("timeSlot"))
	if err != nil {
		h.logger.Warn("DELETE /admin/availability/overrides - Invalid time slot: %s", query.Get("timeSlot"))
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		return
	}

	if err := h.service.RemoveDateOverride(r.Context(), date, timeSlot); err != nil {
		switch {
		case errors.Is(err, availability.ErrOverrideNotFound):
			h.logger.Warn("DELETE /admin/availability/overrides - Override not found: %s/%s",
				date.Format(domain.DateFormat), timeSlot)
			handlers.RespondNotFound(w, msgOverrideNotFound)

		case errors.Is(err, availability.ErrConfirmedReservationConflict):
			h.logger.Warn("DELETE /admin/availability/overrides - Confirmed reservation conflict: %s/%s",
				date.Format(domain.DateFormat), timeSlot)
			handlers.RespondError(w, http.StatusConflict, msgConfirmedConflict)

		default:
			h.logger.Error("DELETE /admin/availability/overrides - Failed to remove override: %s/%s, error=%v",
				date.Format(domain.DateFormat), timeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability/overrides - Override removed successfully: %s/%s",
		date.Format(domain.DateFormat), timeSlot)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
