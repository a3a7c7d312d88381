package set_date_override

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	"github.com/m04kA/ACI-ReservationService/internal/api/middleware"
	"github.com/m04kA/ACI-ReservationService/internal/domain"
	"github.com/m04kA/ACI-ReservationService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeSlot    = "некорректное временное окно"
	msgMissingAdminID     = "отсутствует ID администратора"
	msgConfirmedConflict  = "на эту дату и окно есть подтверждённая бронь"
)

// SetOverrideRequest HTTP request model
type SetOverrideRequest struct {
	Date        string `json:"date"` // "2025-10-15"
	TimeSlot    string `json:"timeSlot"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`
}

// SetOverrideResponse HTTP response model
type SetOverrideResponse struct {
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`
}

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

// Handle PUT /api/v1/admin/availability/overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability/overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("PUT /admin/availability/overrides - Invalid date: %s", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	timeSlot, err := domain.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		h.logger.Warn("PUT /admin/availability/overrides - Invalid time slot: %s", req.TimeSlot)
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		return
	}

	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		h.logger.Warn("PUT /admin/availability/overrides - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingAdminID)
		return
	}

	createdBy := strconv.FormatInt(adminID, 10)

	if err := h.service.SetDateOverride(r.Context(), date, timeSlot, req.IsAvailable, req.Reason, createdBy); err != nil {
		switch {
		case errors.Is(err, availability.ErrConfirmedReservationConflict):
			h.logger.Warn("PUT /admin/availability/overrides - Confirmed reservation conflict: %s/%s",
				req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgConfirmedConflict)

		default:
			h.logger.Error("PUT /admin/availability/overrides - Failed to set override: %s/%s, error=%v",
				req.Date, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability/overrides - Override set successfully: %s/%s available=%t by admin_id=%d",
		req.Date, req.TimeSlot, req.IsAvailable, adminID)
	handlers.RespondJSON(w, http.StatusOK, SetOverrideResponse{
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		IsAvailable: req.IsAvailable,
		Reason:      req.Reason,
	})
}
