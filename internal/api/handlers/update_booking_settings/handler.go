package update_booking_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	"github.com/m04kA/ACI-ReservationService/internal/domain"
	"github.com/m04kA/ACI-ReservationService/internal/service/bookingwindow"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSettings    = "значения настроек вне допустимых границ"
)

// UpdateSettingsRequest HTTP request model
// Группа настроек применяется атомарно: любое некорректное значение
// отклоняет всю группу
type UpdateSettingsRequest struct {
	Enabled             bool `json:"enabled"`
	AdvanceDays         int  `json:"advanceDays"`
	MinimumAdvanceHours int  `json:"minimumAdvanceHours"`
}

// UpdateSettingsResponse HTTP response model
type UpdateSettingsResponse struct {
	Enabled             bool `json:"enabled"`
	AdvanceDays         int  `json:"advanceDays"`
	MinimumAdvanceHours int  `json:"minimumAdvanceHours"`
}

type Handler struct {
	service BookingWindowService
	logger  Logger
}

func NewHandler(service BookingWindowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	settings := domain.BookingSettings{
		Enabled:             req.Enabled,
		AdvanceDays:         req.AdvanceDays,
		MinimumAdvanceHours: req.MinimumAdvanceHours,
	}

	if err := h.service.UpdateSettings(r.Context(), settings); err != nil {
		switch {
		case errors.Is(err, bookingwindow.ErrInvalidSettings):
			h.logger.Warn("PUT /admin/settings/booking - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /admin/settings/booking - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings/booking - Settings updated successfully: enabled=%t, advance_days=%d, minimum_advance_hours=%d",
		req.Enabled, req.AdvanceDays, req.MinimumAdvanceHours)
	handlers.RespondJSON(w, http.StatusOK, UpdateSettingsResponse{
		Enabled:             req.Enabled,
		AdvanceDays:         req.AdvanceDays,
		MinimumAdvanceHours: req.MinimumAdvanceHours,
	})
}
