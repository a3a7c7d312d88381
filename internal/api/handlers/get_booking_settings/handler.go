package get_booking_settings

import (
	"net/http"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// SettingsResponse HTTP response model
// Диапазон дат прилагается, чтобы админка показывала действующее окно
type SettingsResponse struct {
	Enabled             bool    `json:"enabled"`
	AdvanceDays         int     `json:"advanceDays"`
	MinimumAdvanceHours int     `json:"minimumAdvanceHours"`
	StartDate           *string `json:"startDate,omitempty"`
	EndDate             *string `json:"endDate,omitempty"`
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

// Handle GET /api/v1/admin/settings/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings/booking - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	dateRange, err := h.service.GetBookingDateRange(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings/booking - Failed to get date range: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := SettingsResponse{
		Enabled:             settings.Enabled,
		AdvanceDays:         settings.AdvanceDays,
		MinimumAdvanceHours: settings.MinimumAdvanceHours,
	}
	if dateRange.StartDate != nil {
		start := dateRange.StartDate.Format(domain.DateFormat)
		response.StartDate = &start
	}
	if dateRange.EndDate != nil {
		end := dateRange.EndDate.Format(domain.DateFormat)
		response.EndDate = &end
	}

	h.logger.Info("GET /admin/settings/booking - Settings retrieved successfully: enabled=%t", settings.Enabled)
	handlers.RespondJSON(w, http.StatusOK, response)
}
