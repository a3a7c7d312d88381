package get_weekly_availability

import (
	"net/http"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
)

// WeeklySettingResponse одна ячейка недельной сетки
type WeeklySettingResponse struct {
	DayOfWeek   string `json:"dayOfWeek"`
	TimeSlot    string `json:"timeSlot"`
	IsAvailable bool   `json:"isAvailable"`
}

// WeeklySettingsResponse недельная сетка 7x3
type WeeklySettingsResponse struct {
	Settings []WeeklySettingResponse `json:"settings"`
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

// Handle GET /api/v1/admin/availability/weekly
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetWeeklySettings(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/availability/weekly - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := WeeklySettingsResponse{
		Settings: make([]WeeklySettingResponse, 0, len(settings)),
	}
	for _, s := range settings {
		response.Settings = append(response.Settings, WeeklySettingResponse{
			DayOfWeek:   string(s.DayOfWeek),
			TimeSlot:    string(s.TimeSlot),
			IsAvailable: s.IsAvailable,
		})
	}

	h.logger.Info("GET /admin/availability/weekly - Settings retrieved successfully: cells=%d", len(settings))
	handlers.RespondJSON(w, http.StatusOK, response)
}
