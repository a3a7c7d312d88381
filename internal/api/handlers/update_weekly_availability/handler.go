package update_weekly_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	"github.com/m04kA/ACI-ReservationService/internal/domain"
	"github.com/m04kA/ACI-ReservationService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDayOfWeek   = "некорректный день недели"
	msgInvalidTimeSlot    = "некорректное временное окно"
	msgSettingNotFound    = "ячейка недельной сетки не найдена"
)

// UpdateWeeklyRequest HTTP request model
type UpdateWeeklyRequest struct {
	DayOfWeek   string `json:"dayOfWeek"`
	TimeSlot    string `json:"timeSlot"`
	IsAvailable bool   `json:"isAvailable"`
}

// UpdateWeeklyResponse HTTP response model
type UpdateWeeklyResponse struct {
	DayOfWeek   string `json:"dayOfWeek"`
	TimeSlot    string `json:"timeSlot"`
	IsAvailable bool   `json:"isAvailable"`
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

// Handle PUT /api/v1/admin/availability/weekly
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateWeeklyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability/weekly - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	dayOfWeek, err := domain.ParseDayOfWeek(req.DayOfWeek)
	if err != nil {
		h.logger.Warn("PUT /admin/availability/weekly - Invalid day of week: %s", req.DayOfWeek)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	timeSlot, err := domain.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		h.logger.Warn("PUT /admin/availability/weekly - Invalid time slot: %s", req.TimeSlot)
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		return
	}

	if err := h.service.UpdateWeeklySetting(r.Context(), dayOfWeek, timeSlot, req.IsAvailable); err != nil {
		switch {
		case errors.Is(err, availability.ErrWeeklySettingNotFound):
			h.logger.Warn("PUT /admin/availability/weekly - Setting not found: %s/%s", req.DayOfWeek, req.TimeSlot)
			handlers.RespondNotFound(w, msgSettingNotFound)

		default:
			h.logger.Error("PUT /admin/availability/weekly - Failed to update setting: %s/%s, error=%v",
				req.DayOfWeek, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability/weekly - Setting updated successfully: %s/%s available=%t",
		req.DayOfWeek, req.TimeSlot, req.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, UpdateWeeklyResponse{
		DayOfWeek:   req.DayOfWeek,
		TimeSlot:    req.TimeSlot,
		IsAvailable: req.IsAvailable,
	})
}
