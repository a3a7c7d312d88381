package get_available_slots

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	"github.com/m04kA/ACI-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/ACI-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "параметр date обязателен"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast      = "дата не может быть в прошлом"
	msgOutsidePeriod   = "дата вне периода приёма заявок"
	msgInternalFailure = "не удалось получить слоты"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=YYYY-MM-DD
// HTTP статус всегда 200, результат несёт флаг success в конверте
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date parameter")
		handlers.RespondJSON(w, http.StatusOK, &SlotsResponse{Success: false, Message: msgMissingDate})
		return
	}

	if !dateRe.MatchString(dateStr) {
		h.logger.Warn("GET /available-slots - Invalid date format: %s", dateStr)
		handlers.RespondJSON(w, http.StatusOK, &SlotsResponse{Success: false, Message: msgInvalidDate})
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Failed to parse date %s: %v", dateStr, err)
		handlers.RespondJSON(w, http.StatusOK, &SlotsResponse{Success: false, Message: msgInvalidDate})
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Date in past: %s", dateStr)
			handlers.RespondJSON(w, http.StatusOK, &SlotsResponse{Success: false, Message: msgDateInPast})

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondJSON(w, http.StatusOK, &SlotsResponse{Success: false, Message: msgInvalidDate})

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondJSON(w, http.StatusOK, &SlotsResponse{Success: false, Message: msgInternalFailure})
		}
		return
	}

	if !result.WithinPeriod {
		h.logger.Warn("GET /available-slots - Date outside booking period: %s", dateStr)
		handlers.RespondJSON(w, http.StatusOK, OutsidePeriodResponse(result, msgOutsidePeriod))
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, slots=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
