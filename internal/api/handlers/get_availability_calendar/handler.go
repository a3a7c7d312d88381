package get_availability_calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

const (
	msgInvalidYear  = "некорректный параметр year"
	msgInvalidMonth = "некорректный параметр month, ожидается 1..12"
)

// CalendarSlotResponse строка леджера в календаре
type CalendarSlotResponse struct {
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot"`
	DisplayName     string `json:"displayName"`
	MaxCapacity     int    `json:"maxCapacity"`
	CurrentBookings int    `json:"currentBookings"`
	AvailableCount  int    `json:"availableCount"`
	IsAvailable     bool   `json:"isAvailable"`
}

// CalendarOverrideResponse оверрайд в календаре
type CalendarOverrideResponse struct {
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year      int                        `json:"year"`
	Month     int                        `json:"month"`
	Slots     []CalendarSlotResponse     `json:"slots"`
	Overrides []CalendarOverrideResponse `json:"overrides"`
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

// Handle GET /api/v1/admin/availability/calendar?year=2025&month=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		h.logger.Warn("GET /admin/availability/calendar - Invalid year: %s", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthNum, err := strconv.Atoi(query.Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		h.logger.Warn("GET /admin/availability/calendar - Invalid month: %s", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	calendar, err := h.service.GetMonthlyCalendar(r.Context(), year, time.Month(monthNum))
	if err != nil {
		h.logger.Error("GET /admin/availability/calendar - Failed to get calendar for %d-%02d: %v",
			year, monthNum, err)
		handlers.RespondInternalError(w)
		return
	}

	response := CalendarResponse{
		Year:      calendar.Year,
		Month:     int(calendar.Month),
		Slots:     make([]CalendarSlotResponse, 0, len(calendar.Slots)),
		Overrides: make([]CalendarOverrideResponse, 0, len(calendar.Overrides)),
	}

	for _, s := range calendar.Slots {
		response.Slots = append(response.Slots, CalendarSlotResponse{
			Date:            s.ReservationDate.Format(domain.DateFormat),
			TimeSlot:        string(s.TimeSlot),
			DisplayName:     s.DisplayName,
			MaxCapacity:     s.MaxCapacity,
			CurrentBookings: s.CurrentBookings,
			AvailableCount:  s.AvailableCount(),
			IsAvailable:     s.IsAvailable,
		})
	}

	for _, o := range calendar.Overrides {
		response.Overrides = append(response.Overrides, CalendarOverrideResponse{
			Date:        o.Date.Format(domain.DateFormat),
			TimeSlot:    string(o.TimeSlot),
			IsAvailable: o.IsAvailable,
			Reason:      o.Reason,
		})
	}

	h.logger.Info("GET /admin/availability/calendar - Calendar retrieved successfully: %d-%02d, slots=%d, overrides=%d",
		year, monthNum, len(response.Slots), len(response.Overrides))
	handlers.RespondJSON(w, http.StatusOK, response)
}
