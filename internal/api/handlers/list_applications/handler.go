package list_applications

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	"github.com/m04kA/ACI-ReservationService/internal/domain"
	"github.com/m04kA/ACI-ReservationService/internal/service/applications"
	"github.com/m04kA/ACI-ReservationService/internal/service/applications/models"
)

const (
	msgInvalidStatus = "некорректный статус заявки"
	msgInvalidFrom   = "некорректный формат параметра from, ожидается YYYY-MM-DD"
	msgInvalidTo     = "некорректный формат параметра to, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ApplicationService
	logger  Logger
}

func NewHandler(service ApplicationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/applications?status=&from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListApplicationsRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if from := query.Get("from"); from != "" {
		startDate, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			h.logger.Warn("GET /admin/applications - Invalid from parameter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.StartDate = &startDate
	}

	if to := query.Get("to"); to != "" {
		endDate, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			h.logger.Warn("GET /admin/applications - Invalid to parameter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.EndDate = &endDate
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, applications.ErrInvalidInput):
			h.logger.Warn("GET /admin/applications - Invalid status filter")
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/applications - Failed to list applications: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/applications - Applications listed successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
