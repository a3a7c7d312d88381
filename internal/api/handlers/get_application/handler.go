package get_application

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	"github.com/m04kA/ACI-ReservationService/internal/service/applications"
)

const (
	msgInvalidApplicationID = "некорректный ID заявки"
	msgNotFound             = "заявка не найдена"
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

// Handle GET /api/v1/applications/{applicationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	applicationIDStr := vars["applicationId"]

	applicationID, err := strconv.ParseInt(applicationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /applications/{id} - Invalid application ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApplicationID)
		return
	}

	detail, err := h.service.GetByID(r.Context(), applicationID)
	if err != nil {
		switch {
		case errors.Is(err, applications.ErrApplicationNotFound):
			h.logger.Warn("GET /applications/{id} - Application not found: application_id=%d", applicationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /applications/{id} - Failed to get application: application_id=%d, error=%v",
				applicationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /applications/{id} - Application retrieved successfully: application_id=%d", applicationID)
	handlers.RespondJSON(w, http.StatusOK, detail)
}
