package cancel_application

import (
	"errors"
	"net/http"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	cancelApplication "github.com/m04kA/ACI-ReservationService/internal/usecase/cancel_application"
)

const (
	msgCancelled        = "заявка отменена"
	msgInvalidBody      = "некорректное тело запроса"
	msgNotFound         = "заявка не найдена"
	msgAlreadyCancelled = "заявка уже отменена"
	msgInternalFailure  = "не удалось отменить заявку"
)

// CancelRequest HTTP request model (контракт совместимости, snake_case)
type CancelRequest struct {
	ApplicationID int64 `json:"application_id"`
}

// CancelResponse HTTP response model (конверт success/message)
type CancelResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID *int64 `json:"application_id,omitempty"`
}

type Handler struct {
	useCase CancelApplicationUseCase
	logger  Logger
}

func NewHandler(useCase CancelApplicationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/applications/cancel
// HTTP статус всегда 200, результат несёт флаг success в конверте
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/applications/cancel - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusOK, &CancelResponse{Success: false, Message: msgInvalidBody})
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelApplication.Request{ApplicationID: req.ApplicationID})
	if err != nil {
		switch {
		case errors.Is(err, cancelApplication.ErrApplicationNotFound):
			h.logger.Warn("POST /admin/applications/cancel - Application not found: application_id=%d", req.ApplicationID)
			handlers.RespondJSON(w, http.StatusOK, &CancelResponse{Success: false, Message: msgNotFound})

		case errors.Is(err, cancelApplication.ErrAlreadyCancelled):
			h.logger.Warn("POST /admin/applications/cancel - Already cancelled: application_id=%d", req.ApplicationID)
			handlers.RespondJSON(w, http.StatusOK, &CancelResponse{Success: false, Message: msgAlreadyCancelled})

		case errors.Is(err, cancelApplication.ErrInvalidInput):
			h.logger.Warn("POST /admin/applications/cancel - Invalid input: %v", err)
			handlers.RespondJSON(w, http.StatusOK, &CancelResponse{Success: false, Message: msgInvalidBody})

		default:
			h.logger.Error("POST /admin/applications/cancel - Failed to cancel: application_id=%d, error=%v",
				req.ApplicationID, err)
			handlers.RespondJSON(w, http.StatusOK, &CancelResponse{Success: false, Message: msgInternalFailure})
		}
		return
	}

	h.logger.Info("POST /admin/applications/cancel - Application cancelled: application_id=%d", result.ApplicationID)
	handlers.RespondJSON(w, http.StatusOK, &CancelResponse{
		Success:       true,
		Message:       msgCancelled,
		ApplicationID: &result.ApplicationID,
	})
}
