package create_application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/ACI-ReservationService/internal/api/handlers"
	createApplication "github.com/m04kA/ACI-ReservationService/internal/usecase/create_application"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotNotAvailable   = "кандидат с приоритетом %d недоступен"
	msgOutsideWindow      = "кандидат с приоритетом %d вне периода приёма заявок"
)

type Handler struct {
	useCase CreateApplicationUseCase
	logger  Logger
}

func NewHandler(useCase CreateApplicationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/applications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /applications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /applications - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var candidateErr *createApplication.CandidateError

		switch {
		case errors.As(err, &candidateErr) && errors.Is(err, createApplication.ErrOutsideBookingWindow):
			h.logger.Warn("POST /applications - Candidate priority=%d outside booking window", candidateErr.Priority)
			handlers.RespondError(w, http.StatusConflict, fmt.Sprintf(msgOutsideWindow, candidateErr.Priority))

		case errors.As(err, &candidateErr) && errors.Is(err, createApplication.ErrSlotNotAvailable):
			h.logger.Warn("POST /applications - Candidate priority=%d not available", candidateErr.Priority)
			handlers.RespondError(w, http.StatusConflict, fmt.Sprintf(msgSlotNotAvailable, candidateErr.Priority))

		case errors.Is(err, createApplication.ErrInvalidInput):
			h.logger.Warn("POST /applications - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /applications - Failed to create application: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /applications - Application created successfully: application_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
