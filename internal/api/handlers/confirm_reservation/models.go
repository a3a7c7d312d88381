package confirm_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
	confirmReservation "github.com/m04kA/ACI-ReservationService/internal/usecase/confirm_reservation"
)

// ConfirmRequest HTTP request model
// Контракт совместимости: поля в snake_case, ответ всегда HTTP 200
type ConfirmRequest struct {
	ApplicationID     int64  `json:"application_id"`
	ConfirmedDate     string `json:"confirmed_date"`      // "2025-10-15"
	ConfirmedTimeSlot string `json:"confirmed_time_slot"` // morning/afternoon/evening
}

// ConfirmResponse HTTP response model (конверт success/message)
type ConfirmResponse struct {
	Success           bool    `json:"success"`
	Message           string  `json:"message"`
	ApplicationID     *int64  `json:"application_id,omitempty"`
	ConfirmedDate     *string `json:"confirmed_date,omitempty"`
	ConfirmedTimeSlot *string `json:"confirmed_time_slot,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmRequest) ToUseCaseRequest() (*confirmReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.ConfirmedDate)
	if err != nil {
		return nil, fmt.Errorf("parse confirmed date %q: %w", r.ConfirmedDate, err)
	}

	return &confirmReservation.Request{
		ApplicationID:     r.ApplicationID,
		ConfirmedDate:     date,
		ConfirmedTimeSlot: domain.TimeSlot(r.ConfirmedTimeSlot),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmReservation.Response, message string) *ConfirmResponse {
	date := resp.ConfirmedDate.Format(domain.DateFormat)
	slot := string(resp.ConfirmedTimeSlot)

	return &ConfirmResponse{
		Success:           true,
		Message:           message,
		ApplicationID:     &resp.ApplicationID,
		ConfirmedDate:     &date,
		ConfirmedTimeSlot: &slot,
	}
}

// FailureResponse формирует конверт с ошибкой
func FailureResponse(message string) *ConfirmResponse {
	return &ConfirmResponse{
		Success: false,
		Message: message,
	}
}
