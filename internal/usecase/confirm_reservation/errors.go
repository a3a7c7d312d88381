package confirm_reservation

import "errors"

var (
	// ErrApplicationNotFound возвращается, когда заявка не найдена
	ErrApplicationNotFound = errors.New("confirm_reservation: application not found")

	// ErrInvalidStateTransition возвращается при подтверждении заявки не в статусе pending
	ErrInvalidStateTransition = errors.New("confirm_reservation: application is not pending")

	// ErrSlotUnavailable возвращается, когда выбранный слот недоступен для подтверждения
	ErrSlotUnavailable = errors.New("confirm_reservation: slot is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_reservation: internal error")
)
