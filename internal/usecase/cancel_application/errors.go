package cancel_application

import "errors"

var (
	// ErrApplicationNotFound возвращается, когда заявка не найдена
	ErrApplicationNotFound = errors.New("cancel_application: application not found")

	// ErrAlreadyCancelled возвращается при повторной отмене заявки
	ErrAlreadyCancelled = errors.New("cancel_application: application is already cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_application: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_application: internal error")
)
