package bookingwindow

import "errors"

var (
	// ErrInvalidSettings возвращается при значениях настроек вне допустимых границ
	// Группа настроек при этом не применяется целиком
	ErrInvalidSettings = errors.New("bookingwindow: invalid settings values")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookingwindow: internal error")
)
