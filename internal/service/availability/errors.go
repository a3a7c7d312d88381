package availability

import "errors"

var (
	// ErrConfirmedReservationConflict возвращается при попытке изменить доступность
	// пары (дата, окно), занятой подтверждённой бронью
	ErrConfirmedReservationConflict = errors.New("availability: date/slot has a confirmed reservation")

	// ErrOverrideNotFound возвращается при удалении несуществующего оверрайда
	ErrOverrideNotFound = errors.New("availability: date override not found")

	// ErrWeeklySettingNotFound возвращается при обновлении несуществующей ячейки сетки
	ErrWeeklySettingNotFound = errors.New("availability: weekly setting not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
