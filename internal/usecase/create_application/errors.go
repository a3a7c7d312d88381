package create_application

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_application: invalid input data")

	// ErrOutsideBookingWindow возвращается, когда дата кандидата вне периода
	// приёма заявок (или приём выключен)
	ErrOutsideBookingWindow = errors.New("create_application: date is outside the booking period")

	// ErrSlotNotAvailable возвращается, когда слот кандидата закрыт политикой
	// доступности или исчерпан по вместимости
	ErrSlotNotAvailable = errors.New("create_application: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_application: internal error")
)

// CandidateError ошибка по конкретному кандидату: при отказе любого из
// кандидатов вся заявка отклоняется, наружу уходит приоритет отказавшего
type CandidateError struct {
	Priority int   // приоритет отказавшего кандидата (1..3)
	Err      error // ErrOutsideBookingWindow или ErrSlotNotAvailable
}

func (e *CandidateError) Error() string {
	return e.Err.Error()
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}
