package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда строка леджера не найдена
	ErrSlotNotFound = errors.New("slot.repository: reservation slot not found")

	// ErrUnknownTimeSlot возвращается, когда окно отсутствует в справочнике time_slots
	ErrUnknownTimeSlot = errors.New("slot.repository: unknown time slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
