package availability

import "errors"

var (
	// ErrWeeklySettingNotFound возвращается, когда ячейка недельной сетки не найдена
	ErrWeeklySettingNotFound = errors.New("availability.repository: weekly setting not found")

	// ErrOverrideNotFound возвращается, когда оверрайд на дату не найден
	ErrOverrideNotFound = errors.New("availability.repository: date override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
