package get_available_slots

import (
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
	"github.com/m04kA/ACI-ReservationService/pkg/types"
)

// Request модель запроса на получение слотов на дату
type Request struct {
	Date time.Time // Запрошенная дата (без времени)
}

// Slot состояние одного временного окна на запрошенную дату
type Slot struct {
	TimeSlot        domain.TimeSlot  // Ключ окна: morning/afternoon/evening
	DisplayName     string           // Отображаемое название окна
	StartTime       types.TimeString // Начало окна
	EndTime         types.TimeString // Конец окна
	MaxCapacity     int              // Вместимость
	CurrentBookings int              // Текущее число удержаний
	AvailableCount  int              // Остаток вместимости
	Available       bool             // Итог: политика доступности + леджер
	AdminDisabled   bool             // Окно закрыто политикой доступности
}

// Response модель ответа со слотами на дату
// Когда дата вне периода приёма заявок, Slots пуст, WithinPeriod=false,
// а BookingPeriod содержит допустимый диапазон для сообщения клиенту
type Response struct {
	Date          time.Time               // Запрошенная дата
	WithinPeriod  bool                    // Дата внутри периода приёма заявок
	BookingPeriod domain.BookingDateRange // Диапазон периода приёма
	Slots         []Slot                  // Состояние окон (порядок следования в течение дня)
}
