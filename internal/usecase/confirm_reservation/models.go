package confirm_reservation

import (
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// Request модель запроса на подтверждение брони
type Request struct {
	ApplicationID     int64           // ID заявки
	ConfirmedDate     time.Time       // Выбранная дата установки
	ConfirmedTimeSlot domain.TimeSlot // Выбранное окно
}

// Response модель ответа с подтверждённой бронью
type Response struct {
	ApplicationID     int64           // ID заявки
	Status            string          // Статус (confirmed)
	ConfirmedDate     time.Time       // Подтверждённая дата
	ConfirmedTimeSlot domain.TimeSlot // Подтверждённое окно
}
