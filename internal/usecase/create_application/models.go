package create_application

import (
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// CandidateSlot кандидат (дата, окно) с приоритетом
type CandidateSlot struct {
	Date     time.Time       // Дата установки (без времени)
	TimeSlot domain.TimeSlot // Окно: morning/afternoon/evening
	Priority int             // Приоритет 1..3, уникален в рамках заявки
}

// Request модель запроса на создание заявки
type Request struct {
	CustomerName  string  // ФИО клиента
	CustomerPhone string  // Телефон
	CustomerEmail *string // Email (опционально)

	PostalCode   string // Почтовый индекс
	Address      string // Адрес установки
	BuildingType string // Тип здания
	FloorNumber  *int   // Этаж (опционально)
	RoomType     string // Тип помещения
	RoomSize     string // Площадь помещения

	ACType            string // Тип кондиционера
	ACCapacity        string // Мощность
	ExistingAC        string // Есть ли старый кондиционер
	ExistingACRemoval string // Нужен ли демонтаж
	ElectricalWork    string // Электромонтажные работы
	PipingWork        string // Прокладка трассы
	WallDrilling      string // Бурение стены

	SpecialRequests *string // Пожелания (опционально)

	PreferredSlots []CandidateSlot // Кандидаты, 1..3
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID             int64           // ID созданной заявки
	Status         string          // Статус (pending)
	PreferredSlots []CandidateSlot // Принятые кандидаты
	CreatedAt      time.Time       // Время создания
}
