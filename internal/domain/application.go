package domain

import "time"

// ApplicationStatus represents the status of an installation application
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusConfirmed ApplicationStatus = "confirmed"
	StatusCancelled ApplicationStatus = "cancelled"
)

// Application represents a customer's air-conditioner installation request
type Application struct {
	ID int64

	// Контактные данные заказчика
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	PostalCode    string
	Address       string

	// Параметры объекта и работ (денормализованы в заявке, ядро их не трактует)
	BuildingType      string
	FloorNumber       *int
	RoomType          string
	RoomSize          string
	ACType            string
	ACCapacity        string
	ExistingAC        string
	ExistingACRemoval string
	ElectricalWork    string
	PipingWork        string
	WallDrilling      string
	SpecialRequests   *string

	Status            ApplicationStatus
	ConfirmedDate     *time.Time
	ConfirmedTimeSlot *TimeSlot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the application awaits staff review
func (a *Application) IsPending() bool {
	return a.Status == StatusPending
}

// IsConfirmed returns true if one of the candidate slots has been confirmed
func (a *Application) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// IsCancelled returns true if the application has been cancelled
func (a *Application) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeConfirmed returns true if the application can transition to confirmed
func (a *Application) CanBeConfirmed() bool {
	return a.Status == StatusPending
}

// CanBeCancelled returns true if the application can transition to cancelled
func (a *Application) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// ApplicationsFilter фильтр для списка заявок в админке
type ApplicationsFilter struct {
	Status    *ApplicationStatus // фильтр по статусу (опционально)
	StartDate *time.Time         // заявки, созданные не раньше (опционально)
	EndDate   *time.Time         // заявки, созданные не позже (опционально)
}
