package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе заявки
	ErrInvalidStatus = errors.New("invalid application status")
)

// Request модели

// ListApplicationsRequest запрос списка заявок для админки
type ListApplicationsRequest struct {
	Status    *string    `json:"status,omitempty"`    // фильтр по статусу (опционально)
	StartDate *time.Time `json:"startDate,omitempty"` // созданные не раньше (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // созданные не позже (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListApplicationsRequest) ToDomainFilter() (domain.ApplicationsFilter, error) {
	filter := domain.ApplicationsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainApplicationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ApplicationResponse ответ с данными заявки
type ApplicationResponse struct {
	ID                int64   `json:"id"`
	CustomerName      string  `json:"customerName"`
	CustomerPhone     string  `json:"customerPhone"`
	CustomerEmail     *string `json:"customerEmail,omitempty"`
	PostalCode        string  `json:"postalCode"`
	Address           string  `json:"address"`
	BuildingType      string  `json:"buildingType"`
	FloorNumber       *int    `json:"floorNumber,omitempty"`
	RoomType          string  `json:"roomType"`
	RoomSize          string  `json:"roomSize"`
	ACType            string  `json:"acType"`
	ACCapacity        string  `json:"acCapacity"`
	ExistingAC        string  `json:"existingAc"`
	ExistingACRemoval string  `json:"existingAcRemoval"`
	ElectricalWork    string  `json:"electricalWork"`
	PipingWork        string  `json:"pipingWork"`
	WallDrilling      string  `json:"wallDrilling"`
	SpecialRequests   *string `json:"specialRequests,omitempty"`
	Status            string  `json:"status"`
	ConfirmedDate     *string `json:"confirmedDate,omitempty"`     // "2025-10-15"
	ConfirmedTimeSlot *string `json:"confirmedTimeSlot,omitempty"` // morning/afternoon/evening
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// PreferredSlotResponse ответ с данными кандидата (включая логически удалённых)
type PreferredSlotResponse struct {
	PreferredDate string  `json:"preferredDate"` // "2025-10-15"
	TimeSlot      string  `json:"timeSlot"`
	Priority      int     `json:"priority"`
	Active        bool    `json:"active"`
	DeletedAt     *string `json:"deletedAt,omitempty"`
	DeletedReason *string `json:"deletedReason,omitempty"`
}

// ApplicationDetailResponse заявка с полной историей кандидатов
type ApplicationDetailResponse struct {
	Application    ApplicationResponse     `json:"application"`
	PreferredSlots []PreferredSlotResponse `json:"preferredSlots"`
}

// ApplicationListResponse список заявок
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int                   `json:"total"`
}

// FromDomainApplication конвертирует domain заявку в response
func FromDomainApplication(app *domain.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:                app.ID,
		CustomerName:      app.CustomerName,
		CustomerPhone:     app.CustomerPhone,
		CustomerEmail:     app.CustomerEmail,
		PostalCode:        app.PostalCode,
		Address:           app.Address,
		BuildingType:      app.BuildingType,
		FloorNumber:       app.FloorNumber,
		RoomType:          app.RoomType,
		RoomSize:          app.RoomSize,
		ACType:            app.ACType,
		ACCapacity:        app.ACCapacity,
		ExistingAC:        app.ExistingAC,
		ExistingACRemoval: app.ExistingACRemoval,
		ElectricalWork:    app.ElectricalWork,
		PipingWork:        app.PipingWork,
		WallDrilling:      app.WallDrilling,
		SpecialRequests:   app.SpecialRequests,
		Status:            string(app.Status),
		CreatedAt:         app.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         app.UpdatedAt.Format(time.RFC3339),
	}

	if app.ConfirmedDate != nil {
		d := app.ConfirmedDate.Format(domain.DateFormat)
		resp.ConfirmedDate = &d
	}
	if app.ConfirmedTimeSlot != nil {
		s := string(*app.ConfirmedTimeSlot)
		resp.ConfirmedTimeSlot = &s
	}

	return resp
}

// FromDomainPreferredSlots конвертирует кандидатов в response
func FromDomainPreferredSlots(slots []*domain.PreferredSlot) []PreferredSlotResponse {
	result := make([]PreferredSlotResponse, 0, len(slots))

	for _, slot := range slots {
		resp := PreferredSlotResponse{
			PreferredDate: slot.PreferredDate.Format(domain.DateFormat),
			TimeSlot:      string(slot.TimeSlot),
			Priority:      slot.Priority,
			Active:        slot.IsActive(),
		}
		if slot.DeletedAt != nil {
			d := slot.DeletedAt.Format(time.RFC3339)
			resp.DeletedAt = &d
		}
		if slot.DeletedReason != nil {
			r := string(*slot.DeletedReason)
			resp.DeletedReason = &r
		}
		result = append(result, resp)
	}

	return result
}

// FromDomainApplicationList конвертирует список заявок в response
func FromDomainApplicationList(apps []*domain.Application) *ApplicationListResponse {
	result := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		result = append(result, FromDomainApplication(app))
	}
	return &ApplicationListResponse{
		Applications: result,
		Total:        len(result),
	}
}

// ToDomainApplicationStatus валидирует и конвертирует строку статуса
func ToDomainApplicationStatus(s string) (domain.ApplicationStatus, error) {
	switch domain.ApplicationStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.ApplicationStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}
