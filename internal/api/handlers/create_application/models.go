package create_application

import (
	"fmt"
	"time"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
	createApplication "github.com/m04kA/ACI-ReservationService/internal/usecase/create_application"
)

// PreferredSlotRequest кандидат в HTTP запросе
type PreferredSlotRequest struct {
	PreferredDate string `json:"preferredDate"` // "2025-10-15"
	TimeSlot      string `json:"timeSlot"`      // morning/afternoon/evening
	Priority      int    `json:"priority"`      // 1..3
}

// CreateApplicationRequest HTTP request model
type CreateApplicationRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`

	PostalCode   string `json:"postalCode"`
	Address      string `json:"address"`
	BuildingType string `json:"buildingType"`
	FloorNumber  *int   `json:"floorNumber,omitempty"`
	RoomType     string `json:"roomType"`
	RoomSize     string `json:"roomSize"`

	ACType            string `json:"acType"`
	ACCapacity        string `json:"acCapacity"`
	ExistingAC        string `json:"existingAc"`
	ExistingACRemoval string `json:"existingAcRemoval"`
	ElectricalWork    string `json:"electricalWork"`
	PipingWork        string `json:"pipingWork"`
	WallDrilling      string `json:"wallDrilling"`

	SpecialRequests *string `json:"specialRequests,omitempty"`

	PreferredSlots []PreferredSlotRequest `json:"preferredSlots"`
}

// PreferredSlotResponse кандидат в HTTP ответе
type PreferredSlotResponse struct {
	PreferredDate string `json:"preferredDate"`
	TimeSlot      string `json:"timeSlot"`
	Priority      int    `json:"priority"`
}

// ApplicationResponse HTTP response model
type ApplicationResponse struct {
	ID             int64                   `json:"id"`
	Status         string                  `json:"status"`
	PreferredSlots []PreferredSlotResponse `json:"preferredSlots"`
	CreatedAt      string                  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateApplicationRequest) ToUseCaseRequest() (*createApplication.Request, error) {
	candidates := make([]createApplication.CandidateSlot, 0, len(r.PreferredSlots))

	for _, slot := range r.PreferredSlots {
		date, err := time.Parse(domain.DateFormat, slot.PreferredDate)
		if err != nil {
			return nil, fmt.Errorf("parse preferred date %q: %w", slot.PreferredDate, err)
		}

		candidates = append(candidates, createApplication.CandidateSlot{
			Date:     date,
			TimeSlot: domain.TimeSlot(slot.TimeSlot),
			Priority: slot.Priority,
		})
	}

	return &createApplication.Request{
		CustomerName:      r.CustomerName,
		CustomerPhone:     r.CustomerPhone,
		CustomerEmail:     r.CustomerEmail,
		PostalCode:        r.PostalCode,
		Address:           r.Address,
		BuildingType:      r.BuildingType,
		FloorNumber:       r.FloorNumber,
		RoomType:          r.RoomType,
		RoomSize:          r.RoomSize,
		ACType:            r.ACType,
		ACCapacity:        r.ACCapacity,
		ExistingAC:        r.ExistingAC,
		ExistingACRemoval: r.ExistingACRemoval,
		ElectricalWork:    r.ElectricalWork,
		PipingWork:        r.PipingWork,
		WallDrilling:      r.WallDrilling,
		SpecialRequests:   r.SpecialRequests,
		PreferredSlots:    candidates,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createApplication.Response) *ApplicationResponse {
	slots := make([]PreferredSlotResponse, 0, len(resp.PreferredSlots))
	for _, c := range resp.PreferredSlots {
		slots = append(slots, PreferredSlotResponse{
			PreferredDate: c.Date.Format(domain.DateFormat),
			TimeSlot:      string(c.TimeSlot),
			Priority:      c.Priority,
		})
	}

	return &ApplicationResponse{
		ID:             resp.ID,
		Status:         resp.Status,
		PreferredSlots: slots,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
