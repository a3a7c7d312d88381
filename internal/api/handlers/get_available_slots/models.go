package get_available_slots

import (
	"github.com/m04kA/ACI-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/ACI-ReservationService/internal/usecase/get_available_slots"
)

// SlotResponse состояние одного окна в HTTP ответе (контракт совместимости)
type SlotResponse struct {
	TimeSlot        string `json:"time_slot"`
	DisplayName     string `json:"display_name"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	MaxCapacity     int    `json:"max_capacity"`
	CurrentBookings int    `json:"current_bookings"`
	AvailableCount  int    `json:"available_count"`
	Available       bool   `json:"available"`
	AdminDisabled   bool   `json:"admin_disabled"`
}

// BookingPeriodResponse допустимый диапазон дат для сообщения об ошибке
type BookingPeriodResponse struct {
	Enabled   bool    `json:"enabled"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// SlotsResponse HTTP response model (конверт success/message)
type SlotsResponse struct {
	Success       bool                   `json:"success"`
	Message       string                 `json:"message,omitempty"`
	Date          string                 `json:"date,omitempty"`
	Slots         []SlotResponse         `json:"slots,omitempty"`
	BookingPeriod *BookingPeriodResponse `json:"booking_period,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			TimeSlot:        string(s.TimeSlot),
			DisplayName:     s.DisplayName,
			StartTime:       s.StartTime.String(),
			EndTime:         s.EndTime.String(),
			MaxCapacity:     s.MaxCapacity,
			CurrentBookings: s.CurrentBookings,
			AvailableCount:  s.AvailableCount,
			Available:       s.Available,
			AdminDisabled:   s.AdminDisabled,
		})
	}

	return &SlotsResponse{
		Success: true,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

// OutsidePeriodResponse формирует конверт для даты вне периода приёма
func OutsidePeriodResponse(resp *getAvailableSlots.Response, message string) *SlotsResponse {
	period := &BookingPeriodResponse{Enabled: resp.BookingPeriod.Enabled}

	if resp.BookingPeriod.StartDate != nil {
		start := resp.BookingPeriod.StartDate.Format(domain.DateFormat)
		period.StartDate = &start
	}
	if resp.BookingPeriod.EndDate != nil {
		end := resp.BookingPeriod.EndDate.Format(domain.DateFormat)
		period.EndDate = &end
	}

	return &SlotsResponse{
		Success:       false,
		Message:       message,
		BookingPeriod: period,
	}
}
