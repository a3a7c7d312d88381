package domain

import (
	"time"

	"github.com/m04kA/ACI-ReservationService/pkg/types"
)

// ReservationSlot is the capacity ledger row for one (date, time slot) pair.
//
// CurrentBookings counts pending interest: it is incremented for every
// candidate slot of a submitted application and decremented back at
// confirm/cancel time. The signal that a slot is taken by a confirmed
// reservation is IsAvailable=false, not capacity exhaustion.
type ReservationSlot struct {
	ID              int64
	ReservationDate time.Time
	TimeSlot        TimeSlot
	MaxCapacity     int
	CurrentBookings int // >= 0, при декременте не уходит ниже нуля
	IsAvailable     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCapacity returns true if the pending-interest counter is below capacity
func (s *ReservationSlot) HasCapacity() bool {
	return s.CurrentBookings < s.MaxCapacity
}

// AvailableCount returns the number of free spots (never negative)
func (s *ReservationSlot) AvailableCount() int {
	free := s.MaxCapacity - s.CurrentBookings
	if free < 0 {
		return 0
	}
	return free
}

// SlotInfo объединяет строку леджера со справочными данными окна (time_slots)
type SlotInfo struct {
	ReservationSlot

	DisplayName string
	StartTime   types.TimeString
	EndTime     types.TimeString
	SlotActive  bool // окно глобально включено в справочнике
}

// Bookable returns true if a new hold may be placed on the slot:
// the slot is not locked, has spare capacity and its window is active
func (i *SlotInfo) Bookable() bool {
	return i.IsAvailable && i.HasCapacity() && i.SlotActive
}
