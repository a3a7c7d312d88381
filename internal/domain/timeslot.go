package domain

import (
	"fmt"

	"github.com/m04kA/ACI-ReservationService/pkg/types"
)

// TimeSlot represents one of the three fixed daily installation windows
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// AllTimeSlots все временные окна в порядке следования в течение дня
var AllTimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// ParseTimeSlot валидирует и конвертирует строку в TimeSlot
func ParseTimeSlot(s string) (TimeSlot, error) {
	switch TimeSlot(s) {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return TimeSlot(s), nil
	default:
		return "", fmt.Errorf("unknown time slot %q", s)
	}
}

// Order returns the position of the slot within the day (1-based)
func (t TimeSlot) Order() int {
	switch t {
	case SlotMorning:
		return 1
	case SlotAfternoon:
		return 2
	case SlotEvening:
		return 3
	default:
		return 0
	}
}

// TimeSlotDefinition справочная запись о временном окне (таблица time_slots)
// Справочник сидится миграцией и меняется только конфигурацией, не кодом
type TimeSlotDefinition struct {
	SlotName    TimeSlot
	DisplayName string
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsActive    bool
}
