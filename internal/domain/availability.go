package domain

import (
	"fmt"
	"time"
)

// DayOfWeek день недели в нижнем регистре (ключ таблицы availability_settings)
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// AllDaysOfWeek дни недели в порядке с понедельника
var AllDaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDayOfWeek валидирует строку дня недели
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	switch DayOfWeek(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return DayOfWeek(s), nil
	default:
		return "", fmt.Errorf("unknown day of week: %q", s)
	}
}

// DayOfWeekFromDate возвращает день недели для даты
func DayOfWeekFromDate(date time.Time) DayOfWeek {
	switch date.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// WeeklyAvailability is the default availability for one (day of week, time
// slot) cell. Exactly 21 rows exist, seeded by migration.
type WeeklyAvailability struct {
	ID          int64
	DayOfWeek   DayOfWeek
	TimeSlot    TimeSlot
	IsAvailable bool
	UpdatedAt   time.Time
}

// DateOverride is an admin-set exception for one specific date and time slot.
// Its presence always wins over the weekly default for that exact pair.
type DateOverride struct {
	ID          int64
	Date        time.Time
	TimeSlot    TimeSlot
	IsAvailable bool
	Reason      string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
