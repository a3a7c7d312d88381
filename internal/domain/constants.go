package domain

// Default configuration values
const (
	DefaultMaxCapacity         = 2  // мест в одном временном окне
	DefaultAdvanceDays         = 30 // на сколько дней вперед открыта запись
	DefaultMinimumAdvanceHours = 24 // минимальный срок до визита
	DefaultBookingEnabled      = true
)

// Business validation constants
const (
	MinAdvanceDays         = 1
	MaxAdvanceDays         = 365
	MinMinimumAdvanceHours = 1
	MaxMinimumAdvanceHours = 168 // 1 неделя

	MaxPreferredSlots = 3 // кандидатов в одной заявке
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking settings keys (таблица booking_settings)
const (
	SettingBookingEnabled      = "booking_enabled"
	SettingAdvanceDays         = "booking_advance_days"
	SettingMinimumAdvanceHours = "booking_minimum_advance_hours"
)
