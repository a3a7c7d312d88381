package domain

import (
	"fmt"
	"time"
)

// BookingSettings ограничения периода приёма заявок
// Хранятся в таблице booking_settings и меняются только группой, атомарно
type BookingSettings struct {
	Enabled             bool
	AdvanceDays         int // запись открыта на N дней вперед, 1..365
	MinimumAdvanceHours int // минимум часов до визита, 1..168
}

// DefaultBookingSettings настройки, с которыми сервис стартует до первого изменения
func DefaultBookingSettings() BookingSettings {
	return BookingSettings{
		Enabled:             DefaultBookingEnabled,
		AdvanceDays:         DefaultAdvanceDays,
		MinimumAdvanceHours: DefaultMinimumAdvanceHours,
	}
}

// Validate проверяет границы значений настроек
func (s BookingSettings) Validate() error {
	if s.AdvanceDays < MinAdvanceDays || s.AdvanceDays > MaxAdvanceDays {
		return fmt.Errorf("booking_advance_days must be between %d and %d, got %d",
			MinAdvanceDays, MaxAdvanceDays, s.AdvanceDays)
	}
	if s.MinimumAdvanceHours < MinMinimumAdvanceHours || s.MinimumAdvanceHours > MaxMinimumAdvanceHours {
		return fmt.Errorf("booking_minimum_advance_hours must be between %d and %d, got %d",
			MinMinimumAdvanceHours, MaxMinimumAdvanceHours, s.MinimumAdvanceHours)
	}
	return nil
}

// BookingDateRange доступный диапазон дат для записи
// Даты nil, когда приём заявок выключен
type BookingDateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
	Enabled   bool
}
