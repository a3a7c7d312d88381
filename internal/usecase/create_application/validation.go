package create_application

import (
	"fmt"

	"github.com/m04kA/ACI-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if req.PostalCode == "" {
		return fmt.Errorf("%w: postalCode is required", ErrInvalidInput)
	}
	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	return validateCandidates(req.PreferredSlots)
}

// validateCandidates проверяет список кандидатов: количество, приоритеты,
// уникальность пар (дата, окно)
func validateCandidates(candidates []CandidateSlot) error {
	if len(candidates) == 0 {
		return fmt.Errorf("%w: at least one preferred slot is required", ErrInvalidInput)
	}
	if len(candidates) > domain.MaxPreferredSlots {
		return fmt.Errorf("%w: at most %d preferred slots are allowed", ErrInvalidInput, domain.MaxPreferredSlots)
	}

	seenPriorities := make(map[int]bool, len(candidates))
	seenPairs := make(map[string]bool, len(candidates))

	for _, c := range candidates {
		if c.Date.IsZero() {
			return fmt.Errorf("%w: preferred date is required", ErrInvalidInput)
		}
		if _, err := domain.ParseTimeSlot(string(c.TimeSlot)); err != nil {
			return fmt.Errorf("%w: invalid time slot %q", ErrInvalidInput, c.TimeSlot)
		}
		if c.Priority < 1 || c.Priority > domain.MaxPreferredSlots {
			return fmt.Errorf("%w: priority must be between 1 and %d", ErrInvalidInput, domain.MaxPreferredSlots)
		}
		if seenPriorities[c.Priority] {
			return fmt.Errorf("%w: duplicate priority %d", ErrInvalidInput, c.Priority)
		}
		seenPriorities[c.Priority] = true

		pair := c.Date.Format(domain.DateFormat) + "/" + string(c.TimeSlot)
		if seenPairs[pair] {
			return fmt.Errorf("%w: duplicate preferred slot %s", ErrInvalidInput, pair)
		}
		seenPairs[pair] = true
	}

	return nil
}
