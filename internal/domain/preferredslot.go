package domain

import "time"

// DeletionReason explains why a preferred slot was soft-deleted
type DeletionReason string

const (
	DeletionConfirmed DeletionReason = "confirmed" // выбран другой кандидат при подтверждении
	DeletionCancelled DeletionReason = "cancelled" // заявка отменена
	DeletionManual    DeletionReason = "manual"    // снят вручную оператором
)

// PreferredSlot is one ranked candidate (date, time slot) of an application.
// Rows are append-only: they are soft-deleted with a reason and timestamp and
// never removed, forming the audit trail of the application.
type PreferredSlot struct {
	ID            int64
	ApplicationID int64
	PreferredDate time.Time
	TimeSlot      TimeSlot
	Priority      int // 1..MaxPreferredSlots, уникален в рамках заявки

	DeletedAt     *time.Time
	DeletedReason *DeletionReason

	CreatedAt time.Time
}

// IsActive returns true if the slot has not been soft-deleted
func (p *PreferredSlot) IsActive() bool {
	return p.DeletedAt == nil
}

// Matches returns true if the slot refers to the given date and time slot
func (p *PreferredSlot) Matches(date time.Time, slot TimeSlot) bool {
	return p.TimeSlot == slot && sameDate(p.PreferredDate, date)
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
