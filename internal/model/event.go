package model

import (
	"time"

	"github.com/google/uuid"
)

// Тип события аудита.
type EventType string

const (
	EventTypeBookingCreated     EventType = "booking_created"
	EventTypeBookingConfirmed   EventType = "booking_confirmed"
	EventTypeBookingCancelled   EventType = "booking_cancelled"
	EventTypeBookingExpired     EventType = "booking_expired"
	EventTypeSlotsBulkCancelled EventType = "slots_bulk_cancelled"
)

// events — события аудита. Пишутся в той же транзакции, что и мутация,
// которую они фиксируют.
type Event struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	EventType EventType `gorm:"type:varchar(64);not null;index"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`

	BookingID  *uuid.UUID `gorm:"type:uuid;index"`
	SlotID     *uuid.UUID `gorm:"type:uuid;index"`
	ProviderID *uuid.UUID `gorm:"type:uuid;index"`

	Details string `gorm:"type:text"`
}
