package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// bookings
//
// ClientID — непрозрачная ссылка на клиента из Identity-сервиса, ядро её не
// разыменовывает. Частичный уникальный индекс по slot_id среди неотменённых
// бронирований гарантирует не более одного активного бронирования на слот:
// гонка двух CreateBooking упирается в констрейнт, а не в проверку кода.
type Booking struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	SlotID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_bookings_active_slot,where:status <> 'cancelled'"`

	// Денормализация для стабильного отображения: слот и каталог могут
	// меняться после создания бронирования, снимок — нет.
	ProviderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceID    *uuid.UUID `gorm:"type:uuid;index"`
	ProviderName string     `gorm:"type:varchar(255)"`
	ServiceName  string     `gorm:"type:varchar(255)"`

	Status      BookingStatus `gorm:"type:varchar(32);not null;default:'pending';index"`
	CreatedAt   time.Time     `gorm:"not null;default:now()"`
	UpdatedAt   time.Time     `gorm:"not null;default:now()"`
	CancelledAt *time.Time    `gorm:"type:timestamp with time zone"`
	Comment     string        `gorm:"type:text"`

	Slot *TimeSlot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
