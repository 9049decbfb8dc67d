package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appomat/core/internal/model"
)

// Условие «слот не осиротел»: либо слот без услуги, либо его услуга всё ещё в
// актуальном наборе провайдера. Осиротевшие слоты дообслуживают существующие
// бронирования, но из выдачи свободных исключаются.
const notOrphanedCond = `time_slots.service_id IS NULL OR EXISTS (
	SELECT 1 FROM provider_services
	WHERE provider_services.provider_id = time_slots.provider_id
	  AND provider_services.service_id = time_slots.service_id
)`

type SlotRepository interface {
	// Свободные слоты провайдера по интервалу и (опционально) услуге,
	// без осиротевших.
	ListFreeSlots(ctx context.Context, providerID uuid.UUID, serviceID *uuid.UUID, from, to time.Time, limit, offset int) ([]model.TimeSlot, int64, error)
	// Слоты провайдера по интервалу (любые статусы) вместе с активным
	// бронированием каждого слота. Пара слот+бронирование собирается одним
	// запросом и не бывает рассогласованной.
	ListByProviderRange(ctx context.Context, providerID uuid.UUID, from, to time.Time, limit, offset int) ([]SlotWithBooking, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.TimeSlot, error)
	Create(ctx context.Context, slot *model.TimeSlot) error
	// Есть ли у провайдера неотменённый слот, пересекающийся с [start, end).
	HasOverlapping(ctx context.Context, providerID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
}

type SlotWithBooking struct {
	Slot    model.TimeSlot
	Booking *model.Booking
}

type GormSlotRepository struct {
	db *gorm.DB
}

func NewGormSlotRepository(db *gorm.DB) *GormSlotRepository {
	return &GormSlotRepository{db: db}
}

func (r *GormSlotRepository) ListFreeSlots(
	ctx context.Context,
	providerID uuid.UUID,
	serviceID *uuid.UUID,
	from, to time.Time,
	limit, offset int,
) ([]model.TimeSlot, int64, error) {
	var slots []model.TimeSlot
	q := r.db.WithContext(ctx).
		Model(&model.TimeSlot{}).
		Where("time_slots.provider_id = ?", providerID).
		Where("time_slots.starts_at >= ? AND time_slots.ends_at <= ?", from, to).
		Where("time_slots.status = ?", model.TimeSlotStatusPlanned).
		Where(notOrphanedCond)

	if serviceID != nil {
		q = q.Where("time_slots.service_id = ?", *serviceID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("time_slots.starts_at ASC").Find(&slots).Error; err != nil {
		return nil, 0, err
	}

	return slots, total, nil
}

// Плоская строка LEFT JOIN слотов с активными бронированиями.
type slotBookingRow struct {
	SlotID         uuid.UUID            `gorm:"column:slot_id"`
	ScheduleID     *uuid.UUID           `gorm:"column:schedule_id"`
	ProviderID     uuid.UUID            `gorm:"column:provider_id"`
	SlotServiceID  *uuid.UUID           `gorm:"column:slot_service_id"`
	StartsAt       time.Time            `gorm:"column:starts_at"`
	EndsAt         time.Time            `gorm:"column:ends_at"`
	SlotStatus     model.TimeSlotStatus `gorm:"column:slot_status"`
	BookingID      *uuid.UUID           `gorm:"column:booking_id"`
	ClientID       *uuid.UUID           `gorm:"column:client_id"`
	BookingStatus  *model.BookingStatus `gorm:"column:booking_status"`
	BkServiceID    *uuid.UUID           `gorm:"column:bk_service_id"`
	ProviderName   *string              `gorm:"column:provider_name"`
	ServiceName    *string              `gorm:"column:service_name"`
	BookingCreated *time.Time           `gorm:"column:booking_created_at"`
	CancelledAt    *time.Time           `gorm:"column:cancelled_at"`
	Comment        *string              `gorm:"column:comment"`
}

func (row *slotBookingRow) toSlotWithBooking() SlotWithBooking {
	item := SlotWithBooking{
		Slot: model.TimeSlot{
			ID:         row.SlotID,
			ScheduleID: row.ScheduleID,
			ProviderID: row.ProviderID,
			ServiceID:  row.SlotServiceID,
			StartsAt:   row.StartsAt,
			EndsAt:     row.EndsAt,
			Status:     row.SlotStatus,
		},
	}
	if row.BookingID != nil {
		b := &model.Booking{
			ID:          *row.BookingID,
			SlotID:      row.SlotID,
			ProviderID:  row.ProviderID,
			ServiceID:   row.BkServiceID,
			Status:      *row.BookingStatus,
			CancelledAt: row.CancelledAt,
		}
		if row.ClientID != nil {
			b.ClientID = *row.ClientID
		}
		if row.ProviderName != nil {
			b.ProviderName = *row.ProviderName
		}
		if row.ServiceName != nil {
			b.ServiceName = *row.ServiceName
		}
		if row.BookingCreated != nil {
			b.CreatedAt = *row.BookingCreated
		}
		if row.Comment != nil {
			b.Comment = *row.Comment
		}
		item.Booking = b
	}
	return item
}

func (r *GormSlotRepository) ListByProviderRange(
	ctx context.Context,
	providerID uuid.UUID,
	from, to time.Time,
	limit, offset int,
) ([]SlotWithBooking, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.TimeSlot{}).
		Where("provider_id = ?", providerID).
		Where("starts_at >= ? AND ends_at <= ?", from, to).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Table("time_slots").
		Select(`time_slots.id AS slot_id, time_slots.schedule_id AS schedule_id,
			time_slots.provider_id AS provider_id, time_slots.service_id AS slot_service_id,
			time_slots.starts_at AS starts_at, time_slots.ends_at AS ends_at,
			time_slots.status AS slot_status,
			bookings.id AS booking_id, bookings.client_id AS client_id,
			bookings.status AS booking_status, bookings.service_id AS bk_service_id,
			bookings.provider_name AS provider_name, bookings.service_name AS service_name,
			bookings.created_at AS booking_created_at,
			bookings.cancelled_at AS cancelled_at, bookings.comment AS comment`).
		Joins("LEFT JOIN bookings ON bookings.slot_id = time_slots.id AND bookings.status <> ?", model.BookingStatusCancelled).
		Where("time_slots.provider_id = ?", providerID).
		Where("time_slots.starts_at >= ? AND time_slots.ends_at <= ?", from, to).
		Order("time_slots.starts_at ASC")

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var rows []slotBookingRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]SlotWithBooking, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toSlotWithBooking())
	}
	return out, total, nil
}

func (r *GormSlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *GormSlotRepository) Create(ctx context.Context, slot *model.TimeSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *GormSlotRepository) HasOverlapping(ctx context.Context, providerID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&model.TimeSlot{}).
		Where("provider_id = ?", providerID).
		Where("status <> ?", model.TimeSlotStatusCancelled).
		Where("starts_at < ? AND ends_at > ?", end, start)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
