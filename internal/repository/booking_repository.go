package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appomat/core/internal/model"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	// Бронирования клиента, окно фильтрует по времени слота, не по времени
	// создания записи.
	ListByClient(ctx context.Context, clientID uuid.UUID, from, to *time.Time, statuses []model.BookingStatus, limit, offset int) ([]model.Booking, int64, error)
	// Бронирования по провайдеру, та же семантика окна.
	ListByProvider(ctx context.Context, providerID uuid.UUID, from, to *time.Time, statuses []model.BookingStatus, limit, offset int) ([]model.Booking, int64, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Preload("Slot").
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *GormBookingRepository) ListByClient(
	ctx context.Context,
	clientID uuid.UUID,
	from, to *time.Time,
	statuses []model.BookingStatus,
	limit, offset int,
) ([]model.Booking, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Joins("JOIN time_slots ON time_slots.id = bookings.slot_id").
		Where("bookings.client_id = ?", clientID)
	return r.listWindow(q, from, to, statuses, limit, offset)
}

func (r *GormBookingRepository) ListByProvider(
	ctx context.Context,
	providerID uuid.UUID,
	from, to *time.Time,
	statuses []model.BookingStatus,
	limit, offset int,
) ([]model.Booking, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Joins("JOIN time_slots ON time_slots.id = bookings.slot_id").
		Where("bookings.provider_id = ?", providerID)
	return r.listWindow(q, from, to, statuses, limit, offset)
}

func (r *GormBookingRepository) listWindow(
	q *gorm.DB,
	from, to *time.Time,
	statuses []model.BookingStatus,
	limit, offset int,
) ([]model.Booking, int64, error) {
	if from != nil {
		q = q.Where("time_slots.starts_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("time_slots.starts_at < ?", *to)
	}
	if len(statuses) > 0 {
		q = q.Where("bookings.status IN ?", statuses)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var bookings []model.Booking
	err := q.Preload("Slot").
		Order("time_slots.starts_at ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}
