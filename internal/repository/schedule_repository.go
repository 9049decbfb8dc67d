package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appomat/core/internal/model"
)

type ScheduleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]model.Schedule, int64, error)
	Create(ctx context.Context, schedule *model.Schedule) error
	Update(ctx context.Context, schedule *model.Schedule) error
	// Удаляет шаблон. Уже материализованные слоты остаются, у них
	// обнуляется ссылка на шаблон.
	Delete(ctx context.Context, id uuid.UUID) error
}

type GormScheduleRepository struct {
	db *gorm.DB
}

func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

func (r *GormScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.db.WithContext(ctx).First(&schedule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *GormScheduleRepository) ListByProvider(ctx context.Context, providerID uuid.UUID, limit, offset int) ([]model.Schedule, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("provider_id = ?", providerID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var schedules []model.Schedule
	if err := q.Order("created_at ASC").Find(&schedules).Error; err != nil {
		return nil, 0, err
	}
	return schedules, total, nil
}

func (r *GormScheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *GormScheduleRepository) Update(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *GormScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.TimeSlot{}).
			Where("schedule_id = ?", id).
			Update("schedule_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&model.Schedule{}, "id = ?", id).Error
	})
}
