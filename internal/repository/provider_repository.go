package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appomat/core/internal/model"
)

type ProviderRepository interface {
	// Провайдеры, опционально сузить по услуге в их актуальном наборе.
	List(ctx context.Context, serviceID *uuid.UUID, limit, offset int) ([]model.Provider, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Provider, error)
	Update(ctx context.Context, provider *model.Provider) error
	// Актуальный набор услуг провайдера.
	ListServices(ctx context.Context, providerID uuid.UUID) ([]model.Service, error)
	// Полная замена набора услуг провайдера одной транзакцией.
	ReplaceServices(ctx context.Context, providerID uuid.UUID, serviceIDs []uuid.UUID) error
}

type GormProviderRepository struct {
	db *gorm.DB
}

func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

func (r *GormProviderRepository) List(ctx context.Context, serviceID *uuid.UUID, limit, offset int) ([]model.Provider, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Provider{})
	if serviceID != nil {
		q = q.Joins("JOIN provider_services ON provider_services.provider_id = providers.id").
			Where("provider_services.service_id = ?", *serviceID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var providers []model.Provider
	if err := q.Order("providers.display_name ASC").Find(&providers).Error; err != nil {
		return nil, 0, err
	}
	return providers, total, nil
}

func (r *GormProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	var provider model.Provider
	if err := r.db.WithContext(ctx).First(&provider, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *GormProviderRepository) Update(ctx context.Context, provider *model.Provider) error {
	return r.db.WithContext(ctx).Save(provider).Error
}

func (r *GormProviderRepository) ListServices(ctx context.Context, providerID uuid.UUID) ([]model.Service, error) {
	var services []model.Service
	err := r.db.WithContext(ctx).
		Joins("JOIN provider_services ON provider_services.service_id = services.id").
		Where("provider_services.provider_id = ?", providerID).
		Order("services.name ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *GormProviderRepository) ReplaceServices(ctx context.Context, providerID uuid.UUID, serviceIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", providerID).Delete(&model.ProviderService{}).Error; err != nil {
			return err
		}
		for _, sid := range serviceIDs {
			link := model.ProviderService{ProviderID: providerID, ServiceID: sid}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
