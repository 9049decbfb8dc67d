package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/appomat/core/internal/model"
)

// Janitor периодически отменяет просроченные неподтверждённые бронирования:
// pending старше TTL переводится в cancelled, его слот возвращается в
// planned. Расписание задаётся cron-выражением.
type Janitor struct {
	db   *gorm.DB
	log  *zap.Logger
	ttl  time.Duration
	cron *cron.Cron
}

func NewJanitor(db *gorm.DB, log *zap.Logger, ttl time.Duration) *Janitor {
	return &Janitor{
		db:  db,
		log: log,
		ttl: ttl,
	}
}

// Start регистрирует задачу по cron-выражению и запускает планировщик.
func (j *Janitor) Start(schedule string) error {
	j.cron = cron.New()
	_, err := j.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := j.ExpirePending(ctx); err != nil {
			j.log.Error("janitor run failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	j.cron.Start()
	j.log.Info("janitor started", zap.String("schedule", schedule), zap.Duration("ttl", j.ttl))
	return nil
}

func (j *Janitor) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// ExpirePending отменяет pending-бронирования старше TTL. Каждое
// бронирование обрабатывается своей транзакцией: сбой одного не мешает
// остальным. Возвращает количество отменённых.
func (j *Janitor) ExpirePending(ctx context.Context) (int, error) {
	deadline := time.Now().UTC().Add(-j.ttl)

	var stale []model.Booking
	err := j.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", model.BookingStatusPending, deadline).
		Find(&stale).Error
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range stale {
		b := &stale[i]
		err := j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			now := time.Now().UTC()
			res := tx.Model(&model.Booking{}).
				Where("id = ? AND status = ?", b.ID, model.BookingStatusPending).
				Updates(map[string]any{
					"status":       model.BookingStatusCancelled,
					"cancelled_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			// Кто-то успел подтвердить или отменить, бронирование больше
			// не наше.
			if res.RowsAffected == 0 {
				return nil
			}

			err := tx.Model(&model.TimeSlot{}).
				Where("id = ? AND status = ?", b.SlotID, model.TimeSlotStatusBooked).
				Update("status", model.TimeSlotStatusPlanned).Error
			if err != nil {
				return err
			}

			ev := model.Event{
				EventType:  model.EventTypeBookingExpired,
				BookingID:  &b.ID,
				SlotID:     &b.SlotID,
				ProviderID: &b.ProviderID,
				Details:    "pending booking expired",
			}
			if err := tx.Create(&ev).Error; err != nil {
				return err
			}
			expired++
			return nil
		})
		if err != nil {
			j.log.Error("expire booking failed",
				zap.String("booking_id", b.ID.String()), zap.Error(err))
		}
	}

	if expired > 0 {
		j.log.Info("expired pending bookings", zap.Int("count", expired))
	}
	return expired, nil
}
