package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/appomat/core/internal/config"
	"github.com/appomat/core/internal/model"
	"github.com/appomat/core/internal/repository"
)

// Схема для SQLite: та же структура, что и в Postgres, включая частичные
// уникальные индексы, на которые опираются транзакции бронирования.
var testSchema = []string{
	`CREATE TABLE providers (
		id TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		description TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE services (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		default_duration_min INTEGER,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE provider_services (
		provider_id TEXT NOT NULL,
		service_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		PRIMARY KEY (provider_id, service_id)
	);`,
	`CREATE TABLE schedules (
		id TEXT PRIMARY KEY,
		provider_id TEXT NOT NULL,
		service_id TEXT,
		start_date DATE,
		end_date DATE,
		time_zone TEXT NOT NULL DEFAULT 'UTC',
		rules TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE TABLE time_slots (
		id TEXT PRIMARY KEY,
		schedule_id TEXT,
		provider_id TEXT NOT NULL,
		service_id TEXT,
		starts_at DATETIME NOT NULL,
		ends_at DATETIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'planned',
		created_at DATETIME,
		updated_at DATETIME
	);`,
	`CREATE UNIQUE INDEX ux_slots_provider_start
		ON time_slots (provider_id, starts_at)
		WHERE status <> 'cancelled';`,
	`CREATE TABLE bookings (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		slot_id TEXT NOT NULL,
		provider_id TEXT NOT NULL,
		service_id TEXT,
		provider_name TEXT,
		service_name TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME,
		cancelled_at DATETIME,
		comment TEXT
	);`,
	`CREATE UNIQUE INDEX ux_bookings_active_slot
		ON bookings (slot_id)
		WHERE status <> 'cancelled';`,
	`CREATE TABLE events (
		id TEXT PRIMARY KEY,
		event_type TEXT NOT NULL,
		created_at DATETIME,
		booking_id TEXT,
		slot_id TEXT,
		provider_id TEXT,
		details TEXT
	);`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	for _, stmt := range testSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func newTestService(t *testing.T, db *gorm.DB) *CalendarService {
	t.Helper()
	cfg := &config.Config{
		RejectOverlappingSlots: false,
		PendingBookingTTL:      30 * time.Minute,
	}
	return NewCalendarService(
		db,
		zap.NewNop(),
		cfg,
		repository.NewGormSlotRepository(db),
		repository.NewGormBookingRepository(db),
		repository.NewGormServiceRepository(db),
		repository.NewGormProviderRepository(db),
		repository.NewGormScheduleRepository(db),
	)
}

func pbTime(t time.Time) *timestamppb.Timestamp {
	return timestamppb.New(t)
}

func seedProvider(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	p := model.Provider{ID: uuid.New(), DisplayName: name}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed provider: %v", err)
	}
	return p.ID
}

func seedService(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	s := model.Service{ID: uuid.New(), Name: name, IsActive: true}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return s.ID
}

func linkProviderService(t *testing.T, db *gorm.DB, providerID, serviceID uuid.UUID) {
	t.Helper()
	link := model.ProviderService{ProviderID: providerID, ServiceID: serviceID}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("link provider service: %v", err)
	}
}

func seedSlot(t *testing.T, db *gorm.DB, providerID uuid.UUID, serviceID *uuid.UUID, startsAt time.Time, status model.TimeSlotStatus) uuid.UUID {
	t.Helper()
	slot := model.TimeSlot{
		ID:         uuid.New(),
		ProviderID: providerID,
		ServiceID:  serviceID,
		StartsAt:   startsAt,
		EndsAt:     startsAt.Add(30 * time.Minute),
		Status:     status,
	}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	return slot.ID
}
