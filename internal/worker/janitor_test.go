package worker

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/appomat/core/internal/model"
)

func newJanitorDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	schema := []string{
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
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func seedBooking(t *testing.T, db *gorm.DB, status model.BookingStatus, createdAt time.Time) (uuid.UUID, uuid.UUID) {
	t.Helper()

	slot := model.TimeSlot{
		ID:         uuid.New(),
		ProviderID: uuid.New(),
		StartsAt:   time.Now().UTC().Add(24 * time.Hour),
		EndsAt:     time.Now().UTC().Add(25 * time.Hour),
		Status:     model.TimeSlotStatusBooked,
	}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	booking := model.Booking{
		ID:         uuid.New(),
		ClientID:   uuid.New(),
		SlotID:     slot.ID,
		ProviderID: slot.ProviderID,
		Status:     status,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	// Время создания задаётся напрямую: GORM проставил бы now().
	if err := db.Model(&model.Booking{}).Where("id = ?", booking.ID).Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("set created_at: %v", err)
	}
	return booking.ID, slot.ID
}

func TestExpirePending_CancelsStaleAndFreesSlot(t *testing.T) {
	db := newJanitorDB(t)
	j := NewJanitor(db, zap.NewNop(), 30*time.Minute)

	stale := time.Now().UTC().Add(-time.Hour)
	bookingID, slotID := seedBooking(t, db, model.BookingStatusPending, stale)

	expired, err := j.ExpirePending(context.Background())
	if err != nil {
		t.Fatalf("ExpirePending: %v", err)
	}
	if expired != 1 {
		t.Fatalf("expired = %d, want 1", expired)
	}

	var b model.Booking
	if err := db.First(&b, "id = ?", bookingID.String()).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if b.Status != model.BookingStatusCancelled {
		t.Fatalf("booking status = %s, want cancelled", b.Status)
	}
	if b.CancelledAt == nil {
		t.Fatalf("cancelled_at not set")
	}

	var slot model.TimeSlot
	if err := db.First(&slot, "id = ?", slotID.String()).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if slot.Status != model.TimeSlotStatusPlanned {
		t.Fatalf("slot status = %s, want planned", slot.Status)
	}

	var events int64
	if err := db.Model(&model.Event{}).Where("event_type = ?", model.EventTypeBookingExpired).Count(&events).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if events != 1 {
		t.Fatalf("expired events = %d, want 1", events)
	}
}

func TestExpirePending_LeavesFreshAndConfirmed(t *testing.T) {
	db := newJanitorDB(t)
	j := NewJanitor(db, zap.NewNop(), 30*time.Minute)

	fresh := time.Now().UTC().Add(-time.Minute)
	freshID, _ := seedBooking(t, db, model.BookingStatusPending, fresh)

	old := time.Now().UTC().Add(-2 * time.Hour)
	confirmedID, confirmedSlot := seedBooking(t, db, model.BookingStatusConfirmed, old)

	expired, err := j.ExpirePending(context.Background())
	if err != nil {
		t.Fatalf("ExpirePending: %v", err)
	}
	if expired != 0 {
		t.Fatalf("expired = %d, want 0", expired)
	}

	var b model.Booking
	if err := db.First(&b, "id = ?", freshID.String()).Error; err != nil {
		t.Fatalf("load fresh booking: %v", err)
	}
	if b.Status != model.BookingStatusPending {
		t.Fatalf("fresh booking status = %s, want pending", b.Status)
	}

	var confirmed model.Booking
	if err := db.First(&confirmed, "id = ?", confirmedID.String()).Error; err != nil {
		t.Fatalf("load confirmed booking: %v", err)
	}
	if confirmed.Status != model.BookingStatusConfirmed {
		t.Fatalf("confirmed booking status = %s, want confirmed", confirmed.Status)
	}

	var slot model.TimeSlot
	if err := db.First(&slot, "id = ?", confirmedSlot.String()).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if slot.Status != model.TimeSlotStatusBooked {
		t.Fatalf("confirmed slot status = %s, want booked", slot.Status)
	}
}
