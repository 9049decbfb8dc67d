package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	calendarpb "github.com/appomat/core/internal/api/calendar/v1"
	commonpb "github.com/appomat/core/internal/api/common/v1"
	"github.com/appomat/core/internal/model"
)

func futureStart() time.Time {
	return time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
}

func TestCreateBooking_BooksFreeSlot(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	serviceID := seedService(t, db, "Consultation")
	linkProviderService(t, db, providerID, serviceID)
	slotID := seedSlot(t, db, providerID, &serviceID, futureStart(), model.TimeSlotStatusPlanned)
	clientID := uuid.New()

	resp, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: clientID.String(),
		SlotId:   slotID.String(),
		Comment:  "first visit",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	b := resp.GetBooking()
	if b.GetStatus() != commonpb.BookingStatus_BOOKING_STATUS_PENDING {
		t.Fatalf("status = %v, want PENDING", b.GetStatus())
	}
	if b.GetProviderName() != "Anna" || b.GetServiceName() != "Consultation" {
		t.Fatalf("snapshot names = %q/%q", b.GetProviderName(), b.GetServiceName())
	}

	var slot model.TimeSlot
	if err := db.First(&slot, "id = ?", slotID.String()).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if slot.Status != model.TimeSlotStatusBooked {
		t.Fatalf("slot status = %s, want booked", slot.Status)
	}

	var events int64
	if err := db.Model(&model.Event{}).Where("event_type = ?", model.EventTypeBookingCreated).Count(&events).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if events != 1 {
		t.Fatalf("booking_created events = %d, want 1", events)
	}
}

func TestCreateBooking_SecondClientLoses(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	slotID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)

	first, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	})
	if err != nil {
		t.Fatalf("first CreateBooking: %v", err)
	}

	_, err = svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("second CreateBooking code = %v, want AlreadyExists", status.Code(err))
	}

	// Победившее бронирование не задето.
	var b model.Booking
	if err := db.First(&b, "id = ?", first.GetBooking().GetId()).Error; err != nil {
		t.Fatalf("load booking: %v", err)
	}
	if b.Status != model.BookingStatusPending {
		t.Fatalf("winner status = %s, want pending", b.Status)
	}
}

func TestCreateBooking_PastSlotRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	providerID := seedProvider(t, db, "Anna")
	past := time.Now().UTC().Add(-time.Hour)
	slotID := seedSlot(t, db, providerID, nil, past, model.TimeSlotStatusPlanned)

	_, err := svc.CreateBooking(context.Background(), &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want FailedPrecondition", status.Code(err))
	}
}

func TestCancelBooking_FreesSlotAndAllowsRebooking(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	slotID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)

	created, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	cancelled, err := svc.CancelBooking(ctx, &calendarpb.CancelBookingRequest{
		BookingId: created.GetBooking().GetId(),
		Reason:    "client asked",
	})
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if cancelled.GetBooking().GetStatus() != commonpb.BookingStatus_BOOKING_STATUS_CANCELLED {
		t.Fatalf("status = %v, want CANCELLED", cancelled.GetBooking().GetStatus())
	}
	if cancelled.GetBooking().GetCancelledAt() == nil {
		t.Fatalf("cancelled_at not set")
	}

	var slot model.TimeSlot
	if err := db.First(&slot, "id = ?", slotID.String()).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if slot.Status != model.TimeSlotStatusPlanned {
		t.Fatalf("slot status = %s, want planned", slot.Status)
	}

	// Слот снова доступен другому клиенту.
	if _, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	}); err != nil {
		t.Fatalf("rebooking after cancel: %v", err)
	}
}

func TestCancelBooking_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	slotID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)

	created, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	bookingID := created.GetBooking().GetId()

	if _, err := svc.CancelBooking(ctx, &calendarpb.CancelBookingRequest{BookingId: bookingID}); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	second, err := svc.CancelBooking(ctx, &calendarpb.CancelBookingRequest{BookingId: bookingID})
	if err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if second.GetBooking().GetStatus() != commonpb.BookingStatus_BOOKING_STATUS_CANCELLED {
		t.Fatalf("status = %v, want CANCELLED", second.GetBooking().GetStatus())
	}
}

// Отмена не воскрешает слот, отменённый вместе со слотом: освобождение
// срабатывает только из статуса booked.
func TestCancelBooking_DoesNotResurrectCancelledSlot(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	slotID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusCancelled)

	booking := model.Booking{
		ID:         uuid.New(),
		ClientID:   uuid.New(),
		SlotID:     slotID,
		ProviderID: providerID,
		Status:     model.BookingStatusConfirmed,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	if _, err := svc.CancelBooking(ctx, &calendarpb.CancelBookingRequest{BookingId: booking.ID.String()}); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	var slot model.TimeSlot
	if err := db.First(&slot, "id = ?", slotID.String()).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if slot.Status != model.TimeSlotStatusCancelled {
		t.Fatalf("slot status = %s, want cancelled", slot.Status)
	}
}

func TestConfirmBooking_PendingToConfirmedAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	slotID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)

	created, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	bookingID := created.GetBooking().GetId()

	first, err := svc.ConfirmBooking(ctx, &calendarpb.ConfirmBookingRequest{BookingId: bookingID})
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	if first.GetBooking().GetStatus() != commonpb.BookingStatus_BOOKING_STATUS_CONFIRMED {
		t.Fatalf("status = %v, want CONFIRMED", first.GetBooking().GetStatus())
	}

	second, err := svc.ConfirmBooking(ctx, &calendarpb.ConfirmBookingRequest{BookingId: bookingID})
	if err != nil {
		t.Fatalf("repeat ConfirmBooking: %v", err)
	}
	if second.GetBooking().GetStatus() != commonpb.BookingStatus_BOOKING_STATUS_CONFIRMED {
		t.Fatalf("repeat status = %v, want CONFIRMED", second.GetBooking().GetStatus())
	}
}

func TestConfirmBooking_CancelledFails(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	slotID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)

	created, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	bookingID := created.GetBooking().GetId()

	if _, err := svc.CancelBooking(ctx, &calendarpb.CancelBookingRequest{BookingId: bookingID}); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	_, err = svc.ConfirmBooking(ctx, &calendarpb.ConfirmBookingRequest{BookingId: bookingID})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want FailedPrecondition", status.Code(err))
	}
}

func TestCheckAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	freeID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)
	bookedID := seedSlot(t, db, providerID, nil, futureStart().Add(time.Hour), model.TimeSlotStatusBooked)

	resp, err := svc.CheckAvailability(ctx, &calendarpb.CheckAvailabilityRequest{SlotId: freeID.String()})
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if !resp.GetAvailable() {
		t.Fatalf("free slot reported unavailable: %s", resp.GetReason())
	}

	resp, err = svc.CheckAvailability(ctx, &calendarpb.CheckAvailabilityRequest{SlotId: bookedID.String()})
	if err != nil {
		t.Fatalf("CheckAvailability booked: %v", err)
	}
	if resp.GetAvailable() {
		t.Fatalf("booked slot reported available")
	}

	resp, err = svc.CheckAvailability(ctx, &calendarpb.CheckAvailabilityRequest{SlotId: uuid.NewString()})
	if err != nil {
		t.Fatalf("CheckAvailability missing: %v", err)
	}
	if resp.GetAvailable() {
		t.Fatalf("missing slot reported available")
	}
}

func TestCheckAvailability_ClientTimeConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	anna := seedProvider(t, db, "Anna")
	boris := seedProvider(t, db, "Boris")
	start := futureStart()
	clientID := uuid.New()

	// Клиент уже записан к Анне на это же время.
	annaSlot := seedSlot(t, db, anna, nil, start, model.TimeSlotStatusPlanned)
	if _, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: clientID.String(),
		SlotId:   annaSlot.String(),
	}); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	overlapping := seedSlot(t, db, boris, nil, start.Add(10*time.Minute), model.TimeSlotStatusPlanned)
	resp, err := svc.CheckAvailability(ctx, &calendarpb.CheckAvailabilityRequest{
		ClientId: clientID.String(),
		SlotId:   overlapping.String(),
	})
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if resp.GetAvailable() {
		t.Fatalf("overlapping slot reported available")
	}
	if resp.GetReason() != "client has conflicting booking" {
		t.Fatalf("reason = %q", resp.GetReason())
	}

	// Другой клиент конфликта не имеет.
	resp, err = svc.CheckAvailability(ctx, &calendarpb.CheckAvailabilityRequest{
		ClientId: uuid.NewString(),
		SlotId:   overlapping.String(),
	})
	if err != nil {
		t.Fatalf("CheckAvailability other client: %v", err)
	}
	if !resp.GetAvailable() {
		t.Fatalf("other client blocked: %s", resp.GetReason())
	}
}

// Снимок имён в бронировании не меняется при последующих правках каталога.
func TestBookingSnapshot_SurvivesCatalogEdits(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	serviceID := seedService(t, db, "Consultation")
	linkProviderService(t, db, providerID, serviceID)
	slotID := seedSlot(t, db, providerID, &serviceID, futureStart(), model.TimeSlotStatusPlanned)

	created, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if err := db.Model(&model.Provider{}).Where("id = ?", providerID).Update("display_name", "Renamed").Error; err != nil {
		t.Fatalf("rename provider: %v", err)
	}
	if err := db.Model(&model.Service{}).Where("id = ?", serviceID).Update("name", "Renamed Service").Error; err != nil {
		t.Fatalf("rename service: %v", err)
	}

	got, err := svc.GetBooking(ctx, &calendarpb.GetBookingRequest{BookingId: created.GetBooking().GetId()})
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if got.GetBooking().GetProviderName() != "Anna" {
		t.Fatalf("provider_name = %q, want snapshot Anna", got.GetBooking().GetProviderName())
	}
	if got.GetBooking().GetServiceName() != "Consultation" {
		t.Fatalf("service_name = %q, want snapshot Consultation", got.GetBooking().GetServiceName())
	}
}

func TestListBookings_WindowFiltersBySlotStart(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	clientID := uuid.New()

	near := futureStart()
	far := futureStart().Add(14 * 24 * time.Hour)
	nearSlot := seedSlot(t, db, providerID, nil, near, model.TimeSlotStatusPlanned)
	farSlot := seedSlot(t, db, providerID, nil, far, model.TimeSlotStatusPlanned)

	for _, slotID := range []uuid.UUID{nearSlot, farSlot} {
		if _, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
			ClientId: clientID.String(),
			SlotId:   slotID.String(),
		}); err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
	}

	resp, err := svc.ListBookings(ctx, &calendarpb.ListBookingsRequest{
		ClientId: clientID.String(),
		From:     pbTime(near.Add(-time.Hour)),
		To:       pbTime(near.Add(time.Hour)),
	})
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if resp.GetTotalCount() != 1 || len(resp.GetBookings()) != 1 {
		t.Fatalf("total = %d, len = %d, want 1/1", resp.GetTotalCount(), len(resp.GetBookings()))
	}
	if resp.GetBookings()[0].GetSlotId() != nearSlot.String() {
		t.Fatalf("unexpected booking slot %s", resp.GetBookings()[0].GetSlotId())
	}
	if resp.GetBookings()[0].GetStartsAt() == nil {
		t.Fatalf("starts_at not filled from slot")
	}
}
