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

func TestCreateSlot_DuplicateStartRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	start := futureStart()

	req := &calendarpb.CreateSlotRequest{
		ProviderId: providerID.String(),
		Range: &commonpb.TimeRange{
			Start: pbTime(start),
			End:   pbTime(start.Add(30 * time.Minute)),
		},
	}
	if _, err := svc.CreateSlot(ctx, req); err != nil {
		t.Fatalf("first CreateSlot: %v", err)
	}
	_, err := svc.CreateSlot(ctx, req)
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("duplicate CreateSlot code = %v, want AlreadyExists", status.Code(err))
	}
}

// После отмены слота тот же момент начала можно занять новым слотом:
// уникальный индекс не учитывает отменённые.
func TestCreateSlot_ReusesCancelledStart(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	start := futureStart()
	seedSlot(t, db, providerID, nil, start, model.TimeSlotStatusCancelled)

	_, err := svc.CreateSlot(ctx, &calendarpb.CreateSlotRequest{
		ProviderId: providerID.String(),
		Range: &commonpb.TimeRange{
			Start: pbTime(start),
			End:   pbTime(start.Add(30 * time.Minute)),
		},
	})
	if err != nil {
		t.Fatalf("CreateSlot over cancelled: %v", err)
	}
}

func TestCreateSlot_PastStartRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	start := time.Now().UTC().Add(-time.Hour)

	_, err := svc.CreateSlot(ctx, &calendarpb.CreateSlotRequest{
		ProviderId: providerID.String(),
		Range: &commonpb.TimeRange{
			Start: pbTime(start),
			End:   pbTime(start.Add(30 * time.Minute)),
		},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestUpdateSlot_StatusCancel(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	slotID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)

	resp, err := svc.UpdateSlot(ctx, &calendarpb.UpdateSlotRequest{
		SlotId: slotID.String(),
		Status: commonpb.SlotStatus_SLOT_STATUS_CANCELLED,
	})
	if err != nil {
		t.Fatalf("UpdateSlot: %v", err)
	}
	if resp.GetSlot().GetStatus() != commonpb.SlotStatus_SLOT_STATUS_CANCELLED {
		t.Fatalf("status = %v, want cancelled", resp.GetSlot().GetStatus())
	}

	// Забронированный слот нельзя напрямую сделать свободным.
	bookedID := seedSlot(t, db, providerID, nil, futureStart().Add(time.Hour), model.TimeSlotStatusBooked)
	_, err = svc.UpdateSlot(ctx, &calendarpb.UpdateSlotRequest{
		SlotId: bookedID.String(),
		Status: commonpb.SlotStatus_SLOT_STATUS_FREE,
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want FailedPrecondition", status.Code(err))
	}
}

func TestUpdateSlot_CancelWithActiveBookingBlocks(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	slotID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)

	if _, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	}); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	_, err := svc.UpdateSlot(ctx, &calendarpb.UpdateSlotRequest{
		SlotId: slotID.String(),
		Status: commonpb.SlotStatus_SLOT_STATUS_CANCELLED,
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want FailedPrecondition", status.Code(err))
	}

	var slot model.TimeSlot
	if err := db.First(&slot, "id = ?", slotID.String()).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if slot.Status != model.TimeSlotStatusBooked {
		t.Fatalf("slot status = %s, want booked", slot.Status)
	}
}

func TestDeleteSlot_ActiveBookingBlocks(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	slotID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)

	if _, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   slotID.String(),
	}); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	_, err := svc.DeleteSlot(ctx, &calendarpb.DeleteSlotRequest{SlotId: slotID.String()})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want FailedPrecondition", status.Code(err))
	}
}

func TestDeleteSlot_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	slotID := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)

	if _, err := svc.DeleteSlot(ctx, &calendarpb.DeleteSlotRequest{SlotId: slotID.String()}); err != nil {
		t.Fatalf("first DeleteSlot: %v", err)
	}
	if _, err := svc.DeleteSlot(ctx, &calendarpb.DeleteSlotRequest{SlotId: slotID.String()}); err != nil {
		t.Fatalf("repeat DeleteSlot: %v", err)
	}

	var slot model.TimeSlot
	if err := db.First(&slot, "id = ?", slotID.String()).Error; err != nil {
		t.Fatalf("load slot: %v", err)
	}
	if slot.Status != model.TimeSlotStatusCancelled {
		t.Fatalf("slot status = %s, want cancelled", slot.Status)
	}
}

func TestUpdateSlot_BookedRangeChangeRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	start := futureStart()
	slotID := seedSlot(t, db, providerID, nil, start, model.TimeSlotStatusBooked)

	_, err := svc.UpdateSlot(ctx, &calendarpb.UpdateSlotRequest{
		SlotId: slotID.String(),
		Range: &commonpb.TimeRange{
			Start: pbTime(start.Add(time.Hour)),
			End:   pbTime(start.Add(90 * time.Minute)),
		},
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want FailedPrecondition", status.Code(err))
	}
}

func TestListFreeSlots_ExcludesOrphanedAndNonFree(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	offered := seedService(t, db, "Offered")
	dropped := seedService(t, db, "Dropped")
	linkProviderService(t, db, providerID, offered)

	base := futureStart()
	freeOffered := seedSlot(t, db, providerID, &offered, base, model.TimeSlotStatusPlanned)
	freeNoService := seedSlot(t, db, providerID, nil, base.Add(time.Hour), model.TimeSlotStatusPlanned)
	seedSlot(t, db, providerID, &dropped, base.Add(2*time.Hour), model.TimeSlotStatusPlanned)
	seedSlot(t, db, providerID, &offered, base.Add(3*time.Hour), model.TimeSlotStatusBooked)

	resp, err := svc.ListFreeSlots(ctx, &calendarpb.ListFreeSlotsRequest{
		ProviderId: providerID.String(),
		Start:      pbTime(base.Add(-time.Hour)),
		End:        pbTime(base.Add(5 * time.Hour)),
	})
	if err != nil {
		t.Fatalf("ListFreeSlots: %v", err)
	}

	if resp.GetTotalCount() != 2 {
		t.Fatalf("total = %d, want 2 (orphaned and booked excluded)", resp.GetTotalCount())
	}
	got := map[string]bool{}
	for _, s := range resp.GetSlots() {
		got[s.GetId()] = true
	}
	if !got[freeOffered.String()] || !got[freeNoService.String()] {
		t.Fatalf("unexpected slot set: %v", got)
	}
}

// Окно, уходящее в прошлое, не возвращает прошедшие свободные слоты:
// нижняя граница поднимается до текущего момента.
func TestListFreeSlots_ClampsWindowToNow(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	past := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Second)
	seedSlot(t, db, providerID, nil, past, model.TimeSlotStatusPlanned)
	future := seedSlot(t, db, providerID, nil, futureStart(), model.TimeSlotStatusPlanned)

	req := &calendarpb.ListFreeSlotsRequest{
		ProviderId: providerID.String(),
		Start:      pbTime(time.Now().UTC().Add(-24 * time.Hour)),
		End:        pbTime(time.Now().UTC().Add(48 * time.Hour)),
	}
	resp, err := svc.ListFreeSlots(ctx, req)
	if err != nil {
		t.Fatalf("ListFreeSlots: %v", err)
	}
	if resp.GetTotalCount() != 1 {
		t.Fatalf("total = %d, want 1 (past slot excluded)", resp.GetTotalCount())
	}
	if resp.GetSlots()[0].GetId() != future.String() {
		t.Fatalf("slot = %s, want %s", resp.GetSlots()[0].GetId(), future)
	}

	find, err := svc.FindFreeSlots(ctx, &calendarpb.FindFreeSlotsRequest{
		ProviderId: providerID.String(),
		Start:      req.GetStart(),
		End:        req.GetEnd(),
	})
	if err != nil {
		t.Fatalf("FindFreeSlots: %v", err)
	}
	if len(find.GetSlots()) != 1 || find.GetSlots()[0].GetId() != future.String() {
		t.Fatalf("FindFreeSlots returned past slot: %v", find.GetSlots())
	}
}

func TestListFreeSlots_PaginationTotals(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	base := futureStart()
	for i := 0; i < 5; i++ {
		seedSlot(t, db, providerID, nil, base.Add(time.Duration(i)*time.Hour), model.TimeSlotStatusPlanned)
	}

	resp, err := svc.ListFreeSlots(ctx, &calendarpb.ListFreeSlotsRequest{
		ProviderId: providerID.String(),
		Start:      pbTime(base.Add(-time.Hour)),
		End:        pbTime(base.Add(10 * time.Hour)),
		Page:       2,
		PageSize:   2,
	})
	if err != nil {
		t.Fatalf("ListFreeSlots: %v", err)
	}
	if resp.GetTotalCount() != 5 {
		t.Fatalf("total = %d, want 5", resp.GetTotalCount())
	}
	if len(resp.GetSlots()) != 2 {
		t.Fatalf("page len = %d, want 2", len(resp.GetSlots()))
	}
	// Страница 2 при размере 2: третий и четвёртый слоты по порядку начала.
	if !resp.GetSlots()[0].GetStartsAt().AsTime().Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("page start = %v, want %v", resp.GetSlots()[0].GetStartsAt().AsTime(), base.Add(2*time.Hour))
	}
}

func TestListProviderSlots_IncludesActiveBooking(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	base := futureStart()
	bookedSlot := seedSlot(t, db, providerID, nil, base, model.TimeSlotStatusPlanned)
	seedSlot(t, db, providerID, nil, base.Add(time.Hour), model.TimeSlotStatusPlanned)

	created, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: uuid.NewString(),
		SlotId:   bookedSlot.String(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	resp, err := svc.ListProviderSlots(ctx, &calendarpb.ListProviderSlotsRequest{
		ProviderId:      providerID.String(),
		From:            pbTime(base.Add(-time.Hour)),
		To:              pbTime(base.Add(3 * time.Hour)),
		IncludeBookings: true,
	})
	if err != nil {
		t.Fatalf("ListProviderSlots: %v", err)
	}
	if resp.GetTotalCount() != 2 {
		t.Fatalf("total = %d, want 2", resp.GetTotalCount())
	}

	var withBooking *calendarpb.SlotWithBooking
	for _, item := range resp.GetSlots() {
		if item.GetSlot().GetId() == bookedSlot.String() {
			withBooking = item
		} else if item.GetBooking() != nil {
			t.Fatalf("free slot carries booking")
		}
	}
	if withBooking == nil || withBooking.GetBooking() == nil {
		t.Fatalf("booked slot missing its booking")
	}
	if withBooking.GetBooking().GetId() != created.GetBooking().GetId() {
		t.Fatalf("booking id = %s, want %s", withBooking.GetBooking().GetId(), created.GetBooking().GetId())
	}
	if withBooking.GetSlot().GetStatus() != commonpb.SlotStatus_SLOT_STATUS_BOOKED {
		t.Fatalf("slot status = %v, want BOOKED", withBooking.GetSlot().GetStatus())
	}
}

// Недельный шаблон детерминирован: дни {вт, чт} на двух неделях дают
// ровно 4 слота.
func TestCreateWeekSlots_Deterministic(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")

	resp, err := svc.CreateWeekSlots(ctx, &calendarpb.CreateWeekSlotsRequest{
		ProviderId:  providerID.String(),
		Weekdays:    []int32{1, 3}, // вторник и четверг
		Times:       []string{"10:00"},
		DateFrom:    pbTime(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
		DateTo:      pbTime(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
		DurationMin: 60,
	})
	if err != nil {
		t.Fatalf("CreateWeekSlots: %v", err)
	}
	if len(resp.GetFailures()) != 0 {
		t.Fatalf("failures: %v", resp.GetFailures())
	}
	if len(resp.GetSlots()) != 4 {
		t.Fatalf("slots = %d, want 4", len(resp.GetSlots()))
	}

	want := []time.Time{
		time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 9, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
	}
	for i, slot := range resp.GetSlots() {
		if !slot.GetStartsAt().AsTime().Equal(want[i]) {
			t.Fatalf("slot[%d] = %v, want %v", i, slot.GetStartsAt().AsTime(), want[i])
		}
	}
}

// Повтор того же шаблона не создаёт дублей: конфликтные моменты уходят в
// failures, а не в ошибку всей операции.
func TestCreateWeekSlots_RepeatGoesToFailures(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	req := &calendarpb.CreateWeekSlotsRequest{
		ProviderId:  providerID.String(),
		Weekdays:    []int32{0},
		Times:       []string{"09:00", "09:30"},
		DateFrom:    pbTime(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)),
		DateTo:      pbTime(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		DurationMin: 30,
	}

	first, err := svc.CreateWeekSlots(ctx, req)
	if err != nil {
		t.Fatalf("first CreateWeekSlots: %v", err)
	}
	if len(first.GetSlots()) != 2 || len(first.GetFailures()) != 0 {
		t.Fatalf("first run: slots=%d failures=%d", len(first.GetSlots()), len(first.GetFailures()))
	}

	second, err := svc.CreateWeekSlots(ctx, req)
	if err != nil {
		t.Fatalf("second CreateWeekSlots: %v", err)
	}
	if len(second.GetSlots()) != 0 || len(second.GetFailures()) != 2 {
		t.Fatalf("second run: slots=%d failures=%d, want 0/2", len(second.GetSlots()), len(second.GetFailures()))
	}

	var total int64
	if err := db.Model(&model.TimeSlot{}).Count(&total).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if total != 2 {
		t.Fatalf("slots in db = %d, want 2", total)
	}
}

// Смещение пояса сдвигает момент начала в UTC.
func TestCreateWeekSlots_TZOffset(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")

	resp, err := svc.CreateWeekSlots(ctx, &calendarpb.CreateWeekSlotsRequest{
		ProviderId:  providerID.String(),
		Weekdays:    []int32{0},
		Times:       []string{"10:00"},
		DateFrom:    pbTime(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)),
		DateTo:      pbTime(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)),
		DurationMin: 60,
		TzOffsetMin: 180, // UTC+3
	})
	if err != nil {
		t.Fatalf("CreateWeekSlots: %v", err)
	}
	if len(resp.GetSlots()) != 1 {
		t.Fatalf("slots = %d, want 1", len(resp.GetSlots()))
	}
	want := time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC)
	if got := resp.GetSlots()[0].GetStartsAt().AsTime(); !got.Equal(want) {
		t.Fatalf("starts_at = %v, want %v", got, want)
	}
}

func TestBulkCancelProviderSlots_CancelsWindowAndReportsBookings(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	base := futureStart()
	clientID := uuid.New()

	bookedSlot := seedSlot(t, db, providerID, nil, base, model.TimeSlotStatusPlanned)
	seedSlot(t, db, providerID, nil, base.Add(time.Hour), model.TimeSlotStatusPlanned)
	outside := seedSlot(t, db, providerID, nil, base.Add(48*time.Hour), model.TimeSlotStatusPlanned)

	created, err := svc.CreateBooking(ctx, &calendarpb.CreateBookingRequest{
		ClientId: clientID.String(),
		SlotId:   bookedSlot.String(),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	resp, err := svc.BulkCancelProviderSlots(ctx, &calendarpb.BulkCancelProviderSlotsRequest{
		ProviderId: providerID.String(),
		Start:      pbTime(base.Add(-time.Hour)),
		End:        pbTime(base.Add(3 * time.Hour)),
		Reason:     "sick leave",
	})
	if err != nil {
		t.Fatalf("BulkCancelProviderSlots: %v", err)
	}

	if resp.GetCancelledSlots() != 2 {
		t.Fatalf("cancelled_slots = %d, want 2", resp.GetCancelledSlots())
	}
	if resp.GetCancelledBookings() != 1 {
		t.Fatalf("cancelled_bookings = %d, want 1", resp.GetCancelledBookings())
	}
	if len(resp.GetAffectedBookings()) != 1 {
		t.Fatalf("affected len = %d, want 1", len(resp.GetAffectedBookings()))
	}
	ab := resp.GetAffectedBookings()[0]
	if ab.GetBookingId() != created.GetBooking().GetId() {
		t.Fatalf("affected booking = %s, want %s", ab.GetBookingId(), created.GetBooking().GetId())
	}
	if ab.GetClientId() != clientID.String() {
		t.Fatalf("affected client = %s, want %s", ab.GetClientId(), clientID.String())
	}

	var slot model.TimeSlot
	if err := db.First(&slot, "id = ?", outside.String()).Error; err != nil {
		t.Fatalf("load outside slot: %v", err)
	}
	if slot.Status != model.TimeSlotStatusPlanned {
		t.Fatalf("outside slot status = %s, want planned", slot.Status)
	}
}
