package service

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	calendarpb "github.com/appomat/core/internal/api/calendar/v1"
	commonpb "github.com/appomat/core/internal/api/common/v1"
	"github.com/appomat/core/internal/model"
)

func weeklySchedule(t *testing.T, svc *CalendarService, providerID string) string {
	t.Helper()

	resp, err := svc.CreateProviderSchedule(context.Background(), &calendarpb.CreateProviderScheduleRequest{
		ProviderId: providerID,
		Schedule: &commonpb.ProviderSchedule{
			TimeZone:  "UTC",
			StartDate: pbTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
			EndDate:   pbTime(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
			Rule: &commonpb.ScheduleRule{
				Frequency:   commonpb.RecurrenceFrequency_RECURRENCE_FREQUENCY_WEEKLY,
				Interval:    1,
				Weekdays:    []int32{2, 4}, // вторник и четверг
				StartsAt:    pbTime(time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)),
				DurationMin: 60,
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateProviderSchedule: %v", err)
	}
	return resp.GetSchedule().GetId()
}

func TestExpandSchedule_WeeklyInsideWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	scheduleID := weeklySchedule(t, svc, providerID.String())

	resp, err := svc.ExpandSchedule(ctx, &calendarpb.ExpandScheduleRequest{
		ScheduleId:  scheduleID,
		WindowStart: pbTime(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
		WindowEnd:   pbTime(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("ExpandSchedule: %v", err)
	}

	want := []time.Time{
		time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 9, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 14, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
	}
	if len(resp.GetIntervals()) != len(want) {
		t.Fatalf("intervals = %d, want %d", len(resp.GetIntervals()), len(want))
	}
	for i, iv := range resp.GetIntervals() {
		if !iv.GetStart().AsTime().Equal(want[i]) {
			t.Fatalf("interval[%d] = %v, want %v", i, iv.GetStart().AsTime(), want[i])
		}
		if got := iv.GetEnd().AsTime().Sub(iv.GetStart().AsTime()); got != time.Hour {
			t.Fatalf("interval[%d] duration = %v, want 1h", i, got)
		}
	}
}

// Развёртывание ничего не пишет в БД.
func TestExpandSchedule_IsPure(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	scheduleID := weeklySchedule(t, svc, providerID.String())

	_, err := svc.ExpandSchedule(ctx, &calendarpb.ExpandScheduleRequest{
		ScheduleId:  scheduleID,
		WindowStart: pbTime(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
		WindowEnd:   pbTime(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("ExpandSchedule: %v", err)
	}

	var slots int64
	if err := db.Model(&model.TimeSlot{}).Count(&slots).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if slots != 0 {
		t.Fatalf("slots = %d, want 0", slots)
	}
}

func TestMaterializeSchedule_CreatesSlotsIdempotently(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	scheduleID := weeklySchedule(t, svc, providerID.String())

	req := &calendarpb.MaterializeScheduleRequest{
		ScheduleId:  scheduleID,
		WindowStart: pbTime(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
		WindowEnd:   pbTime(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
	}

	first, err := svc.MaterializeSchedule(ctx, req)
	if err != nil {
		t.Fatalf("MaterializeSchedule: %v", err)
	}
	if len(first.GetSlots()) != 4 || len(first.GetFailures()) != 0 {
		t.Fatalf("first run: slots=%d failures=%d, want 4/0", len(first.GetSlots()), len(first.GetFailures()))
	}

	// Слоты привязаны к шаблону.
	var linked int64
	if err := db.Model(&model.TimeSlot{}).Where("schedule_id = ?", scheduleID).Count(&linked).Error; err != nil {
		t.Fatalf("count linked: %v", err)
	}
	if linked != 4 {
		t.Fatalf("linked slots = %d, want 4", linked)
	}

	second, err := svc.MaterializeSchedule(ctx, req)
	if err != nil {
		t.Fatalf("repeat MaterializeSchedule: %v", err)
	}
	if len(second.GetSlots()) != 0 || len(second.GetFailures()) != 4 {
		t.Fatalf("second run: slots=%d failures=%d, want 0/4", len(second.GetSlots()), len(second.GetFailures()))
	}

	var total int64
	if err := db.Model(&model.TimeSlot{}).Count(&total).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if total != 4 {
		t.Fatalf("slots in db = %d, want 4", total)
	}
}

// Окно материализации сужается границами действия шаблона.
func TestMaterializeSchedule_WindowClampedByEndDate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")

	created, err := svc.CreateProviderSchedule(ctx, &calendarpb.CreateProviderScheduleRequest{
		ProviderId: providerID.String(),
		Schedule: &commonpb.ProviderSchedule{
			TimeZone:  "UTC",
			StartDate: pbTime(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
			EndDate:   pbTime(time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)),
			Rule: &commonpb.ScheduleRule{
				Frequency:   commonpb.RecurrenceFrequency_RECURRENCE_FREQUENCY_DAILY,
				Interval:    1,
				StartsAt:    pbTime(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)),
				DurationMin: 30,
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateProviderSchedule: %v", err)
	}

	resp, err := svc.MaterializeSchedule(ctx, &calendarpb.MaterializeScheduleRequest{
		ScheduleId:  created.GetSchedule().GetId(),
		WindowStart: pbTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		WindowEnd:   pbTime(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("MaterializeSchedule: %v", err)
	}
	// 6, 7, 8, 9 января: end_date включительно.
	if len(resp.GetSlots()) != 4 {
		t.Fatalf("slots = %d, want 4", len(resp.GetSlots()))
	}
}

func TestDeleteProviderSchedule_KeepsMaterializedSlots(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	scheduleID := weeklySchedule(t, svc, providerID.String())

	if _, err := svc.MaterializeSchedule(ctx, &calendarpb.MaterializeScheduleRequest{
		ScheduleId:  scheduleID,
		WindowStart: pbTime(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
		WindowEnd:   pbTime(time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)),
	}); err != nil {
		t.Fatalf("MaterializeSchedule: %v", err)
	}

	if _, err := svc.DeleteProviderSchedule(ctx, &calendarpb.DeleteProviderScheduleRequest{
		ScheduleId: scheduleID,
	}); err != nil {
		t.Fatalf("DeleteProviderSchedule: %v", err)
	}

	var schedules int64
	if err := db.Model(&model.Schedule{}).Count(&schedules).Error; err != nil {
		t.Fatalf("count schedules: %v", err)
	}
	if schedules != 0 {
		t.Fatalf("schedules = %d, want 0", schedules)
	}

	var slots []model.TimeSlot
	if err := db.Find(&slots).Error; err != nil {
		t.Fatalf("load slots: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(slots))
	}
	for _, slot := range slots {
		if slot.ScheduleID != nil {
			t.Fatalf("slot %s still references deleted schedule", slot.ID)
		}
	}
}

// Обновление заменяет правило и пояс, сохраняя владельца; новое правило
// видно в следующем развёртывании.
func TestUpdateProviderSchedule_ReplacesRule(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	scheduleID := weeklySchedule(t, svc, providerID.String())

	updated, err := svc.UpdateProviderSchedule(ctx, &calendarpb.UpdateProviderScheduleRequest{
		ScheduleId: scheduleID,
		Schedule: &commonpb.ProviderSchedule{
			TimeZone:  "UTC",
			StartDate: pbTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
			EndDate:   pbTime(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
			Rule: &commonpb.ScheduleRule{
				Frequency:   commonpb.RecurrenceFrequency_RECURRENCE_FREQUENCY_WEEKLY,
				Interval:    1,
				Weekdays:    []int32{1}, // только понедельник
				StartsAt:    pbTime(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)),
				DurationMin: 30,
			},
		},
	})
	if err != nil {
		t.Fatalf("UpdateProviderSchedule: %v", err)
	}
	if updated.GetSchedule().GetProviderId() != providerID.String() {
		t.Fatalf("provider = %s, want %s", updated.GetSchedule().GetProviderId(), providerID)
	}

	resp, err := svc.ExpandSchedule(ctx, &calendarpb.ExpandScheduleRequest{
		ScheduleId:  scheduleID,
		WindowStart: pbTime(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)),
		WindowEnd:   pbTime(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("ExpandSchedule: %v", err)
	}
	want := []time.Time{
		time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC),
	}
	if len(resp.GetIntervals()) != len(want) {
		t.Fatalf("intervals = %d, want %d", len(resp.GetIntervals()), len(want))
	}
	for i, iv := range resp.GetIntervals() {
		if !iv.GetStart().AsTime().Equal(want[i]) {
			t.Fatalf("interval[%d] = %v, want %v", i, iv.GetStart().AsTime(), want[i])
		}
	}
}

func TestUpdateProviderSchedule_OwnerChangeRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	anna := seedProvider(t, db, "Anna")
	boris := seedProvider(t, db, "Boris")
	scheduleID := weeklySchedule(t, svc, anna.String())

	_, err := svc.UpdateProviderSchedule(ctx, &calendarpb.UpdateProviderScheduleRequest{
		ScheduleId: scheduleID,
		Schedule: &commonpb.ProviderSchedule{
			ProviderId: boris.String(),
			TimeZone:   "UTC",
			Rule: &commonpb.ScheduleRule{
				Frequency:   commonpb.RecurrenceFrequency_RECURRENCE_FREQUENCY_DAILY,
				Interval:    1,
				StartsAt:    pbTime(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)),
				DurationMin: 30,
			},
		},
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("code = %v, want PermissionDenied", status.Code(err))
	}
}

func TestListProviderSchedules_RoundTripsRule(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	scheduleID := weeklySchedule(t, svc, providerID.String())

	resp, err := svc.ListProviderSchedules(ctx, &calendarpb.ListProviderSchedulesRequest{
		ProviderId: providerID.String(),
	})
	if err != nil {
		t.Fatalf("ListProviderSchedules: %v", err)
	}
	if len(resp.GetSchedules()) != 1 {
		t.Fatalf("schedules = %d, want 1", len(resp.GetSchedules()))
	}

	got := resp.GetSchedules()[0]
	if got.GetId() != scheduleID {
		t.Fatalf("id = %s, want %s", got.GetId(), scheduleID)
	}
	rule := got.GetRule()
	if rule.GetFrequency() != commonpb.RecurrenceFrequency_RECURRENCE_FREQUENCY_WEEKLY {
		t.Fatalf("frequency = %v, want WEEKLY", rule.GetFrequency())
	}
	if len(rule.GetWeekdays()) != 2 || rule.GetWeekdays()[0] != 2 || rule.GetWeekdays()[1] != 4 {
		t.Fatalf("weekdays = %v, want [2 4]", rule.GetWeekdays())
	}
	if rule.GetDurationMin() != 60 {
		t.Fatalf("duration_min = %d, want 60", rule.GetDurationMin())
	}
}
