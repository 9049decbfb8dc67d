package calendar

import (
	"testing"
	"time"
)

func TestExpandWeekTemplate_TwoWeekdaysTwoWeeks(t *testing.T) {
	tpl := WeekTemplate{
		Weekdays: []int{1, 3}, // вторник и четверг
		Times:    []string{"10:00"},
		DateFrom: mustTime(t, 2025, 1, 6, 0, 0),
		DateTo:   mustTime(t, 2025, 1, 20, 0, 0),
		Duration: time.Hour,
	}

	got, err := ExpandWeekTemplate(tpl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []TimeRange{
		{Start: mustTime(t, 2025, 1, 7, 10, 0), End: mustTime(t, 2025, 1, 7, 11, 0)},
		{Start: mustTime(t, 2025, 1, 9, 10, 0), End: mustTime(t, 2025, 1, 9, 11, 0)},
		{Start: mustTime(t, 2025, 1, 14, 10, 0), End: mustTime(t, 2025, 1, 14, 11, 0)},
		{Start: mustTime(t, 2025, 1, 16, 10, 0), End: mustTime(t, 2025, 1, 16, 11, 0)},
	}
	if !equalTimeRangeSlices(got, expected) {
		t.Fatalf("expected %+v, got %+v", expected, got)
	}
}

func TestExpandWeekTemplate_TimesSortedWithinDay(t *testing.T) {
	tpl := WeekTemplate{
		Weekdays: []int{0},
		Times:    []string{"15:00", "09:00"},
		DateFrom: mustTime(t, 2025, 3, 3, 0, 0),
		DateTo:   mustTime(t, 2025, 3, 4, 0, 0),
		Duration: 30 * time.Minute,
	}

	got, err := ExpandWeekTemplate(tpl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(got))
	}
	if !got[0].Start.Before(got[1].Start) {
		t.Fatalf("ranges out of order: %v then %v", got[0].Start, got[1].Start)
	}
}

// Отрицательное смещение пояса не сдвигает календарную дату границ.
func TestExpandWeekTemplate_NegativeOffsetKeepsDate(t *testing.T) {
	tpl := WeekTemplate{
		Weekdays:    []int{0}, // понедельник
		Times:       []string{"09:00"},
		DateFrom:    mustTime(t, 2025, 3, 3, 0, 0),
		DateTo:      mustTime(t, 2025, 3, 4, 0, 0),
		Duration:    time.Hour,
		TZOffsetMin: -300, // UTC-5
	}

	got, err := ExpandWeekTemplate(tpl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 range, got %d", len(got))
	}
	// 09:00 при UTC-5 это 14:00 UTC того же понедельника.
	want := mustTime(t, 2025, 3, 3, 14, 0)
	if !got[0].Start.Equal(want) {
		t.Fatalf("start = %v, want %v", got[0].Start, want)
	}
}

func TestExpandWeekTemplate_EmptyRange(t *testing.T) {
	tpl := WeekTemplate{
		Weekdays: []int{0},
		Times:    []string{"09:00"},
		DateFrom: mustTime(t, 2025, 3, 3, 0, 0),
		DateTo:   mustTime(t, 2025, 3, 3, 0, 0),
		Duration: time.Hour,
	}

	got, err := ExpandWeekTemplate(tpl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestExpandWeekTemplate_Invalid(t *testing.T) {
	base := WeekTemplate{
		Weekdays: []int{0},
		Times:    []string{"09:00"},
		DateFrom: mustTime(t, 2025, 3, 3, 0, 0),
		DateTo:   mustTime(t, 2025, 3, 10, 0, 0),
		Duration: time.Hour,
	}

	noDays := base
	noDays.Weekdays = nil
	if _, err := ExpandWeekTemplate(noDays); err == nil {
		t.Fatalf("expected error for empty weekdays")
	}

	badDay := base
	badDay.Weekdays = []int{7}
	if _, err := ExpandWeekTemplate(badDay); err == nil {
		t.Fatalf("expected error for weekday out of range")
	}

	badTime := base
	badTime.Times = []string{"25:00"}
	if _, err := ExpandWeekTemplate(badTime); err == nil {
		t.Fatalf("expected error for unparsable time")
	}

	badDuration := base
	badDuration.Duration = 0
	if _, err := ExpandWeekTemplate(badDuration); err != ErrSlotDuration {
		t.Fatalf("expected ErrSlotDuration, got %v", err)
	}
}
