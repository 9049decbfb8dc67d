package calendar

import (
	"testing"
	"time"
)

func TestExpandRecurringRule_Daily(t *testing.T) {
	rule := RecurringRule{
		Freq:      FreqDaily,
		Interval:  1,
		StartTime: mustTime(t, 2025, 1, 6, 9, 0),
		Duration:  30 * time.Minute,
	}
	window := TimeRange{
		Start: mustTime(t, 2025, 1, 6, 0, 0),
		End:   mustTime(t, 2025, 1, 9, 0, 0),
	}

	got, err := ExpandRecurringRule(rule, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []TimeRange{
		{Start: mustTime(t, 2025, 1, 6, 9, 0), End: mustTime(t, 2025, 1, 6, 9, 30)},
		{Start: mustTime(t, 2025, 1, 7, 9, 0), End: mustTime(t, 2025, 1, 7, 9, 30)},
		{Start: mustTime(t, 2025, 1, 8, 9, 0), End: mustTime(t, 2025, 1, 8, 9, 30)},
	}
	if !equalTimeRangeSlices(got, expected) {
		t.Fatalf("expected %+v, got %+v", expected, got)
	}
}

func TestExpandRecurringRule_DailyInterval(t *testing.T) {
	rule := RecurringRule{
		Freq:      FreqDaily,
		Interval:  2,
		StartTime: mustTime(t, 2025, 1, 6, 9, 0),
		Duration:  time.Hour,
	}
	window := TimeRange{
		Start: mustTime(t, 2025, 1, 6, 0, 0),
		End:   mustTime(t, 2025, 1, 11, 0, 0),
	}

	got, err := ExpandRecurringRule(rule, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 6, 8, 10 января.
	if len(got) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(got))
	}
	if !got[1].Start.Equal(mustTime(t, 2025, 1, 8, 9, 0)) {
		t.Fatalf("second occurrence = %v, want Jan 8", got[1].Start)
	}
}

// Несколько дней недели в одном правиле: каждый подходящий день попадает
// в выдачу, а не только день недели StartTime.
func TestExpandRecurringRule_WeeklyMultipleWeekdays(t *testing.T) {
	rule := RecurringRule{
		Freq:      FreqWeekly,
		Interval:  1,
		Weekdays:  []time.Weekday{time.Tuesday, time.Thursday},
		StartTime: mustTime(t, 2025, 1, 6, 10, 0), // понедельник
		Duration:  time.Hour,
	}
	window := TimeRange{
		Start: mustTime(t, 2025, 1, 6, 0, 0),
		End:   mustTime(t, 2025, 1, 20, 0, 0),
	}

	got, err := ExpandRecurringRule(rule, window)
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

func TestExpandRecurringRule_WeeklyInterval2(t *testing.T) {
	rule := RecurringRule{
		Freq:      FreqWeekly,
		Interval:  2,
		Weekdays:  []time.Weekday{time.Monday},
		StartTime: mustTime(t, 2025, 1, 6, 10, 0),
		Duration:  time.Hour,
	}
	window := TimeRange{
		Start: mustTime(t, 2025, 1, 6, 0, 0),
		End:   mustTime(t, 2025, 2, 3, 0, 0),
	}

	got, err := ExpandRecurringRule(rule, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 6 и 20 января: неделя 13-го пропущена.
	if len(got) != 2 {
		t.Fatalf("expected 2 occurrences, got %d: %+v", len(got), got)
	}
	if !got[1].Start.Equal(mustTime(t, 2025, 1, 20, 10, 0)) {
		t.Fatalf("second occurrence = %v, want Jan 20", got[1].Start)
	}
}

func TestExpandRecurringRule_Count(t *testing.T) {
	count := 2
	rule := RecurringRule{
		Freq:      FreqDaily,
		Interval:  1,
		StartTime: mustTime(t, 2025, 1, 6, 9, 0),
		Duration:  time.Hour,
		Count:     &count,
	}
	window := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 0, 0),
		End:   mustTime(t, 2025, 2, 1, 0, 0),
	}

	got, err := ExpandRecurringRule(rule, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != count {
		t.Fatalf("expected %d occurrences, got %d", count, len(got))
	}
}

func TestExpandRecurringRule_Until(t *testing.T) {
	until := mustTime(t, 2025, 1, 8, 0, 0)
	rule := RecurringRule{
		Freq:      FreqDaily,
		Interval:  1,
		StartTime: mustTime(t, 2025, 1, 6, 9, 0),
		Duration:  time.Hour,
		Until:     &until,
	}
	window := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 0, 0),
		End:   mustTime(t, 2025, 2, 1, 0, 0),
	}

	got, err := ExpandRecurringRule(rule, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 6 и 7 января: 8-е уже после until.
	if len(got) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(got))
	}
}

func TestExpandRecurringRule_Exceptions(t *testing.T) {
	rule := RecurringRule{
		Freq:      FreqDaily,
		Interval:  1,
		StartTime: mustTime(t, 2025, 1, 6, 9, 0),
		Duration:  time.Hour,
		Exceptions: map[time.Time]struct{}{
			mustTime(t, 2025, 1, 7, 0, 0): {},
		},
	}
	window := TimeRange{
		Start: mustTime(t, 2025, 1, 6, 0, 0),
		End:   mustTime(t, 2025, 1, 9, 0, 0),
	}

	got, err := ExpandRecurringRule(rule, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 6 и 8 января: 7-е исключено.
	if len(got) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(got))
	}
	for _, tr := range got {
		if tr.Start.Day() == 7 {
			t.Fatalf("exception date leaked into result: %v", tr.Start)
		}
	}
}

func TestExpandRecurringRule_EmptyWindow(t *testing.T) {
	rule := RecurringRule{
		Freq:      FreqDaily,
		Interval:  1,
		StartTime: mustTime(t, 2025, 1, 6, 9, 0),
		Duration:  time.Hour,
	}
	window := TimeRange{
		Start: mustTime(t, 2025, 1, 6, 0, 0),
		End:   mustTime(t, 2025, 1, 6, 0, 0),
	}

	got, err := ExpandRecurringRule(rule, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
