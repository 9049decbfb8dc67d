package calendar

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func equalTimeRange(a, b TimeRange) bool {
	return a.Start.Equal(b.Start) && a.End.Equal(b.End)
}

func equalTimeRangeSlices(a, b []TimeRange) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalTimeRange(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestNormalizeTimeRange_SwappedBounds(t *testing.T) {
	start := mustTime(t, 2025, 1, 1, 12, 0)
	end := mustTime(t, 2025, 1, 1, 10, 0)

	tr, err := NormalizeTimeRange(start, end, time.UTC, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !tr.Start.Equal(end) || !tr.End.Equal(start) {
		t.Fatalf("expected Start=%v End=%v, got %v", end, start, tr)
	}
}

func TestNormalizeTimeRange_MaxDuration(t *testing.T) {
	start := mustTime(t, 2025, 1, 1, 10, 0)
	end := mustTime(t, 2025, 1, 1, 15, 0)
	maxDuration := 2 * time.Hour

	tr, err := NormalizeTimeRange(start, end, time.UTC, maxDuration)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dur := tr.End.Sub(tr.Start); dur != maxDuration {
		t.Fatalf("expected duration %v, got %v", maxDuration, dur)
	}
}

func TestNormalizeTimeRange_InvalidZero(t *testing.T) {
	if _, err := NormalizeTimeRange(time.Time{}, time.Time{}, time.UTC, 0); err == nil {
		t.Fatalf("expected error for zero times, got nil")
	}
}

func TestSplitToTimeSlots_Basic(t *testing.T) {
	tr := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 10, 0),
		End:   mustTime(t, 2025, 1, 1, 12, 0),
	}

	slots, err := SplitToTimeSlots(tr, 30*time.Minute, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []TimeRange{
		{Start: mustTime(t, 2025, 1, 1, 10, 0), End: mustTime(t, 2025, 1, 1, 10, 30)},
		{Start: mustTime(t, 2025, 1, 1, 10, 30), End: mustTime(t, 2025, 1, 1, 11, 0)},
		{Start: mustTime(t, 2025, 1, 1, 11, 0), End: mustTime(t, 2025, 1, 1, 11, 30)},
		{Start: mustTime(t, 2025, 1, 1, 11, 30), End: mustTime(t, 2025, 1, 1, 12, 0)},
	}
	if !equalTimeRangeSlices(slots, expected) {
		t.Fatalf("expected %+v, got %+v", expected, slots)
	}
}

func TestSplitToTimeSlots_TailDropped(t *testing.T) {
	tr := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 10, 0),
		End:   mustTime(t, 2025, 1, 1, 11, 10),
	}

	slots, err := SplitToTimeSlots(tr, 30*time.Minute, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
}

func TestSplitToTimeSlots_Aligned(t *testing.T) {
	tr := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 10, 10),
		End:   mustTime(t, 2025, 1, 1, 11, 30),
	}

	slots, err := SplitToTimeSlots(tr, 30*time.Minute, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatalf("expected slots, got none")
	}
	if !slots[0].Start.Equal(mustTime(t, 2025, 1, 1, 10, 15)) {
		t.Fatalf("expected aligned start 10:15, got %v", slots[0].Start)
	}
}

func TestSplitToTimeSlots_BadDuration(t *testing.T) {
	tr := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 10, 0),
		End:   mustTime(t, 2025, 1, 1, 12, 0),
	}
	if _, err := SplitToTimeSlots(tr, 0, 0); err != ErrSlotDuration {
		t.Fatalf("expected ErrSlotDuration, got %v", err)
	}
}

func TestHasOverlap_HalfOpen(t *testing.T) {
	existing := []TimeRange{
		{Start: mustTime(t, 2025, 1, 1, 10, 0), End: mustTime(t, 2025, 1, 1, 11, 0)},
	}

	// Касание концами при полуоткрытых интервалах не пересечение.
	touching := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 11, 0),
		End:   mustTime(t, 2025, 1, 1, 12, 0),
	}
	if ok, _ := HasOverlap(touching, existing, false); ok {
		t.Fatalf("touching ranges must not overlap in half-open mode")
	}
	if ok, _ := HasOverlap(touching, existing, true); !ok {
		t.Fatalf("touching ranges must overlap in inclusive mode")
	}

	crossing := TimeRange{
		Start: mustTime(t, 2025, 1, 1, 10, 30),
		End:   mustTime(t, 2025, 1, 1, 11, 30),
	}
	ok, conflicts := HasOverlap(crossing, existing, false)
	if !ok || len(conflicts) != 1 {
		t.Fatalf("crossing range must conflict, got ok=%v conflicts=%d", ok, len(conflicts))
	}
}
