package calendar

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrEmptyWeekTemplate = errors.New("week template: weekdays and times must not be empty")

// WeekTemplate — недельный шаблон слотов: дни недели × времена начала,
// применяемый к диапазону дат [DateFrom, DateTo).
type WeekTemplate struct {
	// 0-6, где 0 — понедельник.
	Weekdays []int
	// Времена начала в локальном поясе, формат "HH:MM".
	Times []string
	// Только дата; время игнорируется.
	DateFrom time.Time
	// Исключающая граница.
	DateTo      time.Time
	Duration    time.Duration
	TZOffsetMin int
}

// ExpandWeekTemplate разворачивает шаблон в упорядоченный набор интервалов.
// Локальные моменты (дата + время при смещении TZOffsetMin) конвертируются
// в UTC. Ошибка — только на пустом/нечитаемом шаблоне; пустой диапазон дат
// даёт пустой результат.
func ExpandWeekTemplate(t WeekTemplate) ([]TimeRange, error) {
	if t.Duration <= 0 {
		return nil, ErrSlotDuration
	}

	weekdays := make(map[int]struct{}, len(t.Weekdays))
	for _, d := range t.Weekdays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("week template: weekday %d out of range 0-6", d)
		}
		weekdays[d] = struct{}{}
	}

	times := make([]time.Time, 0, len(t.Times))
	for _, raw := range t.Times {
		parsed, err := time.Parse("15:04", raw)
		if err != nil {
			return nil, fmt.Errorf("week template: bad time %q: %w", raw, err)
		}
		times = append(times, parsed)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	if len(weekdays) == 0 || len(times) == 0 {
		return nil, ErrEmptyWeekTemplate
	}

	loc := time.FixedZone("local", t.TZOffsetMin*60)

	// Границы диапазона — календарные даты; берём их по UTC, чтобы смещение
	// пояса не сдвигало дату на соседний день.
	from := dateOnly(t.DateFrom.UTC())
	to := dateOnly(t.DateTo.UTC())

	var result []TimeRange
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		if _, ok := weekdays[mondayIndex(day.Weekday())]; !ok {
			continue
		}
		for _, tm := range times {
			start := time.Date(day.Year(), day.Month(), day.Day(), tm.Hour(), tm.Minute(), 0, 0, loc)
			result = append(result, TimeRange{
				Start: start.UTC(),
				End:   start.Add(t.Duration).UTC(),
			})
		}
	}

	return result, nil
}

// mondayIndex переводит time.Weekday (воскресенье = 0) в индекс с
// понедельником в нуле, как в шаблоне.
func mondayIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}
