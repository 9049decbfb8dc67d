package calendar

import (
	"errors"
	"time"
)

type RecurrenceFrequency int

const (
	FreqDaily RecurrenceFrequency = iota
	FreqWeekly
)

type RecurringRule struct {
	Freq      RecurrenceFrequency
	Interval  int            // шаг: каждые Interval дней/недель (>=1)
	Weekdays  []time.Weekday // для FreqWeekly
	StartTime time.Time      // начальное начало слота
	Duration  time.Duration  // длительность слота
	Until     *time.Time     // опционально: дата/время окончания
	Count     *int           // опционально: максимальное количество повторений
	// Исключения по датам (используем дату без времени).
	Exceptions map[time.Time]struct{}
}

// ExpandRecurringRule разворачивает правило повторений в набор интервалов
// внутри окна window. Интервалы, полностью лежащие вне window, отбрасываются.
//
// Для FreqWeekly перебор идёт по дням: день попадает в выдачу, если его день
// недели входит в Weekdays (пустой набор — день недели StartTime) и неделя
// относительно StartTime кратна Interval.
func ExpandRecurringRule(rule RecurringRule, window TimeRange) ([]TimeRange, error) {
	if rule.Duration <= 0 {
		return nil, errors.New("recurring rule: duration must be positive")
	}
	if rule.Interval <= 0 {
		rule.Interval = 1
	}
	if rule.StartTime.IsZero() {
		return nil, errors.New("recurring rule: StartTime is required")
	}
	if !window.End.After(window.Start) {
		return []TimeRange{}, nil
	}

	weekdays := rule.Weekdays
	if rule.Freq == FreqWeekly && len(weekdays) == 0 {
		weekdays = []time.Weekday{rule.StartTime.Weekday()}
	}

	var result []TimeRange
	countGenerated := 0

	for cur := rule.StartTime; ; cur = cur.AddDate(0, 0, dayStep(rule)) {
		if rule.Until != nil && cur.After(*rule.Until) {
			break
		}
		if rule.Count != nil && countGenerated >= *rule.Count {
			break
		}
		// Дальнейшие повторения точно будут дальше окна.
		if cur.After(window.End) {
			break
		}

		if rule.Freq == FreqWeekly {
			if !containsWeekday(weekdays, cur.Weekday()) {
				continue
			}
			if weeksBetween(rule.StartTime, cur)%rule.Interval != 0 {
				continue
			}
		}

		if isException(rule, cur) {
			continue
		}

		occ := TimeRange{Start: cur, End: cur.Add(rule.Duration)}
		if rangesOverlap(occ, window, false) {
			result = append(result, occ)
			countGenerated++
		}
	}

	return result, nil
}

// dayStep — шаг перебора в днях: Interval для daily, сутки для weekly
// (недельный интервал учитывается фильтром weeksBetween).
func dayStep(rule RecurringRule) int {
	if rule.Freq == FreqDaily {
		return rule.Interval
	}
	return 1
}

// weeksBetween — число полных календарных недель (Пн-Вс) между датами.
func weeksBetween(start, cur time.Time) int {
	s := startOfISOWeek(start)
	c := startOfISOWeek(cur)
	return int(c.Sub(s).Hours() / (24 * 7))
}

func startOfISOWeek(t time.Time) time.Time {
	d := dateOnly(t)
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7 // воскресенье
	}
	return d.AddDate(0, 0, -(wd - 1))
}

func containsWeekday(list []time.Weekday, w time.Weekday) bool {
	for _, d := range list {
		if d == w {
			return true
		}
	}
	return false
}

func isException(rule RecurringRule, t time.Time) bool {
	if rule.Exceptions == nil {
		return false
	}
	day := dateOnly(t)
	_, ok := rule.Exceptions[day]
	return ok
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
