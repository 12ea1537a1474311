package domain

import (
	"errors"
	"time"
)

// ErrInvalidRange возвращается, когда дата окончания раньше даты начала
var ErrInvalidRange = errors.New("domain: end date is before start date")

// DurationDays возвращает длительность аренды в днях
// Диапазон включает обе границы: 10.07 - 12.07 это 3 дня
func DurationDays(start, end time.Time) (int, error) {
	start = DateOnly(start)
	end = DateOnly(end)

	if end.Before(start) {
		return 0, ErrInvalidRange
	}

	return int(end.Sub(start).Hours()/24) + 1, nil
}

// RangesOverlap проверяет пересечение двух инклюзивных диапазонов дат
// Диапазоны пересекаются, если aStart <= bEnd И bStart <= aEnd
// Смежные диапазоны (01.08-05.08 и 06.08-10.08) НЕ пересекаются
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = DateOnly(aStart), DateOnly(aEnd)
	bStart, bEnd = DateOnly(bStart), DateOnly(bEnd)

	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// ExpandToDailyList разворачивает диапазон в список всех календарных дней
// от start до end включительно, по возрастанию
// Используется для денормализованного списка занятых дат во фронтенде
func ExpandToDailyList(start, end time.Time) []time.Time {
	start = DateOnly(start)
	end = DateOnly(end)

	if end.Before(start) {
		return []time.Time{}
	}

	days := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}

// DateOnly обнуляет время, оставляя только календарную дату в UTC
// Все даты бронирований сравниваются как целые дни
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
