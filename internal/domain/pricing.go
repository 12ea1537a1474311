package domain

import (
	"math"
	"time"
)

// ComputeTotal вычисляет полную стоимость аренды за инклюзивный диапазон дат
// Если цена за день не указана или не положительна - это "цена по запросу",
// возвращается 0, сумма согласовывается вручную
// Результат округляется до 2 знаков (минорные единицы валюты)
func ComputeTotal(pricePerDay *float64, start, end time.Time) (float64, error) {
	days, err := DurationDays(start, end)
	if err != nil {
		return 0, err
	}

	if pricePerDay == nil || *pricePerDay <= 0 {
		return 0, nil
	}

	total := *pricePerDay * float64(days)
	return math.Round(total*100) / 100, nil
}
