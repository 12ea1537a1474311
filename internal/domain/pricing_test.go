package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	price := 150.0

	total, err := ComputeTotal(&price, date(2025, 7, 10), date(2025, 7, 12))

	assert.NoError(t, err)
	assert.Equal(t, 450.0, total) // 150 * 3 дня (включительно)
}

func TestComputeTotal_SingleDay(t *testing.T) {
	price := 99.5

	total, err := ComputeTotal(&price, date(2025, 7, 10), date(2025, 7, 10))

	assert.NoError(t, err)
	assert.Equal(t, 99.5, total)
}

func TestComputeTotal_PriceOnRequest(t *testing.T) {
	// Продукт без цены бронируется с нулевой стоимостью
	total, err := ComputeTotal(nil, date(2025, 7, 10), date(2025, 7, 12))

	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestComputeTotal_NonPositivePrice(t *testing.T) {
	zero := 0.0
	negative := -10.0

	total, err := ComputeTotal(&zero, date(2025, 7, 10), date(2025, 7, 12))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)

	total, err = ComputeTotal(&negative, date(2025, 7, 10), date(2025, 7, 12))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestComputeTotal_RoundsToCents(t *testing.T) {
	price := 33.335

	total, err := ComputeTotal(&price, date(2025, 7, 10), date(2025, 7, 12))

	assert.NoError(t, err)
	assert.Equal(t, 100.01, total) // 33.335 * 3 = 100.005 -> 100.01
}

func TestComputeTotal_InvalidRange(t *testing.T) {
	price := 100.0

	_, err := ComputeTotal(&price, date(2025, 7, 12), date(2025, 7, 10))

	assert.ErrorIs(t, err, ErrInvalidRange)
}
