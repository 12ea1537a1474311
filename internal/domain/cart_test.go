package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func cartItem(productID int64, startDay, endDay int, subtotal float64) CartLineItem {
	return CartLineItem{
		ProductID: productID,
		StartDate: date(2025, 7, startDay),
		EndDate:   date(2025, 7, endDay),
		Subtotal:  subtotal,
	}
}

func TestCart_AddAndGet(t *testing.T) {
	cart := NewCart()

	cart.Add(cartItem(1, 10, 12, 450))

	item, ok := cart.Get(CartLineKey{ProductID: 1, StartDate: date(2025, 7, 10), EndDate: date(2025, 7, 12)})
	assert.True(t, ok)
	assert.Equal(t, 450.0, item.Subtotal)
	assert.Equal(t, 1, cart.Len())
}

func TestCart_SameProductDifferentDates(t *testing.T) {
	// Один продукт на разные даты - разные позиции
	cart := NewCart()

	cart.Add(cartItem(1, 10, 12, 450))
	cart.Add(cartItem(1, 20, 22, 450))

	assert.Equal(t, 2, cart.Len())
	assert.Equal(t, 900.0, cart.Total())
}

func TestCart_AddSameKeyReplaces(t *testing.T) {
	cart := NewCart()

	cart.Add(cartItem(1, 10, 12, 450))
	cart.Add(cartItem(1, 10, 12, 500))

	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 500.0, cart.Total())
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart()
	cart.Add(cartItem(1, 10, 12, 100))
	cart.Add(cartItem(2, 10, 12, 200))
	cart.Add(cartItem(3, 10, 12, 300))

	removed := cart.Remove(CartLineKey{ProductID: 2, StartDate: date(2025, 7, 10), EndDate: date(2025, 7, 12)})

	assert.True(t, removed)
	assert.Equal(t, 2, cart.Len())
	assert.Equal(t, 400.0, cart.Total())

	// Индекс пересчитан: оставшиеся позиции доступны по ключу
	_, ok := cart.Get(CartLineKey{ProductID: 3, StartDate: date(2025, 7, 10), EndDate: date(2025, 7, 12)})
	assert.True(t, ok)
}

func TestCart_RemoveMissing(t *testing.T) {
	cart := NewCart()

	removed := cart.Remove(CartLineKey{ProductID: 42, StartDate: date(2025, 7, 10), EndDate: date(2025, 7, 12)})

	assert.False(t, removed)
}

func TestCart_ItemsPreserveOrder(t *testing.T) {
	cart := NewCart()
	cart.Add(cartItem(3, 10, 12, 1))
	cart.Add(cartItem(1, 10, 12, 2))
	cart.Add(cartItem(2, 10, 12, 3))

	items := cart.Items()

	assert.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ProductID)
	assert.Equal(t, int64(1), items[1].ProductID)
	assert.Equal(t, int64(2), items[2].ProductID)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.Add(cartItem(1, 10, 12, 100))
	cart.Add(cartItem(2, 10, 12, 200))

	cart.Clear()

	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartLineItem_KeyNormalizesDates(t *testing.T) {
	item := CartLineItem{
		ProductID: 1,
		StartDate: time.Date(2025, 7, 10, 14, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 12, 9, 15, 0, 0, time.UTC),
	}

	key := item.Key()

	assert.Equal(t, date(2025, 7, 10), key.StartDate)
	assert.Equal(t, date(2025, 7, 12), key.EndDate)
}
