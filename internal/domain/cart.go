package domain

import "time"

// CartLineKey уникальный ключ позиции корзины
// Один и тот же продукт на разные даты - разные позиции,
// поэтому ключ - структурный кортеж, а не форматированная строка
type CartLineKey struct {
	ProductID int64
	StartDate time.Time
	EndDate   time.Time
}

// CartLineItem позиция корзины: продукт на запрошенный диапазон дат
// Живет только в сессии, в хранилище попадает при оформлении
type CartLineItem struct {
	ProductID    int64
	ProductTitle string
	StartDate    time.Time
	EndDate      time.Time
	PricePerDay  *float64 // Цена на момент добавления, nil = цена по запросу
	Subtotal     float64  // PricePerDay * DurationDays, 0 при цене по запросу
	AddedAt      time.Time
}

// Key возвращает ключ позиции
func (i *CartLineItem) Key() CartLineKey {
	return CartLineKey{
		ProductID: i.ProductID,
		StartDate: DateOnly(i.StartDate),
		EndDate:   DateOnly(i.EndDate),
	}
}

// DurationDays returns the inclusive day count of the requested range
func (i *CartLineItem) DurationDays() int {
	days, err := DurationDays(i.StartDate, i.EndDate)
	if err != nil {
		return 0
	}
	return days
}

// Cart корзина одной сессии: упорядоченный набор позиций
// Порядок добавления сохраняется, доступ по ключу - через индекс
type Cart struct {
	items []CartLineItem
	index map[CartLineKey]int
}

// NewCart создает пустую корзину
func NewCart() *Cart {
	return &Cart{
		items: make([]CartLineItem, 0),
		index: make(map[CartLineKey]int),
	}
}

// Add добавляет позицию в корзину
// Повторное добавление того же продукта на те же даты заменяет позицию
func (c *Cart) Add(item CartLineItem) {
	item.StartDate = DateOnly(item.StartDate)
	item.EndDate = DateOnly(item.EndDate)

	key := item.Key()
	if pos, ok := c.index[key]; ok {
		c.items[pos] = item
		return
	}

	c.index[key] = len(c.items)
	c.items = append(c.items, item)
}

// Get возвращает позицию по ключу
func (c *Cart) Get(key CartLineKey) (CartLineItem, bool) {
	pos, ok := c.index[key]
	if !ok {
		return CartLineItem{}, false
	}
	return c.items[pos], true
}

// Remove удаляет позицию по ключу
// Возвращает false, если позиции не было
func (c *Cart) Remove(key CartLineKey) bool {
	pos, ok := c.index[key]
	if !ok {
		return false
	}

	c.items = append(c.items[:pos], c.items[pos+1:]...)
	delete(c.index, key)

	// Переиндексируем позиции после удаленной
	for i := pos; i < len(c.items); i++ {
		c.index[c.items[i].Key()] = i
	}

	return true
}

// Items возвращает позиции в порядке добавления
func (c *Cart) Items() []CartLineItem {
	result := make([]CartLineItem, len(c.items))
	copy(result, c.items)
	return result
}

// Len возвращает количество позиций
func (c *Cart) Len() int {
	return len(c.items)
}

// Total возвращает сумму подытогов всех позиций
// Позиции с ценой по запросу дают 0
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Subtotal
	}
	return total
}

// Clear удаляет все позиции
func (c *Cart) Clear() {
	c.items = c.items[:0]
	c.index = make(map[CartLineKey]int)
}
