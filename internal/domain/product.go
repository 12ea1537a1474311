package domain

import "time"

// Product represents a rental catalog item
// Owned by the catalog subsystem; this service only reads it
type Product struct {
	ID          int64
	Title       string
	Slug        string
	PricePerDay *float64 // nil = цена по запросу
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasFixedPrice returns true if the product has a positive per-day price
func (p *Product) HasFixedPrice() bool {
	return p.PricePerDay != nil && *p.PricePerDay > 0
}
