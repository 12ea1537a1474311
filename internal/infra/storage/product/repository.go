package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/PJ-BookingService/internal/domain"
	"github.com/m04kA/PJ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PJ-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// productColumns полный набор колонок таблицы products
var productColumns = []string{
	"id",
	"title",
	"slug",
	"price_per_day",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения продуктов каталога
// Продукты принадлежат каталогу, сервис бронирований их только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория продуктов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает активный продукт по ID
// Неактивные продукты недоступны для бронирования, поэтому считаются не найденными
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	product, err := scanProduct(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan product: %v", ErrScanRow, err)
	}

	return product, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProduct сканирует одну строку в продукт
func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	var pricePerDay sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&product.ID,
		&product.Title,
		&product.Slug,
		&pricePerDay,
		&product.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL цена = "цена по запросу"
	if pricePerDay.Valid {
		product.PricePerDay = &pricePerDay.Float64
	}

	product.CreatedAt = createdAt.Time
	product.UpdatedAt = updatedAt.Time

	return &product, nil
}
