package inventory

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/warehousedev/inventory-service/pkg/db/models"
	"github.com/warehousedev/inventory-service/pkg/enums"
)

// ListFilters holds the optional list predicates, combined with logical AND.
// Nil fields are not applied.
type ListFilters struct {
	ProductID    *int
	Condition    *enums.Condition
	Quantity     *int
	QuantityLow  *int
	QuantityHigh *int
	RestockLevel *int
	Available    *bool
}

// Empty reports whether no predicate is set.
func (f ListFilters) Empty() bool {
	return f.ProductID == nil &&
		f.Condition == nil &&
		f.Quantity == nil &&
		f.QuantityLow == nil &&
		f.QuantityHigh == nil &&
		f.RestockLevel == nil &&
		f.Available == nil
}

// Repository owns persistence for inventory rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new inventory row. A key collision surfaces as the
// driver's unique-violation error for the caller to classify.
func (r *Repository) Create(ctx context.Context, record *models.Inventory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Save persists the current state of an existing row.
func (r *Repository) Save(ctx context.Context, record *models.Inventory) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete removes the row for the composite key. Deleting an absent key is
// not an error.
func (r *Repository) Delete(ctx context.Context, productID int, condition enums.Condition) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND condition = ?", productID, condition).
		Delete(&models.Inventory{}).
		Error
}

// Find looks up the row for the composite key. Returns (nil, nil) when the
// key is absent; absence is a result, not an error.
func (r *Repository) Find(ctx context.Context, productID int, condition enums.Condition) (*models.Inventory, error) {
	var record models.Inventory
	err := r.db.WithContext(ctx).
		First(&record, "product_id = ? AND condition = ?", productID, condition).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// List returns every row matching the AND of the supplied filters, ordered by
// the primary key so results are deterministic for a fixed store state.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.Inventory, error) {
	qb := r.db.WithContext(ctx).Model(&models.Inventory{})

	if filters.ProductID != nil {
		qb = qb.Where("product_id = ?", *filters.ProductID)
	}
	if filters.Condition != nil {
		qb = qb.Where("condition = ?", *filters.Condition)
	}
	if filters.Quantity != nil {
		qb = qb.Where("quantity = ?", *filters.Quantity)
	}
	if filters.QuantityLow != nil {
		qb = qb.Where("quantity >= ?", *filters.QuantityLow)
	}
	if filters.QuantityHigh != nil {
		qb = qb.Where("quantity <= ?", *filters.QuantityHigh)
	}
	if filters.RestockLevel != nil {
		qb = qb.Where("restock_level = ?", *filters.RestockLevel)
	}
	if filters.Available != nil {
		qb = qb.Where("available = ?", *filters.Available)
	}

	var rows []models.Inventory
	err := qb.
		Order("product_id ASC").
		Order("condition ASC").
		Find(&rows).
		Error
	return rows, err
}
