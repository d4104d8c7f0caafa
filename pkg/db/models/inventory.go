package models

import (
	"time"

	"github.com/warehousedev/inventory-service/pkg/enums"
)

// Inventory tracks the quantity on hand for one (product, condition) line.
// restock_level is nullable; the business rule that it only means anything
// for NEW condition lives in the service layer, not the schema.
type Inventory struct {
	ProductID    int             `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	Condition    enums.Condition `gorm:"column:condition;primaryKey"`
	Quantity     int             `gorm:"column:quantity;not null"`
	RestockLevel *int            `gorm:"column:restock_level"`
	Available    bool            `gorm:"column:available;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name GORM would otherwise pluralize differently.
func (Inventory) TableName() string {
	return "inventory"
}
