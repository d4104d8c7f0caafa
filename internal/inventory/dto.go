package inventory

import "github.com/warehousedev/inventory-service/pkg/db/models"

// InventoryDTO is the wire representation of one inventory line. Every field
// is always present; restock_level serializes as null when unset.
type InventoryDTO struct {
	ProductID    int    `json:"product_id"`
	Condition    string `json:"condition"`
	Quantity     int    `json:"quantity"`
	RestockLevel *int   `json:"restock_level"`
	Available    bool   `json:"available"`
}

func toDTO(record *models.Inventory) *InventoryDTO {
	return &InventoryDTO{
		ProductID:    record.ProductID,
		Condition:    record.Condition.String(),
		Quantity:     record.Quantity,
		RestockLevel: record.RestockLevel,
		Available:    record.Available,
	}
}

func toDTOs(records []models.Inventory) []InventoryDTO {
	dtos := make([]InventoryDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *toDTO(&records[i]))
	}
	return dtos
}
