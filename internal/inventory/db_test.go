package inventory

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/warehousedev/inventory-service/pkg/db/models"
	"github.com/warehousedev/inventory-service/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Inventory{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return conn
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func conditionPtr(c enums.Condition) *enums.Condition {
	return &c
}
