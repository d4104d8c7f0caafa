package inventory

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/warehousedev/inventory-service/pkg/db"
	"github.com/warehousedev/inventory-service/pkg/db/models"
	"github.com/warehousedev/inventory-service/pkg/enums"
	pkgerrors "github.com/warehousedev/inventory-service/pkg/errors"
)

// Service exposes the inventory resource operations.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]InventoryDTO, error)
	Create(ctx context.Context, input CreateInput) (*InventoryDTO, error)
	Get(ctx context.Context, productID int, condition enums.Condition) (*InventoryDTO, error)
	Update(ctx context.Context, productID int, condition enums.Condition, input UpdateInput) (*InventoryDTO, error)
	Delete(ctx context.Context, productID int, condition enums.Condition) error
	Activate(ctx context.Context, productID int, condition enums.Condition) (*InventoryDTO, error)
	Deactivate(ctx context.Context, productID int, condition enums.Condition) (*InventoryDTO, error)
}

// CreateInput holds the validated payload to create an inventory line.
type CreateInput struct {
	ProductID    int
	Condition    enums.Condition
	Quantity     int
	RestockLevel *int
	Available    bool
}

// UpdateInput holds the optional mutation fields for a partial update.
// AddedAmount takes precedence over Quantity when both are supplied.
type UpdateInput struct {
	Quantity     *int
	RestockLevel *int
	AddedAmount  *int
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs an inventory service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

// List returns every inventory line matching the filters, all lines when no
// filter is supplied.
func (s *service) List(ctx context.Context, filters ListFilters) ([]InventoryDTO, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list inventory")
	}
	return toDTOs(rows), nil
}

// Create inserts a new inventory line, rejecting duplicates of the composite
// (product_id, condition) key.
func (s *service) Create(ctx context.Context, input CreateInput) (*InventoryDTO, error) {
	if err := validateRestockLevel(input.Condition, input.RestockLevel); err != nil {
		return nil, err
	}

	existing, err := s.repo.Find(ctx, input.ProductID, input.Condition)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: lookup inventory")
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, conflictMessage(input.ProductID, input.Condition))
	}

	record := &models.Inventory{
		ProductID:    input.ProductID,
		Condition:    input.Condition,
		Quantity:     input.Quantity,
		RestockLevel: input.RestockLevel,
		Available:    input.Available,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		// The pre-check races with concurrent creates; the primary key
		// settles it.
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, conflictMessage(input.ProductID, input.Condition))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert inventory")
	}
	return toDTO(record), nil
}

// Get returns the inventory line for the composite key.
func (s *service) Get(ctx context.Context, productID int, condition enums.Condition) (*InventoryDTO, error) {
	record, err := s.repo.Find(ctx, productID, condition)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: lookup inventory")
	}
	if record == nil {
		return nil, notFound(productID, condition)
	}
	return toDTO(record), nil
}

// Update applies a partial update inside a single transaction so concurrent
// added_amount requests cannot lose increments.
func (s *service) Update(ctx context.Context, productID int, condition enums.Condition, input UpdateInput) (*InventoryDTO, error) {
	var updated *models.Inventory
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		record, err := txRepo.Find(ctx, productID, condition)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: lookup inventory")
		}
		if record == nil {
			return notFound(productID, condition)
		}

		switch {
		case input.AddedAmount != nil:
			next := record.Quantity + *input.AddedAmount
			if next < 0 {
				return pkgerrors.New(pkgerrors.CodeValidation,
					fmt.Sprintf("added_amount %d would drive quantity below zero", *input.AddedAmount))
			}
			record.Quantity = next
		case input.Quantity != nil:
			record.Quantity = *input.Quantity
		}

		if input.RestockLevel != nil {
			if err := validateRestockLevel(record.Condition, input.RestockLevel); err != nil {
				return err
			}
			record.RestockLevel = input.RestockLevel
		}

		if err := txRepo.Save(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: save inventory")
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(updated), nil
}

// Delete removes the line when present; deleting an absent key succeeds.
func (s *service) Delete(ctx context.Context, productID int, condition enums.Condition) error {
	if err := s.repo.Delete(ctx, productID, condition); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete inventory")
	}
	return nil
}

// Activate marks the line sellable. Activating an already-active line is a
// no-op success.
func (s *service) Activate(ctx context.Context, productID int, condition enums.Condition) (*InventoryDTO, error) {
	return s.setAvailability(ctx, productID, condition, true)
}

// Deactivate marks the line unsellable, symmetric to Activate.
func (s *service) Deactivate(ctx context.Context, productID int, condition enums.Condition) (*InventoryDTO, error) {
	return s.setAvailability(ctx, productID, condition, false)
}

func (s *service) setAvailability(ctx context.Context, productID int, condition enums.Condition, available bool) (*InventoryDTO, error) {
	var updated *models.Inventory
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		record, err := txRepo.Find(ctx, productID, condition)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: lookup inventory")
		}
		if record == nil {
			return notFound(productID, condition)
		}

		record.Available = available
		if err := txRepo.Save(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: save inventory")
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(updated), nil
}

// validateRestockLevel enforces the business rule that restock thresholds only
// mean anything for NEW inventory.
func validateRestockLevel(condition enums.Condition, restockLevel *int) error {
	if restockLevel == nil {
		return nil
	}
	if condition != enums.ConditionNew {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("restock_level is only valid for condition %s", enums.ConditionNew))
	}
	if *restockLevel < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "restock_level must not be negative")
	}
	return nil
}

func notFound(productID int, condition enums.Condition) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound,
		fmt.Sprintf("Inventory with product_id '%d' and condition '%s' was not found.", productID, condition))
}

func conflictMessage(productID int, condition enums.Condition) string {
	return fmt.Sprintf("Inventory with product_id '%d' and condition '%s' already exists.", productID, condition)
}
