package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehousedev/inventory-service/pkg/db"
	"github.com/warehousedev/inventory-service/pkg/enums"
	pkgerrors "github.com/warehousedev/inventory-service/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	conn := openTestDB(t)
	svc, err := NewService(NewRepository(conn), db.NewFromGorm(conn))
	require.NoError(t, err)
	return svc
}

func mustCreate(t *testing.T, svc Service, input CreateInput) *InventoryDTO {
	t.Helper()
	dto, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	return dto
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) *pkgerrors.Error {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed, "expected a typed error, got %v", err)
	assert.Equal(t, code, typed.Code())
	return typed
}

func TestServiceRequiresCollaborators(t *testing.T) {
	conn := openTestDB(t)

	_, err := NewService(nil, db.NewFromGorm(conn))
	assert.Error(t, err)

	_, err = NewService(NewRepository(conn), nil)
	assert.Error(t, err)
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, CreateInput{
		ProductID:    42,
		Condition:    enums.ConditionNew,
		Quantity:     100,
		RestockLevel: intPtr(20),
		Available:    true,
	})
	assert.Equal(t, 42, created.ProductID)
	assert.Equal(t, "NEW", created.Condition)
	assert.Equal(t, 100, created.Quantity)
	require.NotNil(t, created.RestockLevel)
	assert.Equal(t, 20, *created.RestockLevel)
	assert.True(t, created.Available)

	fetched, err := svc.Get(ctx, 42, enums.ConditionNew)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateDuplicateKeyConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, CreateInput{ProductID: 1, Condition: enums.ConditionUsed, Quantity: 5})

	_, err := svc.Create(ctx, CreateInput{ProductID: 1, Condition: enums.ConditionUsed, Quantity: 9})
	typed := assertCode(t, err, pkgerrors.CodeConflict)
	assert.Equal(t, "Inventory with product_id '1' and condition 'USED' already exists.", typed.Message())

	// Same product under another condition is a distinct line.
	_, err = svc.Create(ctx, CreateInput{ProductID: 1, Condition: enums.ConditionNew, Quantity: 9})
	assert.NoError(t, err)
}

func TestCreateRestockLevelRules(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{
		ProductID: 2, Condition: enums.ConditionUsed, Quantity: 1, RestockLevel: intPtr(10),
	})
	assertCode(t, err, pkgerrors.CodeValidation)

	_, err = svc.Create(ctx, CreateInput{
		ProductID: 2, Condition: enums.ConditionNew, Quantity: 1, RestockLevel: intPtr(-1),
	})
	assertCode(t, err, pkgerrors.CodeValidation)

	// Omitted restock_level is fine for any condition.
	dto := mustCreate(t, svc, CreateInput{ProductID: 2, Condition: enums.ConditionUsed, Quantity: 1})
	assert.Nil(t, dto.RestockLevel)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), 9, enums.ConditionOpenBox)
	typed := assertCode(t, err, pkgerrors.CodeNotFound)
	assert.Equal(t, "Inventory with product_id '9' and condition 'OPEN_BOX' was not found.", typed.Message())
}

func TestUpdateQuantity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, CreateInput{ProductID: 3, Condition: enums.ConditionNew, Quantity: 100, Available: true})

	dto, err := svc.Update(ctx, 3, enums.ConditionNew, UpdateInput{Quantity: intPtr(200), RestockLevel: intPtr(400)})
	require.NoError(t, err)
	assert.Equal(t, 200, dto.Quantity)
	require.NotNil(t, dto.RestockLevel)
	assert.Equal(t, 400, *dto.RestockLevel)
	// Untouched fields survive the partial update.
	assert.True(t, dto.Available)
}

func TestUpdateAddedAmount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, CreateInput{ProductID: 4, Condition: enums.ConditionNew, Quantity: 10})

	dto, err := svc.Update(ctx, 4, enums.ConditionNew, UpdateInput{AddedAmount: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 15, dto.Quantity)

	// Draining to exactly zero is allowed.
	dto, err = svc.Update(ctx, 4, enums.ConditionNew, UpdateInput{AddedAmount: intPtr(-15)})
	require.NoError(t, err)
	assert.Equal(t, 0, dto.Quantity)

	// One below zero is rejected and leaves the row untouched.
	_, err = svc.Update(ctx, 4, enums.ConditionNew, UpdateInput{AddedAmount: intPtr(-1)})
	assertCode(t, err, pkgerrors.CodeValidation)

	current, err := svc.Get(ctx, 4, enums.ConditionNew)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Quantity)
}

func TestUpdateAddedAmountTakesPrecedence(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, CreateInput{ProductID: 5, Condition: enums.ConditionNew, Quantity: 10})

	dto, err := svc.Update(ctx, 5, enums.ConditionNew, UpdateInput{
		Quantity:    intPtr(999),
		AddedAmount: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 13, dto.Quantity)
}

func TestUpdateRestockLevelChecksStoredCondition(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, CreateInput{ProductID: 6, Condition: enums.ConditionOpenBox, Quantity: 1})

	_, err := svc.Update(ctx, 6, enums.ConditionOpenBox, UpdateInput{RestockLevel: intPtr(5)})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), 77, enums.ConditionNew, UpdateInput{Quantity: intPtr(1)})
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, CreateInput{ProductID: 7, Condition: enums.ConditionNew, Quantity: 1})

	require.NoError(t, svc.Delete(ctx, 7, enums.ConditionNew))
	_, err := svc.Get(ctx, 7, enums.ConditionNew)
	assertCode(t, err, pkgerrors.CodeNotFound)

	// Deleting the already-absent key still succeeds.
	require.NoError(t, svc.Delete(ctx, 7, enums.ConditionNew))
}

func TestActivateDeactivate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, CreateInput{ProductID: 8, Condition: enums.ConditionNew, Quantity: 1, Available: false})

	dto, err := svc.Activate(ctx, 8, enums.ConditionNew)
	require.NoError(t, err)
	assert.True(t, dto.Available)

	// Activating an already-active line is a no-op success.
	dto, err = svc.Activate(ctx, 8, enums.ConditionNew)
	require.NoError(t, err)
	assert.True(t, dto.Available)

	dto, err = svc.Deactivate(ctx, 8, enums.ConditionNew)
	require.NoError(t, err)
	assert.False(t, dto.Available)

	dto, err = svc.Deactivate(ctx, 8, enums.ConditionNew)
	require.NoError(t, err)
	assert.False(t, dto.Available)

	_, err = svc.Activate(ctx, 99, enums.ConditionNew)
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestListThroughService(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	mustCreate(t, svc, CreateInput{ProductID: 1, Condition: enums.ConditionNew, Quantity: 300, Available: true})
	mustCreate(t, svc, CreateInput{ProductID: 2, Condition: enums.ConditionNew, Quantity: 200, Available: true})

	all, err := svc.List(ctx, ListFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	high, err := svc.List(ctx, ListFilters{QuantityLow: intPtr(300)})
	require.NoError(t, err)
	require.Len(t, high, 1)
	assert.Equal(t, 1, high[0].ProductID)
}
