package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/warehousedev/inventory-service/api/responses"
	"github.com/warehousedev/inventory-service/api/validators"
	inventorysvc "github.com/warehousedev/inventory-service/internal/inventory"
	"github.com/warehousedev/inventory-service/pkg/enums"
	pkgerrors "github.com/warehousedev/inventory-service/pkg/errors"
	"github.com/warehousedev/inventory-service/pkg/logger"
)

// ListInventory handles GET /inventory with optional query filters.
func ListInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		filters, err := listFiltersFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, records)
	}
}

// CreateInventory handles POST /inventory.
func CreateInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload createInventoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithRecordKey(ctx, input.ProductID, input.Condition.String())
		}

		record, err := svc.Create(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		w.Header().Set("Location", recordLocation(record.ProductID, record.Condition))
		responses.WriteJSON(w, http.StatusCreated, record)
	}
}

// GetInventory handles GET /inventory/{productID}/condition/{condition}.
func GetInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return keyedHandler(svc, logg, func(r *http.Request, productID int, condition enums.Condition) (*inventorysvc.InventoryDTO, error) {
		return svc.Get(r.Context(), productID, condition)
	})
}

// UpdateInventory handles PUT /inventory/{productID}/condition/{condition}.
func UpdateInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		productID, condition, err := recordKeyFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateInventoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithRecordKey(ctx, productID, condition.String())
		}

		record, err := svc.Update(ctx, productID, condition, inventorysvc.UpdateInput{
			Quantity:     payload.Quantity,
			RestockLevel: payload.RestockLevel,
			AddedAmount:  payload.AddedAmount,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, record)
	}
}

// DeleteInventory handles DELETE /inventory/{productID}/condition/{condition}.
// The delete is idempotent: an absent key still yields 204.
func DeleteInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		productID, condition, err := recordKeyFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithRecordKey(ctx, productID, condition.String())
		}

		if err := svc.Delete(ctx, productID, condition); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

// ActivateInventory handles PUT .../activate.
func ActivateInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return keyedHandler(svc, logg, func(r *http.Request, productID int, condition enums.Condition) (*inventorysvc.InventoryDTO, error) {
		return svc.Activate(r.Context(), productID, condition)
	})
}

// DeactivateInventory handles PUT .../deactivate.
func DeactivateInventory(svc inventorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return keyedHandler(svc, logg, func(r *http.Request, productID int, condition enums.Condition) (*inventorysvc.InventoryDTO, error) {
		return svc.Deactivate(r.Context(), productID, condition)
	})
}

func keyedHandler(svc inventorysvc.Service, logg *logger.Logger, op func(*http.Request, int, enums.Condition) (*inventorysvc.InventoryDTO, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		productID, condition, err := recordKeyFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithRecordKey(ctx, productID, condition.String())
		}

		record, err := op(r.WithContext(ctx), productID, condition)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, record)
	}
}

type createInventoryRequest struct {
	ProductID    *int   `json:"product_id" validate:"required,min=1"`
	Condition    string `json:"condition" validate:"required"`
	Quantity     *int   `json:"quantity" validate:"required,min=0"`
	RestockLevel *int   `json:"restock_level" validate:"omitempty,min=0"`
	Available    *bool  `json:"available" validate:"required"`
}

func (r createInventoryRequest) toCreateInput() (inventorysvc.CreateInput, error) {
	condition, err := enums.ParseCondition(strings.TrimSpace(r.Condition))
	if err != nil {
		return inventorysvc.CreateInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition")
	}
	return inventorysvc.CreateInput{
		ProductID:    *r.ProductID,
		Condition:    condition,
		Quantity:     *r.Quantity,
		RestockLevel: r.RestockLevel,
		Available:    *r.Available,
	}, nil
}

type updateInventoryRequest struct {
	Quantity     *int `json:"quantity" validate:"omitempty,min=0"`
	RestockLevel *int `json:"restock_level"`
	AddedAmount  *int `json:"added_amount"`
}

func listFiltersFromQuery(r *http.Request) (inventorysvc.ListFilters, error) {
	var filters inventorysvc.ListFilters
	var err error

	if filters.ProductID, err = validators.QueryInt(r, "product_id"); err != nil {
		return inventorysvc.ListFilters{}, err
	}
	if filters.Condition, err = validators.QueryCondition(r, "condition"); err != nil {
		return inventorysvc.ListFilters{}, err
	}
	if filters.Quantity, err = validators.QueryInt(r, "quantity"); err != nil {
		return inventorysvc.ListFilters{}, err
	}
	if filters.QuantityLow, err = validators.QueryInt(r, "quantity_low"); err != nil {
		return inventorysvc.ListFilters{}, err
	}
	if filters.QuantityHigh, err = validators.QueryInt(r, "quantity_high"); err != nil {
		return inventorysvc.ListFilters{}, err
	}
	if filters.RestockLevel, err = validators.QueryInt(r, "restock_level"); err != nil {
		return inventorysvc.ListFilters{}, err
	}
	if filters.Available, err = validators.QueryBool(r, "available"); err != nil {
		return inventorysvc.ListFilters{}, err
	}

	return filters, nil
}

func recordKeyFromPath(r *http.Request) (int, enums.Condition, error) {
	rawID := chi.URLParam(r, "productID")
	productID, err := strconv.Atoi(rawID)
	if err != nil {
		return 0, "", pkgerrors.New(pkgerrors.CodeValidation, "product_id must be an integer").
			WithDetails(map[string]any{"field": "product_id"})
	}

	condition, err := enums.ParseCondition(chi.URLParam(r, "condition"))
	if err != nil {
		return 0, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition").
			WithDetails(map[string]any{"field": "condition"})
	}

	return productID, condition, nil
}

func recordLocation(productID int, condition string) string {
	return fmt.Sprintf("/inventory/%d/condition/%s", productID, condition)
}
