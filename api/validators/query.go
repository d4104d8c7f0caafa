package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/warehousedev/inventory-service/pkg/enums"
	pkgerrors "github.com/warehousedev/inventory-service/pkg/errors"
)

// QueryInt returns the integer value of the query parameter, or nil when the
// parameter is absent. A non-numeric value is a validation error.
func QueryInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").
			WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// QueryBool returns the boolean value of the query parameter, or nil when the
// parameter is absent. Accepts the forms strconv.ParseBool accepts.
func QueryBool(r *http.Request, key string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a boolean").
			WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// QueryCondition returns the condition value of the query parameter, or nil
// when the parameter is absent.
func QueryCondition(r *http.Request, key string) (*enums.Condition, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	condition, err := enums.ParseCondition(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition").
			WithDetails(map[string]any{"field": key})
	}
	return &condition, nil
}
