package controllers

import (
	"net/http"

	"github.com/warehousedev/inventory-service/api/responses"
	"github.com/warehousedev/inventory-service/pkg/types"
)

const serviceVersion = "1.0.0"

// ServiceIndex handles GET /, returning service metadata so callers can
// discover the resource collection.
func ServiceIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, types.ServiceInfo{
			Name:    "Inventory REST API Service",
			Version: serviceVersion,
			ListURL: "/inventory",
		})
	}
}
