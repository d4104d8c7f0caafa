package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	inventorysvc "github.com/warehousedev/inventory-service/internal/inventory"
	"github.com/warehousedev/inventory-service/pkg/config"
	"github.com/warehousedev/inventory-service/pkg/db"
	"github.com/warehousedev/inventory-service/pkg/db/models"
	"github.com/warehousedev/inventory-service/pkg/types"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Inventory{}))

	dbClient := db.NewFromGorm(conn)
	svc, err := inventorysvc.NewService(inventorysvc.NewRepository(conn), dbClient)
	require.NoError(t, err)

	cfg := &config.Config{App: config.AppConfig{Env: "dev", Port: "8080"}}
	return NewRouter(cfg, nil, dbClient, nil, svc)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeRecord(t *testing.T, rec *httptest.ResponseRecorder) inventorysvc.InventoryDTO {
	t.Helper()
	var dto inventorysvc.InventoryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	return dto
}

func TestCreateThenRetrieveRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/inventory",
		`{"product_id":1,"condition":"NEW","quantity":300,"restock_level":100,"available":true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/inventory/1/condition/NEW", rec.Header().Get("Location"))

	created := decodeRecord(t, rec)
	assert.Equal(t, 1, created.ProductID)
	assert.Equal(t, "NEW", created.Condition)
	assert.Equal(t, 300, created.Quantity)
	require.NotNil(t, created.RestockLevel)
	assert.Equal(t, 100, *created.RestockLevel)
	assert.True(t, created.Available)

	rec = doJSON(t, router, "GET", "/inventory/1/condition/NEW", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeRecord(t, rec))
}

func TestCreateDuplicateReturns409(t *testing.T) {
	router := newTestRouter(t)

	body := `{"product_id":1,"condition":"USED","quantity":5,"available":false}`
	rec := doJSON(t, router, "POST", "/inventory", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "POST", "/inventory", body)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateThenRetrieveShowsNewValues(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/inventory",
		`{"product_id":1,"condition":"NEW","quantity":300,"restock_level":100,"available":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "PUT", "/inventory/1/condition/NEW", `{"quantity":200,"restock_level":400}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, "GET", "/inventory/1/condition/NEW", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeRecord(t, rec)
	assert.Equal(t, 200, got.Quantity)
	require.NotNil(t, got.RestockLevel)
	assert.Equal(t, 400, *got.RestockLevel)
}

func TestListQuantityLowFilter(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/inventory",
		`{"product_id":1,"condition":"NEW","quantity":300,"available":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, "POST", "/inventory",
		`{"product_id":2,"condition":"NEW","quantity":200,"available":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "GET", "/inventory?quantity_low=300", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var records []inventorysvc.InventoryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].ProductID)
}

func TestDeleteThenRetrieveReturns404WithMessage(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/inventory",
		`{"product_id":3,"condition":"OPEN_BOX","quantity":1,"available":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "DELETE", "/inventory/3/condition/OPEN_BOX", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Idempotent: deleting again still succeeds.
	rec = doJSON(t, router, "DELETE", "/inventory/3/condition/OPEN_BOX", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, "GET", "/inventory/3/condition/OPEN_BOX", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body types.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Inventory with product_id '3' and condition 'OPEN_BOX' was not found.", body.Message)
}

func TestActivateDeactivateEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/inventory",
		`{"product_id":4,"condition":"NEW","quantity":1,"available":false}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "PUT", "/inventory/4/condition/NEW/activate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeRecord(t, rec).Available)

	rec = doJSON(t, router, "PUT", "/inventory/4/condition/NEW/deactivate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeRecord(t, rec).Available)
}

func TestServiceIndexRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info types.ServiceInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "/inventory", info.ListURL)
}

func TestHealthRoutes(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpointExposesCounters(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/inventory", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestRequestIDHeaderPresent(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/inventory", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
