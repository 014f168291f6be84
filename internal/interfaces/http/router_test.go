package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/instock-api/internal/application/usecase"
	"github.com/jhoicas/instock-api/internal/domain/entity"
	"github.com/jhoicas/instock-api/internal/domain/repository"
	"github.com/jhoicas/instock-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/instock-api/internal/interfaces/http"
	"github.com/jhoicas/instock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre el almacenamiento en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	wRepo := memory.NewWarehouseRepository(store)
	iRepo := memory.NewInventoryRepository(store)
	tx := memory.NewTxRunner(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		WarehouseUC: usecase.NewWarehouseUseCase(wRepo, iRepo, tx),
		InventoryUC: usecase.NewInventoryUseCase(iRepo, tx),
		Logger:      logger.Nop(),
	})
	return app
}

// doRequest lanza la petición y decodifica el cuerpo JSON (si lo hay) en out.
func doRequest(t *testing.T, app *fiber.App, method, path, body string, out any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out), "cuerpo: %s", raw)
	}
	return resp
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func createWarehouse(t *testing.T, app *fiber.App, name string) map[string]any {
	t.Helper()
	var out map[string]any
	resp := doRequest(t, app, http.MethodPost, "/api/warehouses", `{"warehouse_name":"`+name+`","city":"Bogotá"}`, &out)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoBodegaArticulo(t *testing.T) {
	app := buildTestApp(t)

	w := createWarehouse(t, app, "Main")
	assert.EqualValues(t, 1, w["id"])
	assert.Equal(t, "Main", w["warehouse_name"])

	var item map[string]any
	resp := doRequest(t, app, http.MethodPost, "/api/inventories",
		`{"warehouse_id":1,"item_name":"Widget","description":"d","category":"c","status":"In Stock","quantity":5}`, &item)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 1, item["id"])
	assert.Equal(t, "Main", item["warehouse_name"])
	assert.EqualValues(t, 5, item["quantity"])

	var apiErr apiError
	resp = doRequest(t, app, http.MethodPost, "/api/inventories",
		`{"warehouse_id":99,"item_name":"Widget","description":"d","category":"c","status":"In Stock","quantity":5}`, &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid warehouse id", apiErr.Message)

	var msg map[string]string
	resp = doRequest(t, app, http.MethodDelete, "/api/inventories/1", "", &msg)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Item deleted successfully", msg["message"])

	resp = doRequest(t, app, http.MethodGet, "/api/inventories/1", "", &apiErr)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Inventory item not found.", apiErr.Message)
}

func TestWarehouses_CRUD(t *testing.T) {
	app := buildTestApp(t)
	createWarehouse(t, app, "Norte")

	var updated map[string]any
	resp := doRequest(t, app, http.MethodPut, "/api/warehouses/1", `{"warehouse_name":"Norte 2","country":"CO"}`, &updated)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Norte 2", updated["warehouse_name"])
	assert.Equal(t, "CO", updated["country"])

	var got map[string]any
	resp = doRequest(t, app, http.MethodGet, "/api/warehouses/1", "", &got)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, updated, got)

	var apiErr apiError
	resp = doRequest(t, app, http.MethodPut, "/api/warehouses/7", `{"warehouse_name":"X"}`, &apiErr)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Warehouse not found", apiErr.Message)

	resp = doRequest(t, app, http.MethodPost, "/api/warehouses", `{"city":"Cali"}`, &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please provide missing data", apiErr.Message)

	var msg map[string]string
	resp = doRequest(t, app, http.MethodDelete, "/api/warehouses/1", "", &msg)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Warehouse deleted successfully", msg["message"])

	resp = doRequest(t, app, http.MethodDelete, "/api/warehouses/1", "", &apiErr)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestWarehouses_InventariosYCascada(t *testing.T) {
	app := buildTestApp(t)
	createWarehouse(t, app, "A")
	createWarehouse(t, app, "B")
	for _, wid := range []string{"1", "1", "2"} {
		resp := doRequest(t, app, http.MethodPost, "/api/inventories",
			`{"warehouse_id":"`+wid+`","item_name":"x","description":"d","category":"c","status":"s","quantity":"3"}`, nil)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	var items []map[string]any
	resp := doRequest(t, app, http.MethodGet, "/api/warehouses/1/inventories", "", &items)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, items, 2)

	resp = doRequest(t, app, http.MethodGet, "/api/warehouses/9/inventories", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	doRequest(t, app, http.MethodDelete, "/api/warehouses/1", "", nil)
	resp = doRequest(t, app, http.MethodGet, "/api/inventories", "", &items)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0]["warehouse_name"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda y orden
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_DecodificaElParametro(t *testing.T) {
	app := buildTestApp(t)
	createWarehouse(t, app, "Main St")
	createWarehouse(t, app, "Other")

	var out []map[string]any
	resp := doRequest(t, app, http.MethodGet, "/api/warehouses/match/main%20st", "", &out)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, out, 1)
	assert.Equal(t, "Main St", out[0]["warehouse_name"])

	resp = doRequest(t, app, http.MethodGet, "/api/inventories/match/nada", "", &out)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, out)
}

func TestSortBy_OrdenDeArgumentosPorRecurso(t *testing.T) {
	app := buildTestApp(t)
	createWarehouse(t, app, "Beta")
	createWarehouse(t, app, "Alfa")

	var out []map[string]any
	resp := doRequest(t, app, http.MethodGet, "/api/warehouses/sortBy/asc/warehouse_name", "", &out)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, out, 2)
	assert.Equal(t, "Alfa", out[0]["warehouse_name"])

	for _, body := range []string{
		`{"warehouse_id":1,"item_name":"b","description":"d","category":"c","status":"s","quantity":1}`,
		`{"warehouse_id":2,"item_name":"a","description":"d","category":"c","status":"s","quantity":9}`,
	} {
		resp = doRequest(t, app, http.MethodPost, "/api/inventories", body, nil)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
	resp = doRequest(t, app, http.MethodGet, "/api/inventories/sortBy/quantity/DESC", "", &out)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 9, out[0]["quantity"])

	var apiErr apiError
	resp = doRequest(t, app, http.MethodGet, "/api/inventories/sortBy/password/asc", "", &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid sort column", apiErr.Message)

	resp = doRequest(t, app, http.MethodGet, "/api/warehouses/sortBy/warehouse_name/asc", "", &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "en bodegas el orden va primero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores de petición
// ──────────────────────────────────────────────────────────────────────────────

func TestPeticionesInvalidas(t *testing.T) {
	app := buildTestApp(t)

	var apiErr apiError
	resp := doRequest(t, app, http.MethodGet, "/api/warehouses/abc", "", &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidID, apiErr.Code)

	resp = doRequest(t, app, http.MethodGet, "/api/inventories/0", "", &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/warehouses", `{"warehouse_name":`, &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidBody, apiErr.Code)

	createWarehouse(t, app, "W")
	resp = doRequest(t, app, http.MethodPost, "/api/inventories",
		`{"warehouse_id":1,"item_name":"x","description":"d","category":"c","status":"s","quantity":"muchos"}`, &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Quantity value must be a valid number", apiErr.Message)

	resp = doRequest(t, app, http.MethodPost, "/api/inventories",
		`{"warehouse_id":1,"item_name":"x","description":"d","category":"c","status":"s","quantity":0}`, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode, "cantidad cero es válida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Middleware y errores internos
// ──────────────────────────────────────────────────────────────────────────────

type brokenWarehouses struct{ repository.WarehouseRepository }

func (brokenWarehouses) List(context.Context, repository.ListOptions) ([]*entity.Warehouse, error) {
	return nil, errors.New("dial tcp 10.0.0.5:5432: connection refused")
}

func TestErrorInternoEsOpacoYSeRegistra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		WarehouseUC: usecase.NewWarehouseUseCase(brokenWarehouses{}, nil, nil),
		InventoryUC: usecase.NewInventoryUseCase(nil, nil),
		Logger:      log,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/warehouses", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "10.0.0.5")
	assert.Contains(t, string(raw), apphttp.CodeInternal)
	assert.Contains(t, buf.String(), "10.0.0.5")
	assert.Contains(t, buf.String(), "req-123")
}

func TestRequestLogger_GeneraRequestID(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/warehouses", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}
