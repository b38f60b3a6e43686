package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"villa-api/config"
	"villa-api/database"
	"villa-api/dto"
	"villa-api/repositories"
	"villa-api/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter arma la API completa sobre SQLite en memoria con las dos villas iniciales
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := database.Open(context.Background(), config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	_, err = database.Seed(context.Background(), db)
	require.NoError(t, err)

	service := services.NewVillaService(repositories.NewVillaRepository(db), nil, zerolog.Nop())
	return NewRouter(RouterConfig{
		Logger:             zerolog.Nop(),
		CORSAllowedOrigins: []string{"*"},
		Villas:             NewVillaController(service),
		Health:             NewHealthController("villa-api"),
	})
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"villa-api"}`, w.Body.String())
}

func TestGetVillas(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/villa", "")

	require.Equal(t, http.StatusOK, w.Code)
	var villas []dto.VillaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &villas))
	assert.Len(t, villas, 2)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetVilla(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/villa/1", http.StatusOK, ""},
		{"/villa/0", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"/villa/abc", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"/villa/-1", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"/villa/99", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path, "")

			require.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, w).Error)
				return
			}
			var villa dto.VillaResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &villa))
			assert.Equal(t, "Villa Real", villa.Name)
		})
	}
}

func TestCreateVilla(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/villa", `{"name":"Vista Mar","occupancy":3,"rate":100.0}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/villa/3", w.Header().Get("Location"))

	var created dto.VillaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(3), created.ID)
	assert.Equal(t, "Vista Mar", created.Name)

	w = doRequest(router, http.MethodGet, "/villa/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.VillaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestCreateVilla_DuplicateName(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/villa", `{"name":"villa real","occupancy":3,"rate":100.0}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "DUPLICATE_NAME", resp.Error)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "name_exists", resp.Errors[0].Field)
}

func TestCreateVilla_DuplicateNameWithAccents(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/villa", `{"name":"Villa Ñandú","occupancy":2,"rate":90}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/villa", `{"name":"VILLA ÑANDÚ","occupancy":2,"rate":90}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "DUPLICATE_NAME", decodeError(t, w).Error)
}

func TestCreateVilla_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"rate":100}`, "name"},
		{"name too long", `{"name":"Una villa con un nombre demasiado largo","rate":100}`, "name"},
		{"missing rate", `{"name":"Sin Tarifa"}`, "rate"},
		{"negative occupancy", `{"name":"Negativa","rate":10,"occupancy":-1}`, "occupancy"},
		{"wrong type", `{"name":5,"rate":10}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/villa", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, "VALIDATION_ERROR", resp.Error)
			require.NotEmpty(t, resp.Errors)
			assert.Equal(t, tt.field, resp.Errors[0].Field)
		})
	}
}

func TestUpdateVilla(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPut, "/villa/2", `{"id":2,"name":"Premium Renovada","rate":180}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodGet, "/villa/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 2,
		"name": "Premium Renovada",
		"description": "",
		"image_url": "",
		"occupancy": 0,
		"rate": 180,
		"area_sqm": 0,
		"amenities": ""
	}`, w.Body.String())
}

func TestUpdateVilla_Errors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"id mismatch", "/villa/1", `{"id":2,"name":"X","rate":1}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"empty body", "/villa/1", "", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"null body", "/villa/1", `null`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"invalid body", "/villa/1", `{"id":1,"rate":1}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"missing villa", "/villa/99", `{"id":99,"name":"X","rate":1}`, http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPut, tt.path, tt.body)

			require.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Error)
		})
	}
}

func TestPatchVilla(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPatch, "/villa/1", `[{"op":"replace","path":"/rate","value":250.5}]`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodGet, "/villa/1", "")
	var villa dto.VillaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &villa))
	assert.Equal(t, 250.5, villa.Rate)
	assert.Equal(t, "Villa Real", villa.Name)
	assert.Equal(t, 5, villa.Occupancy)
}

func TestPatchVilla_EmptyDocumentIsNoop(t *testing.T) {
	router := newTestRouter(t)

	before := doRequest(router, http.MethodGet, "/villa/1", "").Body.String()

	w := doRequest(router, http.MethodPatch, "/villa/1", `[]`)
	require.Equal(t, http.StatusNoContent, w.Code)

	after := doRequest(router, http.MethodGet, "/villa/1", "").Body.String()
	assert.JSONEq(t, before, after)
}

func TestPatchVilla_Errors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		path string
		body string
		code string
	}{
		{"null document", "/villa/1", `null`, "INVALID_ARGUMENT"},
		{"empty body", "/villa/1", "", "INVALID_ARGUMENT"},
		{"missing villa", "/villa/99", `[{"op":"replace","path":"/name","value":"X"}]`, "INVALID_ARGUMENT"},
		{"zero id", "/villa/0", `[]`, "INVALID_ARGUMENT"},
		{"unknown path", "/villa/1", `[{"op":"replace","path":"/owner","value":"X"}]`, "VALIDATION_ERROR"},
		{"invalid result", "/villa/1", `[{"op":"replace","path":"/rate","value":0}]`, "VALIDATION_ERROR"},
		{"not an array", "/villa/1", `{"op":"replace"}`, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPatch, tt.path, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Error)
		})
	}
}

func TestDeleteVilla(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodDelete, "/villa/2", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodGet, "/villa/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, "/villa/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, "/villa/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
