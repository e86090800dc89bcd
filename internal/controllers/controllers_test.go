package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fleet_manager/internal/apperr"
	"fleet_manager/internal/export"
	"fleet_manager/internal/listing"
	"fleet_manager/internal/models"
	"fleet_manager/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(s *store.Store) *gin.Engine {
	r := gin.New()
	drivers := NewDriverController(s)
	vehicles := NewVehicleController(s)
	orders := NewOrderController(s)

	r.GET("/drivers", drivers.List)
	r.GET("/drivers/:id", drivers.Details)
	r.POST("/drivers/add", drivers.Add)
	r.PUT("/drivers/update/:id", drivers.Update)
	r.DELETE("/drivers/delete/:id", drivers.Remove)
	r.GET("/vehicles/:id", vehicles.Details)
	r.GET("/vehicles/list/download/xlsx", vehicles.ExportXLSX)
	r.GET("/orders/list/download/pdf", orders.ExportPDF)
	r.GET("/orders/list/download/xlsx", orders.ExportXLSX)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDriverAddAndDetails(t *testing.T) {
	s := store.New()
	r := newEngine(s)

	w := do(r, http.MethodPost, "/drivers/add",
		`{"firstName":"Ana","lastName":"Kot","phoneNumber":"1","email":"a@x.com","birthDate":"1990-01-01","drivingLicenseNumber":"X1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Driver
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ana", created.FirstName)

	w = do(r, http.MethodGet, "/drivers/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Driver
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestDriverAddErrors(t *testing.T) {
	r := newEngine(store.New())

	w := do(r, http.MethodPost, "/drivers/add", `{"firstName":"Ana"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"lastName: Required"}`, w.Body.String())

	w = do(r, http.MethodPost, "/drivers/add", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body format")
}

func TestDriverNotFound(t *testing.T) {
	r := newEngine(store.New())

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/drivers/nope", ""},
		{http.MethodPut, "/drivers/update/nope", `{"firstName":"X"}`},
		{http.MethodDelete, "/drivers/delete/nope", ""},
	} {
		w := do(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	}
}

func TestDriverUpdateOmitsDroppedFields(t *testing.T) {
	s := store.New()
	d, err := s.AddDriver(models.DriverInput{
		FirstName: "Ana", LastName: "Kot", PhoneNumber: "1", Email: "a@x.com",
		BirthDate: "1990-01-01", DrivingLicenseNumber: "X1",
	})
	require.NoError(t, err)
	r := newEngine(s)

	w := do(r, http.MethodPut, "/drivers/update/"+d.ID, `{"firstName":"Ola"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"`+d.ID+`","firstName":"Ola"}`, w.Body.String())
}

func TestDriverListPagination(t *testing.T) {
	s := store.New()
	s.Seed()
	r := newEngine(s)

	w := do(r, http.MethodGet, "/drivers?page=2&pageSize=3&sortBy=lastName", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page listing.Page[models.Driver]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 8, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 3)

	w = do(r, http.MethodGet, "/drivers?sortBy=shoeSize", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveDriverNullsVehicleReference(t *testing.T) {
	s := store.New()
	d, err := s.AddDriver(models.DriverInput{
		FirstName: "Ana", LastName: "Kot", PhoneNumber: "1", Email: "a@x.com",
		BirthDate: "1990-01-01", DrivingLicenseNumber: "X1",
	})
	require.NoError(t, err)
	v, err := s.AddVehicle(models.VehicleInput{
		Brand: "Fiat", Model: "Ducato", Year: 2021, RegistrationNumber: "DEF456",
		Type: models.VehicleTypeVan, Status: models.VehicleStatusAvailable, DriverID: &d.ID,
	})
	require.NoError(t, err)
	r := newEngine(s)

	w := do(r, http.MethodDelete, "/drivers/delete/"+d.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/vehicles/"+v.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Contains(t, got, "driverId")
	assert.Nil(t, got["driverId"])
}

func TestOrderExports(t *testing.T) {
	s := store.New()
	s.Seed()
	r := newEngine(s)

	w := do(r, http.MethodGet, "/orders/list/download/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.PDFContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "inline; filename=orders-list.pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = do(r, http.MethodGet, "/orders/list/download/xlsx", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.XLSXContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Report.xlsx", w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, len(s.ListOrders())+1)

	// first seeded order: vehicle ABC123 driven by Ivan Kuznetsov
	assert.Equal(t, "Delivered", rows[1][6])
	assert.Equal(t, "ABC123", rows[1][7])
	assert.Equal(t, "Ivan Kuznetsov", rows[1][8])
}

func TestVehicleExportResolvesLabels(t *testing.T) {
	s := store.New()
	_, err := s.AddVehicle(models.VehicleInput{
		Brand: "Fiat", Model: "Ducato", Year: 2021, RegistrationNumber: "DEF456",
		Type: models.VehicleTypeVan, Status: models.VehicleStatusUnderMaintenance,
	})
	require.NoError(t, err)
	r := newEngine(s)

	w := do(r, http.MethodGet, "/vehicles/list/download/xlsx", "")
	require.Equal(t, http.StatusOK, w.Code)

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Vehicles")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Fiat", "Ducato", "2021", "DEF456", "Van", "Under Maintenance"}, rows[1][1:7])
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{apperr.Validation("name: Required"), http.StatusBadRequest, `{"error":"name: Required"}`},
		{apperr.ErrNotFound, http.StatusNotFound, `{"error":"Not found"}`},
		{apperr.ErrUnauthorized, http.StatusUnauthorized, `{"error":"Access denied"}`},
		{errors.New("boom"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, tt.err)

		assert.Equal(t, tt.status, w.Code)
		assert.JSONEq(t, tt.body, w.Body.String())
	}
}
