package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_manager/internal/export"
	"fleet_manager/internal/models"
)

// DriverStore is the slice of the store the driver endpoints use.
type DriverStore interface {
	ListDrivers() []models.Driver
	GetDriver(id string) (models.Driver, error)
	AddDriver(in models.DriverInput) (models.Driver, error)
	UpdateDriver(id string, in models.DriverUpdateInput) (models.Driver, error)
	RemoveDriver(id string) error
}

type DriverController struct {
	store DriverStore
}

func NewDriverController(store DriverStore) *DriverController {
	return &DriverController{store: store}
}

func (dc *DriverController) List(c *gin.Context) {
	renderList(c, dc.store.ListDrivers())
}

func (dc *DriverController) Details(c *gin.Context) {
	driver, err := dc.store.GetDriver(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (dc *DriverController) Add(c *gin.Context) {
	var input models.DriverInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	driver, err := dc.store.AddDriver(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// Update replaces the driver with the payload. Omitted fields are dropped.
func (dc *DriverController) Update(c *gin.Context) {
	var input models.DriverUpdateInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	driver, err := dc.store.UpdateDriver(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// Remove deletes the driver and unassigns it from its vehicles.
func (dc *DriverController) Remove(c *gin.Context) {
	if err := dc.store.RemoveDriver(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c)
}

func (dc *DriverController) ExportPDF(c *gin.Context) {
	sendPDF(c, "drivers", dc.document())
}

func (dc *DriverController) ExportXLSX(c *gin.Context) {
	sendXLSX(c, dc.document())
}

func (dc *DriverController) document() export.Document {
	drivers := dc.store.ListDrivers()
	rows := make([][]string, 0, len(drivers))
	for _, d := range drivers {
		rows = append(rows, []string{
			d.ID, d.FirstName, d.LastName, d.PhoneNumber, d.Email, d.DrivingLicenseNumber, d.BirthDate,
		})
	}
	return export.Document{
		Title:   "Drivers",
		Sheet:   "Drivers",
		Columns: []string{"ID", "Name", "Surname", "Phone", "Email", "Driving License Number", "Birthdate"},
		Rows:    rows,
	}
}
