package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleet_manager/internal/export"
	"fleet_manager/internal/models"
)

type VehicleStore interface {
	ListVehicles() []models.Vehicle
	GetVehicle(id string) (models.Vehicle, error)
	AddVehicle(in models.VehicleInput) (models.Vehicle, error)
	UpdateVehicle(id string, in models.VehicleUpdateInput) (models.Vehicle, error)
	RemoveVehicle(id string) error
	DriverByID(id string) (models.Driver, bool)
}

type VehicleController struct {
	store VehicleStore
}

func NewVehicleController(store VehicleStore) *VehicleController {
	return &VehicleController{store: store}
}

func (vc *VehicleController) List(c *gin.Context) {
	renderList(c, vc.store.ListVehicles())
}

func (vc *VehicleController) Details(c *gin.Context) {
	vehicle, err := vc.store.GetVehicle(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (vc *VehicleController) Add(c *gin.Context) {
	var input models.VehicleInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	vehicle, err := vc.store.AddVehicle(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (vc *VehicleController) Update(c *gin.Context) {
	var input models.VehicleUpdateInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	vehicle, err := vc.store.UpdateVehicle(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (vc *VehicleController) Remove(c *gin.Context) {
	if err := vc.store.RemoveVehicle(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c)
}

func (vc *VehicleController) ExportPDF(c *gin.Context) {
	sendPDF(c, "vehicles", vc.document())
}

func (vc *VehicleController) ExportXLSX(c *gin.Context) {
	sendXLSX(c, vc.document())
}

func (vc *VehicleController) document() export.Document {
	vehicles := vc.store.ListVehicles()
	rows := make([][]string, 0, len(vehicles))
	for _, v := range vehicles {
		year := ""
		if v.Year != 0 {
			year = strconv.Itoa(v.Year)
		}
		rows = append(rows, []string{
			v.ID,
			v.Brand,
			v.Model,
			year,
			v.RegistrationNumber,
			models.Label(models.VehicleTypes, v.Type),
			models.Label(models.VehicleStatuses, v.Status),
			vc.driverName(v.DriverID),
		})
	}
	return export.Document{
		Title:   "Vehicles",
		Sheet:   "Vehicles",
		Columns: []string{"ID", "Brand", "Model", "Year", "Registration Number", "Type", "Status", "Driver"},
		Rows:    rows,
	}
}

func (vc *VehicleController) driverName(id *string) string {
	if id == nil {
		return ""
	}
	if d, ok := vc.store.DriverByID(*id); ok {
		return d.FullName()
	}
	return *id
}
