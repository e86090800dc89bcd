package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_manager/internal/export"
	"fleet_manager/internal/models"
)

type OrderStore interface {
	ListOrders() []models.Order
	GetOrder(id string) (models.Order, error)
	AddOrder(in models.OrderInput) (models.Order, error)
	UpdateOrder(id string, in models.OrderUpdateInput) (models.Order, error)
	RemoveOrder(id string) error
	VehicleByID(id string) (models.Vehicle, bool)
	DriverByID(id string) (models.Driver, bool)
}

type OrderController struct {
	store OrderStore
}

func NewOrderController(store OrderStore) *OrderController {
	return &OrderController{store: store}
}

func (oc *OrderController) List(c *gin.Context) {
	renderList(c, oc.store.ListOrders())
}

func (oc *OrderController) Details(c *gin.Context) {
	order, err := oc.store.GetOrder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) Add(c *gin.Context) {
	var input models.OrderInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	order, err := oc.store.AddOrder(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (oc *OrderController) Update(c *gin.Context) {
	var input models.OrderUpdateInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	order, err := oc.store.UpdateOrder(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) Remove(c *gin.Context) {
	if err := oc.store.RemoveOrder(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondDeleted(c)
}

func (oc *OrderController) ExportPDF(c *gin.Context) {
	sendPDF(c, "orders", oc.document())
}

func (oc *OrderController) ExportXLSX(c *gin.Context) {
	sendXLSX(c, oc.document())
}

// document resolves the vehicle and driver references to readable values.
// Dangling references fall back to the raw id.
func (oc *OrderController) document() export.Document {
	orders := oc.store.ListOrders()
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		vehicle := optional(o.VehicleID)
		if o.VehicleID != nil {
			if v, ok := oc.store.VehicleByID(*o.VehicleID); ok {
				vehicle = v.RegistrationNumber
			}
		}
		driver := optional(o.DriverID)
		if o.DriverID != nil {
			if d, ok := oc.store.DriverByID(*o.DriverID); ok {
				driver = d.FullName()
			}
		}

		rows = append(rows, []string{
			o.ID,
			o.PickupLocation,
			o.DeliveryLocation,
			o.CargoDescription,
			o.PickupTime,
			o.DeliveryTime,
			models.Label(models.OrderStatuses, o.Status),
			vehicle,
			driver,
		})
	}
	return export.Document{
		Title:   "Orders",
		Sheet:   "Orders",
		Columns: []string{"ID", "Pickup Location", "Delivery Location", "Cargo", "Pickup Time", "Delivery Time", "Status", "Vehicle", "Driver"},
		Rows:    rows,
	}
}
