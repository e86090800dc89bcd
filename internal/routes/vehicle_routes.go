package routes

import (
	"fleet_manager/internal/controllers"
)

func VehicleRoutes(d *Dispatcher, ctl *controllers.VehicleController) {
	vehicle := d.Group("/vehicles")
	{
		vehicle.GET("", ctl.List)
		vehicle.GET("/:id", ctl.Details)
		vehicle.POST("/add", ctl.Add)
		vehicle.PUT("/update/:id", ctl.Update)
		vehicle.DELETE("/delete/:id", ctl.Remove)
		vehicle.GET("/list/download/pdf", ctl.ExportPDF)
		vehicle.GET("/list/download/xlsx", ctl.ExportXLSX)
	}
}
