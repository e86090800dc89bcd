package routes

import (
	"fleet_manager/internal/controllers"
)

func DriverRoutes(d *Dispatcher, ctl *controllers.DriverController) {
	driver := d.Group("/drivers")
	{
		driver.GET("", ctl.List)
		driver.GET("/:id", ctl.Details)
		driver.POST("/add", ctl.Add)
		driver.PUT("/update/:id", ctl.Update)
		driver.DELETE("/delete/:id", ctl.Remove)
		driver.GET("/list/download/pdf", ctl.ExportPDF)
		driver.GET("/list/download/xlsx", ctl.ExportXLSX)
	}
}
