package routes

import (
	"fleet_manager/internal/controllers"
)

func OrderRoutes(d *Dispatcher, ctl *controllers.OrderController) {
	order := d.Group("/orders")
	{
		order.GET("", ctl.List)
		order.GET("/:id", ctl.Details)
		order.POST("/add", ctl.Add)
		order.PUT("/update/:id", ctl.Update)
		order.DELETE("/delete/:id", ctl.Remove)
		order.GET("/list/download/pdf", ctl.ExportPDF)
		order.GET("/list/download/xlsx", ctl.ExportXLSX)
	}
}
