package routes

import (
	"fleet_manager/internal/controllers"
)

func DictionaryRoutes(d *Dispatcher, ctl *controllers.DictionaryController) {
	dict := d.Group("/dictionaries")
	{
		dict.GET("/vehicle-type", ctl.VehicleType)
		dict.GET("/vehicle-status", ctl.VehicleStatus)
		dict.GET("/order-status", ctl.OrderStatus)
	}
}
