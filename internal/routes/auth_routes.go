package routes

import (
	"fleet_manager/internal/controllers"
)

// AuthRoutes are always public.
func AuthRoutes(d *Dispatcher, ctl *controllers.AuthController) {
	auth := d.Group("/auth").Public()
	{
		auth.POST("/register", ctl.Register)
		auth.POST("/login", ctl.Login)
	}
}
