package routes

import (
	"io"
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"

	"fleet_manager/internal/auth"
	"fleet_manager/internal/config"
	"fleet_manager/internal/controllers"
	"fleet_manager/internal/middleware"
	"fleet_manager/internal/models"
	"fleet_manager/internal/store"
)

// SetupRouter wires every resource onto a new engine. Request logs go to
// logWriter.
func SetupRouter(cfg *config.Config, s *store.Store, logWriter io.Writer) *gin.Engine {
	r := gin.New()
	r.Use(
		ginlog.SetLogger(ginlog.WithWriter(logWriter), ginlog.WithUTC(true)),
		gin.Recovery(),
		middleware.CORS(),
	)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	secret := cfg.Auth.TokenSecret
	if secret == "" {
		secret = uuid.NewString()
		logrus.Warn("TOKEN_SECRET not set, issuing tokens with a per-process key")
	}
	tokens := middleware.NewTokenManager(secret)

	var gate gin.HandlerFunc
	if cfg.Auth.Enabled {
		gate = middleware.RequireAuth(tokens)
	}
	var delay Delayer
	if cfg.Delay.Enabled {
		delay = middleware.Delayer{Min: cfg.Delay.Min, Max: cfg.Delay.Max}
	}
	d := NewDispatcher(r, gate, delay)

	AuthRoutes(d, controllers.NewAuthController(auth.NewService(s, tokens)))
	DriverRoutes(d, controllers.NewDriverController(s))
	VehicleRoutes(d, controllers.NewVehicleController(s))
	OrderRoutes(d, controllers.NewOrderController(s))
	DictionaryRoutes(d, controllers.NewDictionaryController(models.NewDictionaries()))

	for _, route := range d.Routes() {
		logrus.WithFields(logrus.Fields{
			"method": route.Method,
			"path":   route.Path,
		}).Debug("Route registered")
	}
	logrus.WithFields(logrus.Fields{
		"routes":        len(d.Routes()),
		"auth_enabled":  cfg.Auth.Enabled,
		"delay_enabled": cfg.Delay.Enabled,
	}).Info("Router ready")

	return r
}
