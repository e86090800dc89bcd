package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_manager/internal/models"
)

// DictionaryController serves the enum lookups built at startup.
type DictionaryController struct {
	dicts *models.Dictionaries
}

func NewDictionaryController(dicts *models.Dictionaries) *DictionaryController {
	return &DictionaryController{dicts: dicts}
}

func (dc *DictionaryController) VehicleType(c *gin.Context) {
	c.JSON(http.StatusOK, dc.dicts.VehicleType)
}

func (dc *DictionaryController) VehicleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dc.dicts.VehicleStatus)
}

func (dc *DictionaryController) OrderStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dc.dicts.OrderStatus)
}
