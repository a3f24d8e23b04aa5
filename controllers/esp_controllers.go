package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahesadev/billiard-hall-app/models"
	"github.com/mahesadev/billiard-hall-app/utils"
)

// EspController serves the lighting controller (an ESP board polling for
// which table lamps to drive).
type EspController struct {
	DB *gorm.DB
}

func NewEspController(db *gorm.DB) *EspController {
	return &EspController{DB: db}
}

// GetLightStatus -> per-table lamp state and relay pin for the ESP.
func (ec *EspController) GetLightStatus(c *gin.Context) {
	var tables []models.BilliardTable
	if err := ec.DB.Select("id", "name", "light_status", "esp_pin").Find(&tables).Error; err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	lights := make([]gin.H, 0, len(tables))
	for _, table := range tables {
		lights = append(lights, gin.H{
			"table_id":     table.ID,
			"name":         table.Name,
			"light_status": table.LightStatus,
			"esp_pin":      table.EspPin,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Light status", lights)
}
