package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahesadev/billiard-hall-app/models"
	"github.com/mahesadev/billiard-hall-app/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// tableView decorates a table with its current active booking and the
// full booking history, mirroring what the admin dashboard renders.
type tableView struct {
	models.BilliardTable
	CurrentBooking *models.Booking  `json:"current_booking,omitempty"`
	History        []models.Booking `json:"history"`
	IsAvailable    bool             `json:"is_available"`
}

// GetAllTables -> list every table with booking history and availability.
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.BilliardTable
	if err := tc.DB.Preload("Bookings", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at")
	}).Find(&tables).Error; err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	views := make([]tableView, 0, len(tables))
	for _, table := range tables {
		view := tableView{
			BilliardTable: table,
			History:       table.Bookings,
			IsAvailable:   table.Status == models.TableAvailable,
		}
		for i := range table.Bookings {
			if table.Bookings[i].Status.IsActive() {
				view.CurrentBooking = &table.Bookings[i]
				view.IsAvailable = false
				break
			}
		}
		view.Bookings = nil
		views = append(views, view)
	}

	utils.RespondJSON(c, http.StatusOK, "List of tables", views)
}

// GetTableByID -> detail of one table.
func (tc *TableController) GetTableByID(c *gin.Context) {
	var table models.BilliardTable
	if err := tc.DB.First(&table, c.Param("table_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Table not found")
			return
		}
		utils.RespondInternalError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// CreateTable -> register a new billiard table, default Available/unlit.
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Name        string             `json:"name" binding:"required"`
		Status      models.TableStatus `json:"status"`
		LightStatus models.LightStatus `json:"light_status"`
		EspPin      string             `json:"esp_pin"`
		HourlyRate  float64            `json:"hourly_rate"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	table := models.BilliardTable{
		Name:        req.Name,
		Status:      models.TableAvailable,
		LightStatus: models.LightOff,
		EspPin:      req.EspPin,
		HourlyRate:  req.HourlyRate,
	}
	if req.Status != "" {
		if !req.Status.IsValid() {
			utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown table status: %s", req.Status))
			return
		}
		table.Status = req.Status
	}
	if req.LightStatus != "" {
		if !req.LightStatus.IsValid() {
			utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown light status: %s", req.LightStatus))
			return
		}
		table.LightStatus = req.LightStatus
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (status=%s, rate=%.2f)",
		table.Name, table.Status, table.HourlyRate)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTable -> patch arbitrary table fields.
func (tc *TableController) UpdateTable(c *gin.Context) {
	var req struct {
		Name        *string             `json:"name"`
		Status      *models.TableStatus `json:"status"`
		LightStatus *models.LightStatus `json:"light_status"`
		EspPin      *string             `json:"esp_pin"`
		HourlyRate  *float64            `json:"hourly_rate"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var table models.BilliardTable
	if err := tc.DB.First(&table, c.Param("table_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Table not found")
			return
		}
		utils.RespondInternalError(c, err)
		return
	}

	if req.Name != nil {
		table.Name = *req.Name
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown table status: %s", *req.Status))
			return
		}
		table.Status = *req.Status
	}
	if req.LightStatus != nil {
		if !req.LightStatus.IsValid() {
			utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown light status: %s", *req.LightStatus))
			return
		}
		table.LightStatus = *req.LightStatus
	}
	if req.EspPin != nil {
		table.EspPin = *req.EspPin
	}
	if req.HourlyRate != nil {
		table.HourlyRate = *req.HourlyRate
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d updated", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// UpdateTableStatus -> change only the occupancy status.
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	var body struct {
		Status models.TableStatus `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !body.Status.IsValid() {
		utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown table status: %s", body.Status))
		return
	}

	var table models.BilliardTable
	if err := tc.DB.First(&table, c.Param("table_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Table not found")
			return
		}
		utils.RespondInternalError(c, err)
		return
	}

	table.Status = body.Status
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d status changed to %s", table.ID, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

// UpdateLightStatus -> toggle the table lamp relay state.
func (tc *TableController) UpdateLightStatus(c *gin.Context) {
	var body struct {
		LightStatus models.LightStatus `json:"light_status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !body.LightStatus.IsValid() {
		utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown light status: %s", body.LightStatus))
		return
	}

	var table models.BilliardTable
	if err := tc.DB.First(&table, c.Param("table_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Table not found")
			return
		}
		utils.RespondInternalError(c, err)
		return
	}

	table.LightStatus = body.LightStatus
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d light switched %s", table.ID, table.LightStatus)
	utils.RespondJSON(c, http.StatusOK, "Light status updated", table)
}

// DeleteTable -> remove a table from inventory.
func (tc *TableController) DeleteTable(c *gin.Context) {
	var table models.BilliardTable
	if err := tc.DB.First(&table, c.Param("table_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Table not found")
			return
		}
		utils.RespondInternalError(c, err)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}
