package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mahesadev/billiard-hall-app/controllers"
	"github.com/mahesadev/billiard-hall-app/models"
	"github.com/mahesadev/billiard-hall-app/utils"
)

// setupTestDBForTables opens a private SQLite in-memory database for the
// TableController suite.
func setupTestDBForTables(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.BilliardTable{}, &models.Booking{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func setupTableRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	tableCtrl := controllers.NewTableController(db)
	router.GET("/tables", tableCtrl.GetAllTables)
	router.GET("/tables/:table_id", tableCtrl.GetTableByID)
	router.PUT("/tables", tableCtrl.CreateTable)
	router.PATCH("/tables/:table_id/update", tableCtrl.UpdateTable)
	router.PATCH("/tables/:table_id/update-status", tableCtrl.UpdateTableStatus)
	router.PATCH("/tables/:table_id/update-light-status", tableCtrl.UpdateLightStatus)
	router.DELETE("/tables/:table_id/delete", tableCtrl.DeleteTable)
	return router
}

func patchJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetAllTables(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)

	db.Create(&models.BilliardTable{Name: "Meja 1", Status: models.TableAvailable, LightStatus: models.LightOff, HourlyRate: 100})
	db.Create(&models.BilliardTable{Name: "Meja 2", Status: models.TableOccupied, LightStatus: models.LightOn, HourlyRate: 120})

	router := setupTableRouter(db)
	req, err := http.NewRequest("GET", "/tables", nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "List of tables", response["message"])

	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, true, first["is_available"])
	second := data[1].(map[string]interface{})
	assert.Equal(t, false, second["is_available"])
}

func TestCreateTableDefaults(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	router := setupTableRouter(db)

	w := patchJSON(t, router, "PUT", "/tables", map[string]interface{}{
		"name":        "Meja 3",
		"esp_pin":     "D5",
		"hourly_rate": 90,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Available", data["status"])
	assert.Equal(t, "OFF", data["light_status"])
	assert.Equal(t, "D5", data["esp_pin"])
}

func TestGetTableByIDNotFound(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	router := setupTableRouter(db)

	req, _ := http.NewRequest("GET", "/tables/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Table not found", response["error"])
}

func TestUpdateTableStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)

	table := models.BilliardTable{Name: "Meja 4", Status: models.TableAvailable, LightStatus: models.LightOff}
	db.Create(&table)

	router := setupTableRouter(db)
	url := "/tables/" + strconv.Itoa(int(table.ID)) + "/update-status"
	w := patchJSON(t, router, "PATCH", url, map[string]string{"status": "Occupied"})

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Table status updated", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Occupied", data["status"])
}

func TestUpdateTableStatusRejectsUnknownValue(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)

	table := models.BilliardTable{Name: "Meja 5", Status: models.TableAvailable}
	db.Create(&table)

	router := setupTableRouter(db)
	url := "/tables/" + strconv.Itoa(int(table.ID)) + "/update-status"
	w := patchJSON(t, router, "PATCH", url, map[string]string{"status": "Dirty"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLightStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)

	table := models.BilliardTable{Name: "Meja 6", Status: models.TableAvailable, LightStatus: models.LightOff, EspPin: "D2"}
	db.Create(&table)

	router := setupTableRouter(db)
	url := "/tables/" + strconv.Itoa(int(table.ID)) + "/update-light-status"
	w := patchJSON(t, router, "PATCH", url, map[string]string{"light_status": "ON"})

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "ON", data["light_status"])
}

func TestUpdateTableArbitraryFields(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)

	table := models.BilliardTable{Name: "Meja 7", Status: models.TableAvailable, HourlyRate: 100}
	db.Create(&table)

	router := setupTableRouter(db)
	url := "/tables/" + strconv.Itoa(int(table.ID)) + "/update"
	w := patchJSON(t, router, "PATCH", url, map[string]interface{}{
		"name":        "Meja VIP",
		"hourly_rate": 150,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Meja VIP", data["name"])
	assert.Equal(t, 150.0, data["hourly_rate"])
	// Untouched field stays put.
	assert.Equal(t, "Available", data["status"])
}

func TestDeleteTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)

	table := models.BilliardTable{Name: "Meja 8", Status: models.TableAvailable}
	db.Create(&table)

	router := setupTableRouter(db)
	url := "/tables/" + strconv.Itoa(int(table.ID)) + "/delete"
	req, _ := http.NewRequest("DELETE", url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.BilliardTable{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
