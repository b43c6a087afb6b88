package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/controllers"
	"github.com/adisyonqr/restaurant-app/models"
)

func setupTableRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	tableCtrl := controllers.NewTableController(db)
	r.GET("/api/tables", tableCtrl.GetAllTables)
	r.POST("/api/tables", tableCtrl.CreateTable)
	r.DELETE("/api/tables/:table_id", tableCtrl.DeleteTable)
	r.GET("/api/tables/:table_id/qr", tableCtrl.GetTableQR)
	r.POST("/api/table-groups", tableCtrl.CreateGroup)
	r.DELETE("/api/table-groups/:group_id", tableCtrl.DeleteGroup)
	return r
}

func TestDeleteTableWithoutOrdersRemovesIt(t *testing.T) {
	db := openTestDB(t, "tables_hard_delete")
	table := models.Table{Name: "Masa 1", IsActive: true}
	db.Create(&table)

	r := setupTableRouter(db)
	w := doJSON(t, r, http.MethodDelete, "/api/tables/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Table{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteTableWithHistoryDeactivatesIt(t *testing.T) {
	db := openTestDB(t, "tables_soft_delete")
	table := models.Table{Name: "Masa 1", IsActive: true}
	db.Create(&table)
	seedOrder(t, db, table.ID, models.StatusPaid)

	r := setupTableRouter(db)
	w := doJSON(t, r, http.MethodDelete, "/api/tables/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Table
	assert.NoError(t, db.First(&stored, table.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestDeleteTableWithOpenOrderIsRejected(t *testing.T) {
	db := openTestDB(t, "tables_open_order")
	table := models.Table{Name: "Masa 1", IsActive: true}
	db.Create(&table)
	seedOrder(t, db, table.ID, models.StatusPreparing)

	r := setupTableRouter(db)
	w := doJSON(t, r, http.MethodDelete, "/api/tables/1", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Table
	assert.NoError(t, db.First(&stored, table.ID).Error)
	assert.True(t, stored.IsActive)
}

func TestDeleteGroupBlockedWhileItHasTables(t *testing.T) {
	db := openTestDB(t, "tables_group_delete")
	group := models.TableGroup{Name: "Salon", IsActive: true}
	db.Create(&group)
	db.Create(&models.Table{Name: "Masa 1", GroupID: &group.ID, IsActive: true})

	r := setupTableRouter(db)
	w := doJSON(t, r, http.MethodDelete, "/api/table-groups/1", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Remove the table, then the group can go
	db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Table{})
	w = doJSON(t, r, http.MethodDelete, "/api/table-groups/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTableQRReturnsPNG(t *testing.T) {
	db := openTestDB(t, "tables_qr")
	table := models.Table{Name: "Masa 1", IsActive: true}
	db.Create(&table)

	r := setupTableRouter(db)
	w := doJSON(t, r, http.MethodGet, "/api/tables/1/qr", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	// PNG magic bytes
	assert.True(t, len(w.Body.Bytes()) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, w.Body.Bytes()[:4])
}

func TestCreateTableDefaultsCapacity(t *testing.T) {
	db := openTestDB(t, "tables_create")
	r := setupTableRouter(db)

	w := doJSON(t, r, http.MethodPost, "/api/tables", map[string]interface{}{"name": "Bahçe 1"}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var table models.Table
	assert.NoError(t, db.First(&table).Error)
	assert.Equal(t, 4, table.Capacity)
	assert.True(t, table.IsActive)
}
