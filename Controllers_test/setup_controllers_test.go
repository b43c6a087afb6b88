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

func setupSetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	setupCtrl := controllers.NewSetupController(db)
	r.GET("/api/setup", setupCtrl.Status)
	r.POST("/api/setup", setupCtrl.Run)
	return r
}

func TestSetupSeedsAdminAndCategories(t *testing.T) {
	db := openTestDB(t, "setup_run")
	r := setupSetupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/api/setup", map[string]string{
		"template":       "cafe",
		"business_name":  "Deneme Kafe",
		"phone":          "05555000001",
		"admin_password": "gizli123",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var settings models.Settings
	assert.NoError(t, db.First(&settings).Error)
	assert.True(t, settings.IsSetupDone)
	assert.Equal(t, "Deneme Kafe", settings.BusinessName)

	var admin models.Staff
	assert.NoError(t, db.Where("role = ?", models.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "05555000001", admin.Phone)

	tpl := models.FindTemplate("cafe")
	var catCount int64
	db.Model(&models.Category{}).Count(&catCount)
	assert.Equal(t, int64(len(tpl.DefaultCategories)), catCount)

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)
	assert.Equal(t, int64(2), productCount)
}

func TestSetupCannotRunTwice(t *testing.T) {
	db := openTestDB(t, "setup_twice")
	r := setupSetupRouter(db)

	payload := map[string]string{
		"template":       "restaurant",
		"business_name":  "Lokanta",
		"phone":          "05555000002",
		"admin_password": "gizli123",
	}
	w := doJSON(t, r, http.MethodPost, "/api/setup", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/setup", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetupRejectsUnknownTemplate(t *testing.T) {
	db := openTestDB(t, "setup_bad_template")
	r := setupSetupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/api/setup", map[string]string{
		"template":       "foodtruck",
		"business_name":  "Karavan",
		"phone":          "05555000003",
		"admin_password": "gizli123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Settings{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSetupStatus(t *testing.T) {
	db := openTestDB(t, "setup_status")
	r := setupSetupRouter(db)

	w := doJSON(t, r, http.MethodGet, "/api/setup", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.False(t, data["is_setup_done"].(bool))
}
