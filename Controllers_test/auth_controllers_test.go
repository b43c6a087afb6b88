package Controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/controllers"
	"github.com/adisyonqr/restaurant-app/middlewares"
	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/utils"
)

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	authCtrl := controllers.NewAuthController(db)
	r.POST("/api/auth", authCtrl.Login)

	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/auth", authCtrl.Profile)
	auth.DELETE("/auth", authCtrl.Logout)
	return r
}

func TestLoginSetsAuthCookie(t *testing.T) {
	db := openTestDB(t, "auth_login")
	seedStaff(t, db, "Yönetici", "05553000001", "gizli123", models.RoleAdmin)

	r := setupAuthRouter(db)
	w := doJSON(t, r, http.MethodPost, "/api/auth",
		map[string]string{"phone": "05553000001", "password": "gizli123"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, utils.AuthCookieName+"=")
	assert.Contains(t, strings.ToLower(cookie), "httponly")

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.RoleAdmin, data["role"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := openTestDB(t, "auth_wrong_password")
	seedStaff(t, db, "Yönetici", "05553000002", "gizli123", models.RoleAdmin)

	r := setupAuthRouter(db)
	w := doJSON(t, r, http.MethodPost, "/api/auth",
		map[string]string{"phone": "05553000002", "password": "yanlis"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsInactiveStaff(t *testing.T) {
	db := openTestDB(t, "auth_inactive")
	staff := seedStaff(t, db, "Eski Garson", "05553000003", "gizli123", models.RoleWaiter)
	db.Model(&staff).Update("is_active", false)

	r := setupAuthRouter(db)
	w := doJSON(t, r, http.MethodPost, "/api/auth",
		map[string]string{"phone": "05553000003", "password": "gizli123"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	db := openTestDB(t, "auth_logout")
	staff := seedStaff(t, db, "Kasa", "05553000004", "gizli123", models.RoleCashier)
	token := staffToken(t, staff)

	r := setupAuthRouter(db)

	w := doJSON(t, r, http.MethodGet, "/api/auth", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/auth", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// Same token no longer works
	w = doJSON(t, r, http.MethodGet, "/api/auth", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	db := openTestDB(t, "auth_no_token")
	r := setupAuthRouter(db)

	w := doJSON(t, r, http.MethodGet, "/api/auth", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/auth", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
