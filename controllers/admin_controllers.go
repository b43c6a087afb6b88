package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> counters for the admin home screen. Staff
// screens poll this, so it is recomputed on every call.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	var stats struct {
		OpenOrders          int64   `json:"open_orders"`
		ReadyOrders         int64   `json:"ready_orders"`
		TodayOrders         int64   `json:"today_orders"`
		TodayRevenue        float64 `json:"today_revenue"`
		TodayRevenueDisplay string  `json:"today_revenue_display"`
		OccupiedTables      int64   `json:"occupied_tables"`
		ActiveTables        int64   `json:"active_tables"`
	}

	ac.DB.Model(&models.Order{}).
		Where("status IN ?", models.NonTerminalStatuses).
		Count(&stats.OpenOrders)
	ac.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusReady).
		Count(&stats.ReadyOrders)

	// Day boundary in local time, not UTC
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	ac.DB.Model(&models.Order{}).
		Where("created_at >= ?", today).
		Count(&stats.TodayOrders)
	ac.DB.Model(&models.Order{}).
		Where("status = ? AND updated_at >= ?", models.StatusPaid, today).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TodayRevenue)

	var settings models.Settings
	ac.DB.First(&settings)
	stats.TodayRevenueDisplay = utils.FormatPrice(stats.TodayRevenue, settings.Currency)

	ac.DB.Model(&models.Table{}).Where("is_active = ?", true).Count(&stats.ActiveTables)
	ac.DB.Model(&models.Order{}).
		Where("status IN ?", models.NonTerminalStatuses).
		Distinct("table_id").
		Count(&stats.OccupiedTables)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// ResetData wipes all business data except the acting admin account.
// The admin password is re-verified first.
func (ac *AdminController) ResetData(c *gin.Context) {
	staffID := c.GetUint("staffID")

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("password is required"))
		return
	}

	var admin models.Staff
	if err := ac.DB.First(&admin, staffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("admin account not found"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusForbidden, errors.New("wrong admin password"))
		return
	}

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		deletions := []interface{}{
			&models.OrderItem{},
			&models.Order{},
			&models.Product{},
			&models.Category{},
			&models.Table{},
			&models.TableGroup{},
		}
		for _, model := range deletions {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Where("id <> ?", admin.ID).Delete(&models.Staff{}).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("reset failed"))
		return
	}

	utils.InfoLogger.Printf("All business data reset by staff %d", admin.ID)
	utils.RespondJSON(c, http.StatusOK, "All data has been reset", nil)
}
