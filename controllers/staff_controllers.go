package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/utils"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

func (sc *StaffController) GetAllStaff(c *gin.Context) {
	var staff []models.Staff
	if err := sc.DB.Order("created_at DESC").Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of staff", staff)
}

func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.IsValidRole(req.Role) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown role: %s", req.Role))
		return
	}

	var existing models.Staff
	if sc.DB.Where("phone = ?", req.Phone).First(&existing).Error == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrPhoneTaken)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	staff := models.Staff{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: string(hashed),
		Role:     req.Role,
		IsActive: true,
	}
	if err := sc.DB.Create(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Staff created: %s (role=%s)", staff.Phone, staff.Role)
	utils.RespondJSON(c, http.StatusCreated, "Staff created", staff)
}

func (sc *StaffController) UpdateStaff(c *gin.Context) {
	staffID := c.Param("staff_id")

	var staff models.Staff
	if err := sc.DB.First(&staff, staffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Phone != nil && *req.Phone != staff.Phone {
		var other models.Staff
		if sc.DB.Where("phone = ? AND id <> ?", *req.Phone, staff.ID).First(&other).Error == nil {
			utils.RespondError(c, http.StatusBadRequest, ErrPhoneTaken)
			return
		}
		staff.Phone = *req.Phone
	}
	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Role != nil {
		if !models.IsValidRole(*req.Role) {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown role: %s", *req.Role))
			return
		}
		staff.Role = *req.Role
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		staff.Password = string(hashed)
	}

	if err := sc.DB.Save(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff updated", staff)
}

// DeleteStaff -> the last active admin cannot go; staff with order
// history is deactivated instead of removed.
func (sc *StaffController) DeleteStaff(c *gin.Context) {
	staffID := c.Param("staff_id")

	var staff models.Staff
	if err := sc.DB.First(&staff, staffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if staff.Role == models.RoleAdmin {
		var adminCount int64
		sc.DB.Model(&models.Staff{}).
			Where("role = ? AND is_active = ?", models.RoleAdmin, true).
			Count(&adminCount)
		if adminCount <= 1 {
			utils.RespondError(c, http.StatusBadRequest, ErrLastAdmin)
			return
		}
	}

	var orderCount int64
	sc.DB.Model(&models.Order{}).Where("staff_id = ?", staff.ID).Count(&orderCount)
	if orderCount > 0 {
		staff.IsActive = false
		if err := sc.DB.Save(&staff).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Staff has order history, deactivated instead of deleted", staff)
		return
	}

	if err := sc.DB.Delete(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff deleted", gin.H{"id": staff.ID})
}
