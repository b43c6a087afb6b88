package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/utils"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	var settings models.Settings
	if err := sc.DB.First(&settings).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("settings not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings", settings)
}

// UpdateSettings also handles admin password rotation: a new password
// is hashed and propagated to every admin staff account.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := sc.DB.First(&settings).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("settings not found"))
		return
	}

	var req struct {
		BusinessName   *string `json:"business_name"`
		Phone          *string `json:"phone"`
		Address        *string `json:"address"`
		Description    *string `json:"description"`
		PrimaryColor   *string `json:"primary_color"`
		SecondaryColor *string `json:"secondary_color"`
		LogoURL        *string `json:"logo_url"`
		Currency       *string `json:"currency"`
		WebhookURL     *string `json:"webhook_url"`
		NewPassword    *string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.BusinessName != nil {
		settings.BusinessName = *req.BusinessName
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Description != nil {
		settings.Description = *req.Description
	}
	if req.PrimaryColor != nil {
		settings.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		settings.SecondaryColor = *req.SecondaryColor
	}
	if req.LogoURL != nil {
		settings.LogoURL = req.LogoURL
	}
	if req.Currency != nil {
		settings.Currency = *req.Currency
	}
	if req.WebhookURL != nil {
		settings.WebhookURL = *req.WebhookURL
	}

	if req.NewPassword != nil && *req.NewPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		settings.AdminPassword = string(hashed)
		if err := sc.DB.Model(&models.Staff{}).
			Where("role = ?", models.RoleAdmin).
			Update("password", string(hashed)).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := sc.DB.Save(&settings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Settings updated", settings)
}
