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

type SetupController struct {
	DB *gorm.DB
}

func NewSetupController(db *gorm.DB) *SetupController {
	return &SetupController{DB: db}
}

// Status -> tells the frontend whether the wizard still has to run.
func (sc *SetupController) Status(c *gin.Context) {
	var settings models.Settings
	done := sc.DB.First(&settings).Error == nil && settings.IsSetupDone

	utils.RespondJSON(c, http.StatusOK, "Setup status", gin.H{
		"is_setup_done": done,
	})
}

// Run -> one-time setup: settings row, admin account, template default
// categories and a couple of sample products.
func (sc *SetupController) Run(c *gin.Context) {
	var req struct {
		Template       string `json:"template" binding:"required"`
		BusinessName   string `json:"business_name" binding:"required"`
		Phone          string `json:"phone" binding:"required"`
		Address        string `json:"address"`
		Description    string `json:"description"`
		PrimaryColor   string `json:"primary_color"`
		SecondaryColor string `json:"secondary_color"`
		AdminPassword  string `json:"admin_password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.Settings
	if sc.DB.First(&existing).Error == nil && existing.IsSetupDone {
		utils.RespondError(c, http.StatusBadRequest, ErrSetupDone)
		return
	}

	tpl := models.FindTemplate(req.Template)
	if tpl == nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown template: %s", req.Template))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		settings := models.Settings{
			BusinessName:   req.BusinessName,
			Phone:          req.Phone,
			Address:        req.Address,
			Description:    req.Description,
			Template:       req.Template,
			PrimaryColor:   req.PrimaryColor,
			SecondaryColor: req.SecondaryColor,
			AdminPassword:  string(hashed),
			IsSetupDone:    true,
		}
		if err := tx.Create(&settings).Error; err != nil {
			return err
		}

		admin := models.Staff{
			Name:     "Yönetici",
			Phone:    req.Phone,
			Password: string(hashed),
			Role:     models.RoleAdmin,
			IsActive: true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		var firstCategoryID uint
		for i, name := range tpl.DefaultCategories {
			cat := models.Category{Name: name, SortOrder: i, IsActive: true}
			if err := tx.Create(&cat).Error; err != nil {
				return err
			}
			if i == 0 {
				firstCategoryID = cat.ID
			}
		}

		// A couple of sample products so the admin screen is not empty
		if firstCategoryID != 0 {
			samples := []models.Product{
				{Name: "Örnek Ürün 1", Description: "Created as a sample during setup.", Price: 150.0, CategoryID: firstCategoryID, SortOrder: 0, IsActive: true},
				{Name: "Örnek Ürün 2", Description: "Created as a sample during setup.", Price: 85.0, CategoryID: firstCategoryID, SortOrder: 1, IsActive: true},
			}
			for i := range samples {
				if err := tx.Create(&samples[i]).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Setup completed for %s (template=%s)", req.BusinessName, req.Template)
	utils.RespondJSON(c, http.StatusCreated, "Setup completed", nil)
}
