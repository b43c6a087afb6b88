package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenu -> the public menu customers see after scanning a table QR:
// active categories with their active products, empty categories
// filtered out.
func (mc *MenuController) GetMenu(c *gin.Context) {
	var categories []models.Category
	if err := mc.DB.Where("is_active = ?", true).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Order("sort_order ASC").
		Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	withProducts := make([]models.Category, 0, len(categories))
	for _, cat := range categories {
		if len(cat.Products) > 0 {
			withProducts = append(withProducts, cat)
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Menu", withProducts)
}
