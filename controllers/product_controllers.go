package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/utils"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

func (pc *ProductController) GetAllProducts(c *gin.Context) {
	query := pc.DB.Preload("Category").Order("category_id ASC, sort_order ASC")
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req struct {
		Name            string  `json:"name" binding:"required"`
		Description     string  `json:"description"`
		Price           float64 `json:"price" binding:"required"`
		CategoryID      uint    `json:"category_id" binding:"required"`
		SortOrder       int     `json:"sort_order"`
		ImageURL        *string `json:"image_url"`
		PreparationTime *int    `json:"preparation_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.Category
	if err := pc.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	product := models.Product{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		SortOrder:       req.SortOrder,
		IsActive:        true,
		ImageURL:        req.ImageURL,
		PreparationTime: req.PreparationTime,
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	productID := c.Param("product_id")

	var product models.Product
	if err := pc.DB.First(&product, productID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name            *string  `json:"name"`
		Description     *string  `json:"description"`
		Price           *float64 `json:"price"`
		CategoryID      *uint    `json:"category_id"`
		SortOrder       *int     `json:"sort_order"`
		IsActive        *bool    `json:"is_active"`
		ImageURL        *string  `json:"image_url"`
		PreparationTime *int     `json:"preparation_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.SortOrder != nil {
		product.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.PreparationTime != nil {
		product.PreparationTime = req.PreparationTime
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// DeleteProduct -> a product referenced by any order item is only
// deactivated, so order history keeps its product rows.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	productID := c.Param("product_id")

	var product models.Product
	if err := pc.DB.First(&product, productID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var itemCount int64
	pc.DB.Model(&models.OrderItem{}).Where("product_id = ?", product.ID).Count(&itemCount)
	if itemCount > 0 {
		product.IsActive = false
		if err := pc.DB.Save(&product).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Product is used in order history, deactivated instead of deleted", product)
		return
	}

	if err := pc.DB.Delete(&product).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"id": product.ID})
}
