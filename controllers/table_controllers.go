package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/config"
	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetAllTables -> every table with its group, plus the group list.
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Preload("Group").Order("group_id ASC, id ASC").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var groups []models.TableGroup
	if err := tc.DB.Order("sort_order ASC").Find(&groups).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of tables", gin.H{
		"tables": tables,
		"groups": groups,
	})
}

// CreateTable -> new table inside an optional group.
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Capacity int    `json:"capacity"`
		GroupID  *uint  `json:"group_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Capacity <= 0 {
		req.Capacity = 4
	}

	table := models.Table{
		Name:     req.Name,
		Capacity: req.Capacity,
		GroupID:  req.GroupID,
		IsActive: true,
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table created: %s (capacity=%d)", table.Name, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

// UpdateTable -> rename, resize, regroup or (de)activate a table.
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Capacity *int    `json:"capacity"`
		GroupID  *uint   `json:"group_id"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		table.Name = *req.Name
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.GroupID != nil {
		table.GroupID = req.GroupID
	}
	if req.IsActive != nil {
		table.IsActive = *req.IsActive
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable applies the retention policy: an open order blocks the
// delete outright, historical orders downgrade it to a deactivation,
// otherwise the row goes away for good.
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var openOrders int64
	tc.DB.Model(&models.Order{}).
		Where("table_id = ? AND status IN ?", table.ID, models.NonTerminalStatuses).
		Count(&openOrders)
	if openOrders > 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrHasOpenOrders)
		return
	}

	var allOrders int64
	tc.DB.Model(&models.Order{}).Where("table_id = ?", table.ID).Count(&allOrders)
	if allOrders > 0 {
		table.IsActive = false
		if err := tc.DB.Save(&table).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Table %d has order history, deactivated instead of deleted", table.ID)
		utils.RespondJSON(c, http.StatusOK, "Table has order history, deactivated instead of deleted", table)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}

// GetTableQR -> PNG QR code pointing customers at this table's menu.
func (tc *TableController) GetTableQR(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	url := fmt.Sprintf("%s/menu?masa=%d", config.BaseURL(), table.ID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// CreateGroup -> new table group (a named section of the floor).
func (tc *TableController) CreateGroup(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	group := models.TableGroup{Name: req.Name, SortOrder: req.SortOrder, IsActive: true}
	if err := tc.DB.Create(&group).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Group created", group)
}

// UpdateGroup -> rename, reorder or (de)activate a group.
func (tc *TableController) UpdateGroup(c *gin.Context) {
	groupID := c.Param("group_id")

	var group models.TableGroup
	if err := tc.DB.First(&group, groupID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name      *string `json:"name"`
		SortOrder *int    `json:"sort_order"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.SortOrder != nil {
		group.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		group.IsActive = *req.IsActive
	}

	if err := tc.DB.Save(&group).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Group updated", group)
}

// DeleteGroup -> blocked while the group still owns tables.
func (tc *TableController) DeleteGroup(c *gin.Context) {
	groupID := c.Param("group_id")

	var group models.TableGroup
	if err := tc.DB.First(&group, groupID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var tableCount int64
	tc.DB.Model(&models.Table{}).Where("group_id = ?", group.ID).Count(&tableCount)
	if tableCount > 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrGroupHasTables)
		return
	}

	if err := tc.DB.Delete(&group).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Group deleted", gin.H{"id": group.ID})
}
