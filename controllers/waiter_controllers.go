package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/services"
	"github.com/adisyonqr/restaurant-app/utils"
)

type WaiterController struct {
	DB *gorm.DB
}

func NewWaiterController(db *gorm.DB) *WaiterController {
	return &WaiterController{DB: db}
}

// GetFloor -> occupancy projection for every active group and table,
// recomputed from current order state on each request.
func (wc *WaiterController) GetFloor(c *gin.Context) {
	groups, err := services.ProjectOccupancy(wc.DB)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Floor overview", groups)
}
