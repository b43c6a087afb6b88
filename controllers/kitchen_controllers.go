package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/services"
	"github.com/adisyonqr/restaurant-app/utils"
)

type KitchenController struct {
	Orders *OrderController
}

func NewKitchenController(db *gorm.DB, webhooks *services.WebhookDispatcher) *KitchenController {
	return &KitchenController{Orders: NewOrderController(db, webhooks)}
}

// GetQueue -> orders the kitchen still works on (pending, preparing),
// oldest first. Staff screens poll this endpoint.
func (kc *KitchenController) GetQueue(c *gin.Context) {
	var orders []models.Order
	if err := kc.Orders.DB.Where("status IN ?", []string{models.StatusPending, models.StatusPreparing}).
		Preload("Table").Preload("Items").Preload("Items.Product").
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen queue", orders)
}

// UpdateStatus -> kitchen advances an order to preparing or ready.
func (kc *KitchenController) UpdateStatus(c *gin.Context) {
	var req struct {
		OrderID uint   `json:"order_id" binding:"required"`
		Status  string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.KitchenStatuses[req.Status] {
		utils.RespondError(c, http.StatusForbidden,
			fmt.Errorf("kitchen may only set status to preparing or ready"))
		return
	}

	order, ok := kc.Orders.transitionOrder(c, req.OrderID, req.Status)
	if !ok {
		return
	}

	kc.Orders.Webhooks.Enqueue(services.EventOrderStatusChanged, order.ID)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
