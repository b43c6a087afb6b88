package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/services"
	"github.com/adisyonqr/restaurant-app/utils"
)

type CashierController struct {
	Orders *OrderController
}

func NewCashierController(db *gorm.DB, webhooks *services.WebhookDispatcher) *CashierController {
	return &CashierController{Orders: NewOrderController(db, webhooks)}
}

// GetOpenBills -> all orders not yet paid or cancelled, oldest first.
func (cc *CashierController) GetOpenBills(c *gin.Context) {
	var orders []models.Order
	if err := cc.Orders.DB.Where("status IN ?", models.NonTerminalStatuses).
		Preload("Table").Preload("Items").Preload("Items.Product").
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Open bills", orders)
}

// UpdateStatus -> cashier settles or cancels a bill; any valid
// non-terminal target is also accepted (e.g. mark served).
func (cc *CashierController) UpdateStatus(c *gin.Context) {
	var req struct {
		OrderID uint   `json:"order_id" binding:"required"`
		Status  string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, ok := cc.Orders.transitionOrder(c, req.OrderID, req.Status)
	if !ok {
		return
	}

	event := services.EventOrderStatusChanged
	if order.Status == models.StatusPaid {
		event = services.EventOrderPaid
	}
	cc.Orders.Webhooks.Enqueue(event, order.ID)

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
