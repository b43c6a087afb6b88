package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/services"
	"github.com/adisyonqr/restaurant-app/utils"
)

type OrderController struct {
	DB       *gorm.DB
	Webhooks *services.WebhookDispatcher
}

func NewOrderController(db *gorm.DB, webhooks *services.WebhookDispatcher) *OrderController {
	return &OrderController{DB: db, Webhooks: webhooks}
}

type orderItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
	Note      string  `json:"note"`
}

type createOrderRequest struct {
	TableID      uint               `json:"table_id"`
	Items        []orderItemRequest `json:"items"`
	Note         string             `json:"note"`
	CustomerName string             `json:"customer_name"`
}

// CreateOrder validates the cart and commits the order together with
// its items in a single transaction. The item price is captured as
// submitted, so later product price changes do not rewrite history.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrEmptyCart)
		return
	}
	if req.TableID == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrTableRequired)
		return
	}

	var table models.Table
	if err := oc.DB.First(&table, req.TableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("table %d not found", req.TableID))
		return
	}

	var total float64
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("item %d: quantity must be positive", i+1))
			return
		}
		if item.Price < 0 {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("item %d: price cannot be negative", i+1))
			return
		}
		total += float64(item.Quantity) * item.Price
	}

	order := models.Order{
		Status:       models.StatusPending,
		TotalAmount:  total,
		Note:         req.Note,
		CustomerName: req.CustomerName,
		TableID:      req.TableID,
	}

	// Ordering staff (waiter taking the order at the table) is
	// recorded when the request is authenticated.
	if staffID := c.GetUint("staffID"); staffID != 0 {
		role := c.GetString("role")
		if role == models.RoleWaiter || role == models.RoleAdmin {
			order.StaffID = &staffID
		}
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Note:      item.Note,
				Status:    models.StatusPending,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("order could not be created"))
		return
	}

	// Scheduled, not awaited
	oc.Webhooks.Enqueue(services.EventOrderCreated, order.ID)

	utils.InfoLogger.Printf("Order %d created for table %d (total=%.2f, items=%d)",
		order.ID, order.TableID, order.TotalAmount, len(req.Items))
	utils.RespondJSON(c, http.StatusCreated, "Order created", gin.H{
		"order_id": order.ID,
	})
}

// GetAllOrders -> admin listing, optional status filter, newest first,
// capped at the last 100.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("Table").Preload("Staff").
		Preload("Items").Preload("Items.Product").
		Order("created_at DESC").Limit(100)

	if status := c.Query("status"); status != "" {
		parsed, err := models.ParseOrderStatus(status)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		query = query.Where("status = ?", parsed)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail of one order with items and table.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Table").Preload("Items").Preload("Items.Product").
		First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// transitionOrder moves an order to the target status after checking
// the closed enumeration and the terminal-state seal. Concurrency note:
// there is no optimistic locking here, two simultaneous transitions
// race with last-write-wins.
func (oc *OrderController) transitionOrder(c *gin.Context, orderID uint, target string) (*models.Order, bool) {
	parsed, err := models.ParseOrderStatus(target)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return nil, false
	}

	var order models.Order
	if err := oc.DB.First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return nil, false
	}

	if err := models.CanTransition(order.Status, parsed); err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return nil, false
	}

	previous := order.Status
	order.Status = parsed
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return nil, false
	}

	utils.InfoLogger.Printf("Order %d: %s -> %s", order.ID, previous, parsed)
	return &order, true
}
