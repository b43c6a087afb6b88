package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/adisyonqr/restaurant-app/controllers"
	"github.com/adisyonqr/restaurant-app/middlewares"
	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/services"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	webhooks := services.NewWebhookDispatcher(db)
	orderCtrl := controllers.NewOrderController(db, webhooks)
	r.POST("/api/orders", middlewares.OptionalAuthMiddleware(), orderCtrl.CreateOrder)
	r.GET("/api/orders/:order_id", orderCtrl.GetOrderByID)
	return r
}

func seedOrderCatalog(t *testing.T, db *gorm.DB) models.Table {
	t.Helper()
	category := models.Category{Name: "Ana Yemekler", SortOrder: 0, IsActive: true}
	db.Create(&category)
	db.Create(&models.Product{Name: "Köfte", Price: 50, CategoryID: category.ID, IsActive: true})
	db.Create(&models.Product{Name: "Ayran", Price: 30, CategoryID: category.ID, IsActive: true})

	table := models.Table{Name: "Masa 5", Capacity: 4, IsActive: true}
	db.Create(&table)
	return table
}

func TestCreateOrderComputesTotalAndItems(t *testing.T) {
	db := openTestDB(t, "orders_create")
	table := seedOrderCatalog(t, db)
	r := setupOrderRouter(db)

	payload := map[string]interface{}{
		"table_id": table.ID,
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 2, "price": 50},
			{"product_id": 2, "quantity": 1, "price": 30},
		},
	}

	w := doJSON(t, r, http.MethodPost, "/api/orders", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, "Order created", resp["message"])

	var order models.Order
	err := db.Preload("Items").First(&order).Error
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 130.0, order.TotalAmount)
	assert.Len(t, order.Items, 2)
	for _, item := range order.Items {
		assert.Greater(t, item.Quantity, 0)
		assert.Equal(t, models.StatusPending, item.Status)
	}
}

func TestCreateOrderCapturesSubmittedPrice(t *testing.T) {
	db := openTestDB(t, "orders_price_capture")
	table := seedOrderCatalog(t, db)
	r := setupOrderRouter(db)

	payload := map[string]interface{}{
		"table_id": table.ID,
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 1, "price": 42.5},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/orders", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	// Raise the product's price afterwards; the order item must keep
	// the price it was submitted with.
	db.Model(&models.Product{}).Where("id = ?", 1).Update("price", 999)

	var item models.OrderItem
	assert.NoError(t, db.First(&item).Error)
	assert.Equal(t, 42.5, item.Price)
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	db := openTestDB(t, "orders_empty_cart")
	table := seedOrderCatalog(t, db)
	r := setupOrderRouter(db)

	payload := map[string]interface{}{
		"table_id": table.ID,
		"items":    []map[string]interface{}{},
	}
	w := doJSON(t, r, http.MethodPost, "/api/orders", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderRequiresTable(t *testing.T) {
	db := openTestDB(t, "orders_no_table")
	seedOrderCatalog(t, db)
	r := setupOrderRouter(db)

	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 1, "price": 50},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/orders", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	db := openTestDB(t, "orders_bad_qty")
	table := seedOrderCatalog(t, db)
	r := setupOrderRouter(db)

	payload := map[string]interface{}{
		"table_id": table.ID,
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": -2, "price": 50},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/orders", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderAttributesWaiter(t *testing.T) {
	db := openTestDB(t, "orders_waiter_attr")
	table := seedOrderCatalog(t, db)
	waiter := seedStaff(t, db, "Ayşe", "05551112233", "garson123", models.RoleWaiter)
	r := setupOrderRouter(db)

	payload := map[string]interface{}{
		"table_id": table.ID,
		"items": []map[string]interface{}{
			{"product_id": 1, "quantity": 1, "price": 50},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/orders", payload, staffToken(t, waiter))
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order).Error)
	if assert.NotNil(t, order.StaffID) {
		assert.Equal(t, waiter.ID, *order.StaffID)
	}
}

func TestGetOrderByID(t *testing.T) {
	db := openTestDB(t, "orders_get")
	table := seedOrderCatalog(t, db)
	r := setupOrderRouter(db)

	payload := map[string]interface{}{
		"table_id":      table.ID,
		"customer_name": "Mehmet",
		"items": []map[string]interface{}{
			{"product_id": 2, "quantity": 3, "price": 30},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/orders", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Mehmet", data["customer_name"])
	assert.Len(t, data["items"].([]interface{}), 1)
}
