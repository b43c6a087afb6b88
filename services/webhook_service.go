package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/adisyonqr/restaurant-app/models"
	"github.com/adisyonqr/restaurant-app/utils"
	"gorm.io/gorm"
)

// Webhook event tags.
const (
	EventOrderCreated       = "ORDER_CREATED"
	EventOrderStatusChanged = "ORDER_STATUS_CHANGED"
	EventOrderPaid          = "ORDER_PAID"
)

type webhookEvent struct {
	Event   string
	OrderID uint
}

type WebhookItem struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type WebhookPayload struct {
	Event        string        `json:"event"`
	OrderID      uint          `json:"orderId"`
	TableID      uint          `json:"tableId"`
	TableName    string        `json:"tableName"`
	Status       string        `json:"status"`
	TotalAmount  float64       `json:"totalAmount"`
	CustomerName *string       `json:"customerName,omitempty"`
	Items        []WebhookItem `json:"items,omitempty"`
	Timestamp    string        `json:"timestamp"`
}

// WebhookDispatcher delivers order events to the operator-configured
// destination URL. Delivery is detached from the request that caused
// it: events go through a buffered queue consumed by a single worker,
// failures are logged and never retried or surfaced.
type WebhookDispatcher struct {
	DB       *gorm.DB
	Client   *http.Client
	queue    chan webhookEvent
	stopChan chan struct{}
}

func NewWebhookDispatcher(db *gorm.DB) *WebhookDispatcher {
	return &WebhookDispatcher{
		DB:       db,
		Client:   &http.Client{Timeout: 10 * time.Second},
		queue:    make(chan webhookEvent, 100),
		stopChan: make(chan struct{}),
	}
}

func (wd *WebhookDispatcher) Start() {
	go func() {
		for {
			select {
			case ev := <-wd.queue:
				wd.deliver(ev)
			case <-wd.stopChan:
				return
			}
		}
	}()
}

func (wd *WebhookDispatcher) Stop() {
	close(wd.stopChan)
}

// Enqueue schedules an event without blocking the caller. A full queue
// drops the event; the webhook is best-effort, at most once.
func (wd *WebhookDispatcher) Enqueue(event string, orderID uint) {
	select {
	case wd.queue <- webhookEvent{Event: event, OrderID: orderID}:
	default:
		utils.ErrorLogger.Printf("webhook queue full, dropping %s for order %d", event, orderID)
	}
}

// Flush processes everything currently queued, synchronously. Test hook.
func (wd *WebhookDispatcher) Flush() {
	for {
		select {
		case ev := <-wd.queue:
			wd.deliver(ev)
		default:
			return
		}
	}
}

func (wd *WebhookDispatcher) deliver(ev webhookEvent) {
	var settings models.Settings
	if err := wd.DB.First(&settings).Error; err != nil || settings.WebhookURL == "" {
		// No destination configured => no-op
		return
	}

	var order models.Order
	if err := wd.DB.Preload("Table").Preload("Items").Preload("Items.Product").
		First(&order, ev.OrderID).Error; err != nil {
		utils.ErrorLogger.Printf("webhook: order %d not found: %v", ev.OrderID, err)
		return
	}

	payload := WebhookPayload{
		Event:       ev.Event,
		OrderID:     order.ID,
		TableID:     order.TableID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if order.Table != nil {
		payload.TableName = order.Table.Name
	}
	if order.CustomerName != "" {
		payload.CustomerName = &order.CustomerName
	}
	for _, item := range order.Items {
		wi := WebhookItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			wi.ProductName = item.Product.Name
		}
		payload.Items = append(payload.Items, wi)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		utils.ErrorLogger.Printf("webhook: marshal failed for order %d: %v", order.ID, err)
		return
	}

	resp, err := wd.Client.Post(settings.WebhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		utils.ErrorLogger.Printf("webhook: delivery of %s for order %d failed: %v", ev.Event, order.ID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		utils.ErrorLogger.Printf("webhook: destination answered %d for order %d", resp.StatusCode, order.ID)
		return
	}
	utils.InfoLogger.Printf("webhook: delivered %s for order %d", ev.Event, order.ID)
}
