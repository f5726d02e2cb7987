package http

import (
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/core/domain/services"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItem mirrors one line item on the wire.
type OrderItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// CreateOrderRequest is the POST /api/orders body. The customer id comes
// from the X-User-ID header, not the body.
type CreateOrderRequest struct {
	RestaurantID string      `json:"restaurantId"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
}

// Order is the wire representation of an order aggregate.
type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customerId"`
	RestaurantID string      `json:"restaurantId"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// PaymentDetails is the payment section of an invoice.
type PaymentDetails struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"createdAt"`
}

// DeliveryDetails is the delivery section of an invoice.
type DeliveryDetails struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	EstimatedTime  int    `json:"estimatedTime"`
	DeliveryPerson string `json:"deliveryPerson"`
}

// Invoice is the billing summary returned with a placed order.
type Invoice struct {
	OrderID         string           `json:"orderId"`
	CustomerID      string           `json:"customerId"`
	RestaurantID    string           `json:"restaurantId"`
	Items           []OrderItem      `json:"items"`
	Subtotal        float64          `json:"subtotal"`
	Tax             float64          `json:"tax"`
	DeliveryFee     float64          `json:"deliveryFee"`
	Total           float64          `json:"total"`
	PaymentDetails  *PaymentDetails  `json:"paymentDetails"`
	DeliveryDetails *DeliveryDetails `json:"deliveryDetails"`
	OrderDate       time.Time        `json:"orderDate"`
	Status          string           `json:"status"`
}

// CreateOrderResponse is the POST /api/orders success body.
type CreateOrderResponse struct {
	Order   Order   `json:"order"`
	Invoice Invoice `json:"invoice"`
	Message string  `json:"message"`
}

// UpdateOrderStatusRequest is the PUT /api/orders/:id/status body.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ProcessPaymentRequest is the POST /api/payments body.
type ProcessPaymentRequest struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
}

// Payment is the wire representation of a payment aggregate.
type Payment struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssignDeliveryRequest is the POST /api/deliveries body.
type AssignDeliveryRequest struct {
	OrderID string `json:"orderId"`
}

// Location is a reported delivery position.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Delivery is the wire representation of a delivery aggregate.
// CurrentLocation is null until the partner reports a position.
type Delivery struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"orderId"`
	PartnerID       string    `json:"partnerId"`
	Status          string    `json:"status"`
	EstimatedTime   int       `json:"estimatedTime"`
	CurrentLocation *Location `json:"currentLocation"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateNotificationRequest is the POST /api/notifications body.
type CreateNotificationRequest struct {
	UserID  string `json:"userId"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Notification is the wire representation of a stored notification.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func toOrderItems(items []order.Item) []OrderItem {
	result := make([]OrderItem, len(items))
	for i, item := range items {
		result[i] = OrderItem{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
		}
	}
	return result
}

func toOrderResponse(o *order.Order) Order {
	return Order{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		RestaurantID: o.RestaurantID(),
		Items:        toOrderItems(o.Items()),
		TotalAmount:  o.TotalAmount(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func toInvoiceResponse(invoice services.Invoice) Invoice {
	result := Invoice{
		OrderID:      invoice.OrderID,
		CustomerID:   invoice.CustomerID,
		RestaurantID: invoice.RestaurantID,
		Items:        toOrderItems(invoice.Items),
		Subtotal:     invoice.Subtotal,
		Tax:          invoice.Tax,
		DeliveryFee:  invoice.DeliveryFee,
		Total:        invoice.Total,
		OrderDate:    invoice.OrderDate,
		Status:       invoice.Status.String(),
	}

	if invoice.PaymentDetails != nil {
		result.PaymentDetails = &PaymentDetails{
			ID:        invoice.PaymentDetails.ID,
			Amount:    invoice.PaymentDetails.Amount,
			Status:    invoice.PaymentDetails.Status,
			Method:    invoice.PaymentDetails.Method,
			CreatedAt: invoice.PaymentDetails.CreatedAt,
		}
	}

	if invoice.DeliveryDetails != nil {
		result.DeliveryDetails = &DeliveryDetails{
			ID:             invoice.DeliveryDetails.ID,
			Status:         invoice.DeliveryDetails.Status,
			EstimatedTime:  invoice.DeliveryDetails.EstimatedTime,
			DeliveryPerson: invoice.DeliveryDetails.DeliveryPerson,
		}
	}

	return result
}

func toPaymentResponse(p *payment.Payment) Payment {
	return Payment{
		ID:        p.ID().String(),
		OrderID:   p.OrderID().String(),
		Amount:    p.Amount(),
		Status:    p.Status().String(),
		Method:    p.Method(),
		CreatedAt: p.CreatedAt(),
	}
}

func toDeliveryResponse(d *delivery.Delivery) Delivery {
	result := Delivery{
		ID:            d.ID().String(),
		OrderID:       d.OrderID().String(),
		PartnerID:     d.PartnerID(),
		Status:        d.Status().String(),
		EstimatedTime: d.EstimatedTime(),
		CreatedAt:     d.CreatedAt(),
	}

	if location := d.CurrentLocation(); location != nil {
		result.CurrentLocation = &Location{Lat: location.Lat(), Lng: location.Lng()}
	}

	return result
}

func toNotificationResponse(n *notification.Notification) Notification {
	return Notification{
		ID:        n.ID().String(),
		UserID:    n.UserID().String(),
		Type:      n.Kind(),
		Message:   n.Message(),
		CreatedAt: n.CreatedAt(),
	}
}

func toDomainItems(items []OrderItem) ([]order.Item, error) {
	result := make([]order.Item, len(items))
	for i, item := range items {
		domainItem, err := order.NewItem(item.MenuItemID, item.Name, item.Quantity, item.Price)
		if err != nil {
			return nil, err
		}
		result[i] = domainItem
	}
	return result, nil
}

func toCreateOrderResult(result commands.CreateOrderResult) CreateOrderResponse {
	return CreateOrderResponse{
		Order:   toOrderResponse(result.Order),
		Invoice: toInvoiceResponse(result.Invoice),
		Message: "Order placed successfully!",
	}
}
