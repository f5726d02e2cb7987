package httpclient

import (
	"context"
	"net/http"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderStatusPusherClient implements ports.OrderStatusPusher against the
// order service's status endpoint, the same one external callers use.
type OrderStatusPusherClient struct {
	baseURL     string
	client      *http.Client
	callTimeout time.Duration
}

// NewOrderStatusPusherClient creates an order status pusher client.
func NewOrderStatusPusherClient(
	baseURL string,
	client *http.Client,
	callTimeout time.Duration,
) *OrderStatusPusherClient {
	return &OrderStatusPusherClient{
		baseURL:     baseURL,
		client:      client,
		callTimeout: callTimeout,
	}
}

type pushStatusRequest struct {
	Status string `json:"status"`
}

// Push updates the order's status through the order service.
func (c *OrderStatusPusherClient) Push(
	ctx context.Context,
	orderID kernel.UUID,
	status order.Status,
) error {
	ctx, cancel := boundContext(ctx, c.callTimeout)
	defer cancel()

	url := c.baseURL + "/api/orders/" + orderID.String() + "/status"
	return doJSON(ctx, c.client, "order service", http.MethodPut, url,
		pushStatusRequest{Status: status.String()}, nil)
}
