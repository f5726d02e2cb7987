package httpclient

import (
	"context"
	"net/http"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
)

// DeliveryCoordinatorClient implements ports.DeliveryCoordinator against the
// delivery service's REST endpoint.
type DeliveryCoordinatorClient struct {
	baseURL     string
	client      *http.Client
	callTimeout time.Duration
}

// NewDeliveryCoordinatorClient creates a delivery coordinator client.
// A positive callTimeout bounds every assignment call.
func NewDeliveryCoordinatorClient(
	baseURL string,
	client *http.Client,
	callTimeout time.Duration,
) *DeliveryCoordinatorClient {
	return &DeliveryCoordinatorClient{
		baseURL:     baseURL,
		client:      client,
		callTimeout: callTimeout,
	}
}

type assignRequest struct {
	OrderID string `json:"orderId"`
}

type assignResponse struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	EstimatedTime  int    `json:"estimatedTime"`
	DeliveryPerson string `json:"deliveryPerson"`
}

// Assign creates a delivery for the order and returns the assignment detail.
func (c *DeliveryCoordinatorClient) Assign(
	ctx context.Context,
	orderID kernel.UUID,
) (*services.DeliverySnapshot, error) {
	ctx, cancel := boundContext(ctx, c.callTimeout)
	defer cancel()

	var resp assignResponse
	err := doJSON(ctx, c.client, "delivery coordinator", http.MethodPost, c.baseURL+"/api/deliveries",
		assignRequest{OrderID: orderID.String()}, &resp)
	if err != nil {
		return nil, err
	}

	return &services.DeliverySnapshot{
		ID:             resp.ID,
		Status:         resp.Status,
		EstimatedTime:  resp.EstimatedTime,
		DeliveryPerson: resp.DeliveryPerson,
	}, nil
}
