package httpclient

import (
	"context"
	"net/http"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
)

// PaymentGatewayClient implements ports.PaymentGateway against the payment
// service's REST endpoint.
type PaymentGatewayClient struct {
	baseURL     string
	client      *http.Client
	callTimeout time.Duration
}

// NewPaymentGatewayClient creates a payment gateway client. A positive
// callTimeout bounds every charge call.
func NewPaymentGatewayClient(baseURL string, client *http.Client, callTimeout time.Duration) *PaymentGatewayClient {
	return &PaymentGatewayClient{
		baseURL:     baseURL,
		client:      client,
		callTimeout: callTimeout,
	}
}

type chargeRequest struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
}

type chargeResponse struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"createdAt"`
}

// Charge settles a payment for the order and returns the gateway's snapshot.
// A declined payment is a normal response; only transport failures and
// timeouts surface as errors.
func (c *PaymentGatewayClient) Charge(
	ctx context.Context,
	orderID kernel.UUID,
	amount float64,
) (*services.PaymentSnapshot, error) {
	ctx, cancel := boundContext(ctx, c.callTimeout)
	defer cancel()

	var resp chargeResponse
	err := doJSON(ctx, c.client, "payment gateway", http.MethodPost, c.baseURL+"/api/payments",
		chargeRequest{OrderID: orderID.String(), Amount: amount}, &resp)
	if err != nil {
		return nil, err
	}

	return &services.PaymentSnapshot{
		ID:        resp.ID,
		Amount:    resp.Amount,
		Status:    resp.Status,
		Method:    resp.Method,
		CreatedAt: resp.CreatedAt,
	}, nil
}
