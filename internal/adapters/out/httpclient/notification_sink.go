package httpclient

import (
	"context"
	"net/http"
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// NotificationSinkClient implements ports.NotificationSink against the
// notification service's REST endpoint.
//
// Two instances of this type exist in production: the order saga's copy
// carries a call timeout, the status-update path's copy runs with
// callTimeout zero and inherits the caller's context unchanged.
type NotificationSinkClient struct {
	baseURL     string
	client      *http.Client
	callTimeout time.Duration
}

// NewNotificationSinkClient creates a notification sink client. A zero
// callTimeout leaves the caller's context deadline (if any) in effect.
func NewNotificationSinkClient(
	baseURL string,
	client *http.Client,
	callTimeout time.Duration,
) *NotificationSinkClient {
	return &NotificationSinkClient{
		baseURL:     baseURL,
		client:      client,
		callTimeout: callTimeout,
	}
}

type sendNotificationRequest struct {
	UserID  string `json:"userId"`
	Kind    string `json:"type"`
	Message string `json:"message"`
}

// Send posts a notification for the user. The response body is ignored.
func (c *NotificationSinkClient) Send(
	ctx context.Context,
	userID kernel.UUID,
	kind, message string,
) error {
	ctx, cancel := boundContext(ctx, c.callTimeout)
	defer cancel()

	return doJSON(ctx, c.client, "notification service", http.MethodPost, c.baseURL+"/api/notifications",
		sendNotificationRequest{UserID: userID.String(), Kind: kind, Message: message}, nil)
}
