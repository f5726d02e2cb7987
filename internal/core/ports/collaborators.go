package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// Collaborator ports consumed by the order saga and the progression engine.
// Each is a remote service reached over HTTP in production; adapters decide
// the timeout policy (the create-order path binds every call to a fixed
// timeout, the status-update path sends notifications unbounded).

// PaymentGateway settles a payment for an order and reports the outcome
// synchronously. A transport failure or timeout surfaces as a
// DownstreamUnavailableError; a declined payment is a normal response with a
// non-SUCCESS status in the snapshot.
type PaymentGateway interface {
	Charge(ctx context.Context, orderID kernel.UUID, amount float64) (*services.PaymentSnapshot, error)
}

// DeliveryCoordinator creates a delivery for a confirmed order and returns
// the assignment detail. The saga treats any error as best-effort noise.
type DeliveryCoordinator interface {
	Assign(ctx context.Context, orderID kernel.UUID) (*services.DeliverySnapshot, error)
}

// NotificationSink accepts a user notification. The response carries no data
// the callers use; only the error matters, and whether it is swallowed
// depends on the call site.
type NotificationSink interface {
	Send(ctx context.Context, userID kernel.UUID, kind, message string) error
}

// OrderStatusPusher pushes an order status change into the order service.
// The progression engine uses it for its two timed callbacks; the push goes
// through the same entry point external status updates use, so the order
// service stays the single writer of order state.
type OrderStatusPusher interface {
	Push(ctx context.Context, orderID kernel.UUID, status order.Status) error
}
