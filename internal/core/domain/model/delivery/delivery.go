package delivery

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// Defaults recorded on every new delivery. The coordinator is simulated:
// there is one mock partner and a flat time estimate.
const (
	DefaultPartnerID            = "mock-partner-1"
	DefaultEstimatedTimeMinutes = 30
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the aggregate owned by the delivery coordinator. It is created
// once per confirmed order and advanced by the progression engine's two timed
// transitions; nothing else mutates it and it is never deleted.
//
// The current location is an optional informational coordinate; the
// progression engine does not read it.
type Delivery struct {
	id              kernel.UUID
	orderID         kernel.UUID
	partnerID       string
	status          Status
	estimatedTime   int
	currentLocation *kernel.GeoPoint
	createdAt       time.Time

	isConstructed bool
}

// NewDelivery creates a Delivery in Assigned status with the default partner
// and time estimate. The creation timestamp anchors the progression schedule.
func NewDelivery(id, orderID kernel.UUID, now time.Time) (*Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            id,
		orderID:       orderID,
		partnerID:     DefaultPartnerID,
		status:        Assigned,
		estimatedTime: DefaultEstimatedTimeMinutes,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id, orderID kernel.UUID,
	partnerID string,
	status Status,
	estimatedTime int,
	currentLocation *kernel.GeoPoint,
	createdAt time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if currentLocation != nil {
		if err = currentLocation.Validate(); err != nil {
			return nil, err
		}
	}

	if partnerID != "" {
		d.partnerID = partnerID
	}
	d.status = status
	d.estimatedTime = estimatedTime
	d.currentLocation = currentLocation
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order being delivered.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// PartnerID returns the delivery partner's identifier.
func (d *Delivery) PartnerID() string {
	return d.partnerID
}

// Status returns the current progression status.
func (d *Delivery) Status() Status {
	return d.status
}

// EstimatedTime returns the time estimate in minutes.
func (d *Delivery) EstimatedTime() int {
	return d.estimatedTime
}

// CurrentLocation returns the last reported coordinate, or nil when none was
// ever reported.
func (d *Delivery) CurrentLocation() *kernel.GeoPoint {
	return d.currentLocation
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// PickUp advances the delivery from Assigned to PickedUp.
func (d *Delivery) PickUp() error {
	newStatus, err := d.status.PickUp()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete advances the delivery from PickedUp to Delivered.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// ReportLocation records the partner's current coordinate.
func (d *Delivery) ReportLocation(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return err
	}

	d.currentLocation = &p
	return nil
}
