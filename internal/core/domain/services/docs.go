// Package services contains stateless domain services: logic that spans
// aggregates or derives values without belonging to any single entity.
//
// InvoiceComposer is the only service here: it turns an order plus the
// payment/delivery snapshots captured by the saga into a billing summary.
package services
