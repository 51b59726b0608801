// Package payment is the boundary to the external payment processor.
// The core only needs prepay creation and refunds; the wire protocol
// lives behind the Gateway interface.
package payment

import "errors"

// ErrAlreadyPaid is reported by the processor when a prepay is requested
// for an order it has already settled.
var ErrAlreadyPaid = errors.New("payment: order already paid")

// Prepay is the handle a client needs to complete payment.
type Prepay struct {
	PrepayID  string `json:"prepayId"`
	NonceStr  string `json:"nonceStr"`
	PaySign   string `json:"paySign"`
	Timestamp int64  `json:"timestamp"`
}

type Gateway interface {
	// CreatePrepay registers a pending transaction with the processor.
	CreatePrepay(orderNumber string, amount int64, description, payerID string) (*Prepay, error)
	// Refund reverses a captured payment. Any error means the money did
	// not move and the caller must not proceed.
	Refund(orderNumber, refundNumber string, amount, refundAmount int64) error
}
