package payment

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sandbox is an in-memory Gateway for local runs and tests. It tracks
// which order numbers have been settled so duplicate prepays and refunds
// of unknown orders fail the way a real processor would.
type Sandbox struct {
	mu      sync.Mutex
	paid    map[string]bool
	refunds []string
}

func NewSandbox() *Sandbox {
	return &Sandbox{paid: make(map[string]bool)}
}

func (s *Sandbox) CreatePrepay(orderNumber string, amount int64, description, payerID string) (*Prepay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paid[orderNumber] {
		return nil, ErrAlreadyPaid
	}
	return &Prepay{
		PrepayID:  "sandbox-" + uuid.NewString(),
		NonceStr:  uuid.NewString(),
		PaySign:   "SANDBOX",
		Timestamp: time.Now().Unix(),
	}, nil
}

func (s *Sandbox) Refund(orderNumber, refundNumber string, amount, refundAmount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.paid[orderNumber] {
		return errors.New("payment: nothing captured for " + orderNumber)
	}
	delete(s.paid, orderNumber)
	s.refunds = append(s.refunds, refundNumber)
	return nil
}

// MarkPaid simulates the processor capturing the payment; the success
// callback is delivered separately by the caller.
func (s *Sandbox) MarkPaid(orderNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paid[orderNumber] = true
}

// Refunds returns the refund numbers processed so far.
func (s *Sandbox) Refunds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.refunds))
	copy(out, s.refunds)
	return out
}
