package entity

// PayStatus is the payment axis, orthogonal to OrderStatus.
type PayStatus int

const (
	Unpaid PayStatus = iota
	Paid
	Refund
)

func (s PayStatus) String() string {
	switch s {
	case Unpaid:
		return "unpaid"
	case Paid:
		return "paid"
	case Refund:
		return "refund"
	default:
		return "unknown"
	}
}
