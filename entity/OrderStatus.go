package entity

// OrderStatus is the order lifecycle axis. Values are persisted as-is,
// so the numbering must not change.
type OrderStatus int

const (
	PendingPayment OrderStatus = iota + 1
	ToBeConfirmed
	Confirmed
	DeliveryInProgress
	Completed
	Cancelled
)

func (s OrderStatus) String() string {
	switch s {
	case PendingPayment:
		return "pending payment"
	case ToBeConfirmed:
		return "to be confirmed"
	case Confirmed:
		return "confirmed"
	case DeliveryInProgress:
		return "delivery in progress"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		// persisted data can carry anything
		return "unknown"
	}
}
