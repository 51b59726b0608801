package services

import "errors"

// Business failures surfaced to controllers; match with errors.Is.
var (
	// not found
	ErrAddressNotFound = errors.New("address not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrSetmealNotFound = errors.New("setmeal not found")
	ErrDishNotFound    = errors.New("dish not found")

	// preconditions
	ErrCartEmpty     = errors.New("cart is empty")
	ErrEmptyIDList   = errors.New("id list is empty")
	ErrSetmealOnSale = errors.New("setmeal is on sale and cannot be deleted")

	// conflicts
	ErrOrderPaid      = errors.New("order already paid")
	ErrOrderCancelled = errors.New("order already cancelled")

	// state policy
	ErrCancelContactShop = errors.New("order already accepted, call the shop to cancel")
	ErrOrderCompleted    = errors.New("order already completed")
	ErrOrderStatus       = errors.New("unexpected order status")

	// external
	ErrRefundFailed = errors.New("cancel failed, refund was not accepted")
)
