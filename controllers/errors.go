package controllers

import (
	"errors"

	"github.com/LXHNeko/space-takeout/pkg/resp"
	"github.com/LXHNeko/space-takeout/services"

	"github.com/gin-gonic/gin"
)

// fail maps business errors onto the response envelope; anything
// unrecognized is a server error.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAddressNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrSetmealNotFound),
		errors.Is(err, services.ErrDishNotFound):
		resp.NotFound(c, err.Error())

	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrEmptyIDList),
		errors.Is(err, services.ErrSetmealOnSale),
		errors.Is(err, services.ErrCancelContactShop),
		errors.Is(err, services.ErrOrderCompleted),
		errors.Is(err, services.ErrOrderStatus):
		resp.BadRequest(c, err.Error())

	case errors.Is(err, services.ErrOrderPaid),
		errors.Is(err, services.ErrOrderCancelled):
		resp.Conflict(c, err.Error())

	case errors.Is(err, services.ErrRefundFailed):
		resp.ServerError(c, err)

	default:
		resp.ServerError(c, err)
	}
}
