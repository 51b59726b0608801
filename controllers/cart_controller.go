package controllers

import (
	"github.com/LXHNeko/space-takeout/pkg/resp"
	"github.com/LXHNeko/space-takeout/services"
	"github.com/LXHNeko/space-takeout/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Service *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Service: s}
}

// POST /cart
func (cc *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var in services.AddToCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.Add(uid, &in); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// GET /cart
func (cc *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, amount, err := cc.Service.List(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "amount": amount})
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := cc.Service.Clear(uid); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}
