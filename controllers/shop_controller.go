package controllers

import (
	"log"
	"strconv"

	"github.com/LXHNeko/space-takeout/pkg/resp"
	"github.com/LXHNeko/space-takeout/services"

	"github.com/gin-gonic/gin"
)

type ShopController struct{ Service *services.ShopService }

func NewShopController(s *services.ShopService) *ShopController {
	return &ShopController{Service: s}
}

// GET /shop/status
func (sc *ShopController) GetStatus(c *gin.Context) {
	status, err := sc.Service.GetStatus(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": status})
}

// PUT /admin/shop/:status
func (sc *ShopController) SetStatus(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil || (status != 0 && status != 1) {
		resp.BadRequest(c, "status must be 0 or 1")
		return
	}
	if err := sc.Service.SetStatus(c.Request.Context(), status); err != nil {
		resp.ServerError(c, err)
		return
	}
	log.Printf("shop status set to %d", status)
	resp.OK(c, nil)
}
