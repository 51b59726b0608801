package controllers

import (
	"strconv"
	"time"

	"github.com/LXHNeko/space-takeout/entity"
	"github.com/LXHNeko/space-takeout/pkg/resp"
	"github.com/LXHNeko/space-takeout/repository"
	"github.com/LXHNeko/space-takeout/services"
	"github.com/LXHNeko/space-takeout/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Service *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /orders
func (oc *OrderController) Submit(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.SubmitOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Submit(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /payment/:number
func (oc *OrderController) RequestPayment(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	number := c.Param("number")

	prepay, err := oc.Service.RequestPayment(uid, number)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, prepay)
}

// POST /notify/payment — gateway success callback
type payNotifyReq struct {
	OutTradeNo string `json:"outTradeNo" binding:"required"`
}

func (oc *OrderController) PayNotify(c *gin.Context) {
	var req payNotifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Service.PaySuccess(req.OutTradeNo); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// PUT /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Service.Cancel(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// POST /orders/:id/again
func (oc *OrderController) Reorder(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Service.Reorder(uid, uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// GET /orders — history of the current user
func (oc *OrderController) History(c *gin.Context) {
	q := pageQueryFrom(c)
	q.UserID = utils.CurrentUserID(c)

	out, err := oc.Service.Page(q)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := oc.Service.Detail(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/orders — full search for the shop side
func (oc *OrderController) ConditionSearch(c *gin.Context) {
	out, err := oc.Service.Page(pageQueryFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/orders/statistics
func (oc *OrderController) Statistics(c *gin.Context) {
	out, err := oc.Service.Statistics()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

func pageQueryFrom(c *gin.Context) repository.PageQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	q := repository.PageQuery{
		Page:   page,
		Limit:  limit,
		Number: c.Query("number"),
		Phone:  c.Query("phone"),
	}
	if v := c.Query("status"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			st := entity.OrderStatus(n)
			q.Status = &st
		}
	}
	if v := c.Query("begin"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q.Begin = &t
		}
	}
	if v := c.Query("end"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q.End = &t
		}
	}
	return q
}
