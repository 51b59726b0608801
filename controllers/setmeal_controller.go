package controllers

import (
	"strconv"
	"strings"

	"github.com/LXHNeko/space-takeout/entity"
	"github.com/LXHNeko/space-takeout/pkg/resp"
	"github.com/LXHNeko/space-takeout/services"

	"github.com/gin-gonic/gin"
)

type SetmealController struct{ Service *services.SetmealService }

func NewSetmealController(s *services.SetmealService) *SetmealController {
	return &SetmealController{Service: s}
}

// POST /admin/setmeals
func (sc *SetmealController) Create(c *gin.Context) {
	var req services.SetmealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, err := sc.Service.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": id})
}

// PUT /admin/setmeals/:id
func (sc *SetmealController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.SetmealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	req.ID = uint(id)

	if err := sc.Service.Update(&req); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// DELETE /admin/setmeals?ids=1,2,3
func (sc *SetmealController) Delete(c *gin.Context) {
	raw := c.Query("ids")

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			resp.BadRequest(c, "bad id: "+part)
			return
		}
		ids = append(ids, uint(n))
	}

	if err := sc.Service.DeleteByIDs(ids); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// GET /setmeals/:id
func (sc *SetmealController) GetByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := sc.Service.GetByID(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/setmeals
func (sc *SetmealController) Page(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	var status *entity.SaleStatus
	if v := c.Query("status"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			st := entity.SaleStatus(n)
			status = &st
		}
	}

	out, err := sc.Service.Page(page, limit, c.Query("name"), status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}
