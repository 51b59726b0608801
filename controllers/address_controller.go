package controllers

import (
	"strconv"

	"github.com/LXHNeko/space-takeout/entity"
	"github.com/LXHNeko/space-takeout/pkg/resp"
	"github.com/LXHNeko/space-takeout/repository"
	"github.com/LXHNeko/space-takeout/utils"

	"github.com/gin-gonic/gin"
)

// Address book is plain CRUD; the controller talks to the repository
// directly.
type AddressController struct{ Repo *repository.AddressRepository }

func NewAddressController(repo *repository.AddressRepository) *AddressController {
	return &AddressController{Repo: repo}
}

type addressIn struct {
	Consignee    string `json:"consignee" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	ProvinceName string `json:"provinceName"`
	CityName     string `json:"cityName"`
	DistrictName string `json:"districtName"`
	Detail       string `json:"detail" binding:"required"`
	IsDefault    bool   `json:"isDefault"`
}

// POST /addresses
func (ac *AddressController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var in addressIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addr := entity.AddressBook{
		UserID:       uid,
		Consignee:    in.Consignee,
		Phone:        in.Phone,
		ProvinceName: in.ProvinceName,
		CityName:     in.CityName,
		DistrictName: in.DistrictName,
		Detail:       in.Detail,
		IsDefault:    in.IsDefault,
	}
	if err := ac.Repo.Create(&addr); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, addr)
}

// GET /addresses
func (ac *AddressController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	rows, err := ac.Repo.ListByUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}

// DELETE /addresses/:id
func (ac *AddressController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ac.Repo.Delete(uid, uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, nil)
}
