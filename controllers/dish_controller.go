package controllers

import (
	"github.com/LXHNeko/space-takeout/pkg/resp"
	"github.com/LXHNeko/space-takeout/repository"

	"github.com/gin-gonic/gin"
)

// Dishes are read-only through the API; the catalog is maintained by
// seeding and direct admin tooling.
type DishController struct{ Repo *repository.DishRepository }

func NewDishController(repo *repository.DishRepository) *DishController {
	return &DishController{Repo: repo}
}

// GET /dishes — dishes currently on sale
func (dc *DishController) List(c *gin.Context) {
	rows, err := dc.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}
