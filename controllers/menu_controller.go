package controllers

import (
	"strconv"

	"tomyumkitchen/pkg/resp"
	"tomyumkitchen/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController { return &MenuController{Svc: s} }

// GET /menu?category=
func (mc *MenuController) List(c *gin.Context) {
	dishes := mc.Svc.Dishes(c.Query("category"))
	resp.OK(c, gin.H{"items": dishes})
}

// GET /menu/:id
func (mc *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	d, err := mc.Svc.Dish(uint(id))
	if err != nil {
		resp.NotFound(c, "dish not found")
		return
	}
	resp.OK(c, d)
}

// GET /categories
func (mc *MenuController) Categories(c *gin.Context) {
	resp.OK(c, gin.H{"items": mc.Svc.Categories()})
}
