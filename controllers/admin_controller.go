package controllers

import (
	"strconv"
	"time"

	"tomyumkitchen/pkg/resp"
	"tomyumkitchen/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ Svc *services.AdminService }

func NewAdminController(s *services.AdminService) *AdminController {
	return &AdminController{Svc: s}
}

// GET /admin/dashboard — the figure cards; clients poll on the interval in
// the payload
func (ac *AdminController) Dashboard(c *gin.Context) {
	resp.OK(c, ac.Svc.Dashboard(time.Now()))
}

func limitParam(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return limit
}

// GET /admin/reservations?limit=
func (ac *AdminController) Reservations(c *gin.Context) {
	items, err := ac.Svc.RecentReservations(limitParam(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/orders?limit=
func (ac *AdminController) Orders(c *gin.Context) {
	items, err := ac.Svc.RecentOrders(limitParam(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
