package controllers

import (
	"time"

	"tomyumkitchen/pkg/resp"
	"tomyumkitchen/services"

	"github.com/gin-gonic/gin"
)

type CouponController struct{ Svc *services.CouponService }

func NewCouponController(s *services.CouponService) *CouponController {
	return &CouponController{Svc: s}
}

// GET /coupons?filter=available|used|expired|all
func (cc *CouponController) List(c *gin.Context) {
	filter := c.DefaultQuery("filter", "available")
	resp.OK(c, gin.H{"items": cc.Svc.List(filter, time.Now())})
}
