package controllers

import (
	"errors"
	"strconv"

	"tomyumkitchen/pkg/resp"
	"tomyumkitchen/services"
	"tomyumkitchen/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders — checkout of the session cart
func (oc *OrderController) Create(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.Checkout(sid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrCouponUnavailable),
			errors.Is(err, services.ErrBelowMinimum),
			errors.Is(err, services.ErrBadDeliveryTime):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	// the order is in; emptying the cart is this screen's decision
	oc.Svc.Cart.Clear(sid)

	resp.Created(c, out)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	out, err := oc.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
