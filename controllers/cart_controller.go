package controllers

import (
	"strconv"
	"time"

	"tomyumkitchen/pkg/resp"
	"tomyumkitchen/services"
	"tomyumkitchen/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
	Coupons services.CouponSource
}

func NewCartController(cart *services.CartService, catalog *services.CatalogService, coupons services.CouponSource) *CartController {
	return &CartController{Cart: cart, Catalog: catalog, Coupons: coupons}
}

// GET /cart?couponId= — lines plus the running totals the cart screen shows
func (h *CartController) Get(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	lines := h.Cart.Lines(sid)
	subtotal := h.Cart.Subtotal(sid)

	// optional coupon preview
	discount := int64(0)
	fee := services.DeliveryFeeFlat
	if v := c.Query("couponId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "invalid coupon id")
			return
		}
		coupon, err := h.Coupons.GetCoupon(uint(id))
		if err != nil || !coupon.IsAvailable(time.Now()) {
			resp.BadRequest(c, "coupon not available")
			return
		}
		discount = services.Discount(coupon, subtotal)
		fee = services.DeliveryFee(coupon)
	}

	resp.OK(c, gin.H{
		"items":     lines,
		"itemCount": h.Cart.ItemCount(sid),
		"subtotal":  subtotal,
		"discount":  discount,
		"fee":       fee,
		"total":     subtotal - discount + fee,
	})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req struct {
		DishID  uint   `json:"dishId" binding:"required"`
		Qty     int    `json:"qty" binding:"min=0"`
		Options string `json:"options"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := h.Catalog.Dish(req.DishID)
	if err != nil {
		resp.NotFound(c, "dish not found")
		return
	}

	h.Cart.Add(sid, *dish, req.Qty, req.Options)
	resp.Created(c, gin.H{"itemCount": h.Cart.ItemCount(sid)})
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	var req struct {
		DishID uint `json:"dishId" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	h.Cart.SetQuantity(sid, req.DishID, req.Qty)
	resp.OK(c, gin.H{"itemCount": h.Cart.ItemCount(sid)})
}

// DELETE /cart/items/:dishId
func (h *CartController) RemoveItem(c *gin.Context) {
	sid := utils.CurrentSessionID(c)

	id, err := strconv.Atoi(c.Param("dishId"))
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	h.Cart.Remove(sid, uint(id))
	resp.OK(c, gin.H{"itemCount": h.Cart.ItemCount(sid)})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Cart.Clear(utils.CurrentSessionID(c))
	resp.OK(c, gin.H{"ok": true})
}
