package services

import (
	"errors"
	"fmt"
	"time"

	"tomyumkitchen/entity"
	"tomyumkitchen/repository"

	"gorm.io/gorm"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrCouponUnavailable = errors.New("coupon not available")
	ErrBelowMinimum      = errors.New("subtotal below coupon minimum")
	ErrBadDeliveryTime   = errors.New("unknown delivery time")
)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	Cart       *CartService
	CouponRepo CouponSource
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cart *CartService, coupons CouponSource) *OrderService {
	return &OrderService{DB: db, Repo: repo, Cart: cart, CouponRepo: coupons}
}

// ----- DTOs from Controller -----

type CheckoutReq struct {
	CustomerName         string              `json:"customerName" binding:"required"`
	Phone                string              `json:"phone" binding:"required"`
	Email                string              `json:"email" binding:"required"`
	Address              string              `json:"address" binding:"required"`
	CouponID             *uint               `json:"couponId"`
	DeliveryTime         entity.DeliveryTime `json:"deliveryTime" binding:"required"`
	DeliveryInstructions string              `json:"deliveryInstructions"`
}

type CheckoutRes struct {
	ID                uint      `json:"id"`
	OrderNumber       string    `json:"orderNumber"`
	Subtotal          int64     `json:"subtotal"`
	Discount          int64     `json:"discount"`
	DeliveryFee       int64     `json:"deliveryFee"`
	Total             int64     `json:"total"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// Checkout snapshots the session cart into an order. It does NOT clear the
// cart; that stays the caller's decision after it has shown the confirmation.
func (s *OrderService) Checkout(sessionID string, req *CheckoutReq) (*CheckoutRes, error) {
	lines := s.Cart.Lines(sessionID)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if !req.DeliveryTime.Valid() {
		return nil, ErrBadDeliveryTime
	}

	var subtotal int64
	for _, l := range lines {
		subtotal += l.Dish.Price * int64(l.Qty)
	}

	now := time.Now()

	var coupon *entity.Coupon
	if req.CouponID != nil {
		c, err := s.CouponRepo.GetCoupon(*req.CouponID)
		if err != nil {
			return nil, ErrCouponUnavailable
		}
		if !c.IsAvailable(now) {
			return nil, ErrCouponUnavailable
		}
		if c.MinimumAmount != nil && subtotal < *c.MinimumAmount {
			return nil, ErrBelowMinimum
		}
		coupon = c
	}

	discount := Discount(coupon, subtotal)
	fee := DeliveryFee(coupon)
	total := subtotal - discount + fee

	var out CheckoutRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerName:         req.CustomerName,
			Phone:                req.Phone,
			Email:                req.Email,
			Address:              req.Address,
			Subtotal:             subtotal,
			Discount:             discount,
			DeliveryFee:          fee,
			Total:                total,
			Status:               entity.OrderPending,
			DeliveryTime:         req.DeliveryTime,
			DeliveryInstructions: req.DeliveryInstructions,
			EstimatedDelivery:    now.Add(time.Duration(req.DeliveryTime.EstimatedMinutes()) * time.Minute),
		}
		if coupon != nil {
			order.CouponID = &coupon.ID
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				DishID:    l.Dish.ID,
				Qty:       l.Qty,
				UnitPrice: l.Dish.Price,
				Total:     l.Dish.Price * int64(l.Qty),
				Options:   l.Options,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = CheckoutRes{
			ID:                order.ID,
			OrderNumber:       fmt.Sprintf("#TK%04d", order.ID),
			Subtotal:          subtotal,
			Discount:          discount,
			DeliveryFee:       fee,
			Total:             total,
			EstimatedDelivery: order.EstimatedDelivery,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type OrderDetail struct {
	ID                uint               `json:"id"`
	Subtotal          int64              `json:"subtotal"`
	Discount          int64              `json:"discount"`
	DeliveryFee       int64              `json:"deliveryFee"`
	Total             int64              `json:"total"`
	Status            string             `json:"status"`
	EstimatedDelivery time.Time          `json:"estimatedDelivery"`
	Items             []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, Subtotal: o.Subtotal, Discount: o.Discount, DeliveryFee: o.DeliveryFee,
		Total: o.Total, Status: o.Status, EstimatedDelivery: o.EstimatedDelivery, Items: items,
	}, nil
}
