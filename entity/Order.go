package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderPending    = "pending"
	OrderPreparing  = "preparing"
	OrderReady      = "ready"
	OrderDelivering = "delivering"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

type DeliveryTime string

const (
	DeliveryASAP       DeliveryTime = "asap"
	Delivery30Min      DeliveryTime = "30min"
	Delivery1Hour      DeliveryTime = "1hour"
	Delivery1Hour30Min DeliveryTime = "1hour30min"
	Delivery2Hours     DeliveryTime = "2hours"
)

// EstimatedMinutes returns the fixed estimate for each choice; asap still
// needs ~25 minutes of kitchen time.
func (d DeliveryTime) EstimatedMinutes() int {
	switch d {
	case DeliveryASAP:
		return 25
	case Delivery30Min:
		return 30
	case Delivery1Hour:
		return 60
	case Delivery1Hour30Min:
		return 90
	case Delivery2Hours:
		return 120
	}
	return 0
}

func (d DeliveryTime) Valid() bool {
	return d.EstimatedMinutes() > 0
}

type Order struct {
	gorm.Model
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`

	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`

	Status string `json:"status" gorm:"size:20;index"`

	DeliveryTime         DeliveryTime `json:"deliveryTime" gorm:"size:20"`
	DeliveryInstructions string       `json:"deliveryInstructions"`
	EstimatedDelivery    time.Time    `json:"estimatedDelivery"`

	CouponID *uint   `json:"couponId,omitempty"`
	Coupon   *Coupon `json:"-"` // preload only when the detail needs it

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
