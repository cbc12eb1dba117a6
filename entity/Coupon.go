package entity

import (
	"time"

	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixedAmount DiscountType = "fixed_amount"
	DiscountFreeShip    DiscountType = "free_shipping"
)

type Coupon struct {
	gorm.Model
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	DiscountType  DiscountType `json:"discountType" gorm:"size:20;not null"`
	DiscountValue int64        `json:"discountValue"` // percent 0-100 or yen amount
	MinimumAmount *int64       `json:"minimumAmount,omitempty"`
	ExpiryDate    time.Time    `json:"expiryDate"`
	Used          bool         `json:"isUsed"`
	Code          string       `json:"code" gorm:"size:50;uniqueIndex;not null"`
}

// IsExpired is a function of the wall clock, not a stored column.
func (c *Coupon) IsExpired(now time.Time) bool {
	return now.After(c.ExpiryDate)
}

func (c *Coupon) IsAvailable(now time.Time) bool {
	return !c.Used && !c.IsExpired(now)
}
