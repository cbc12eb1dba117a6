package services

import (
	"tomyumkitchen/entity"
)

// Flat delivery fee in yen, waived by a free-shipping coupon.
const DeliveryFeeFlat int64 = 300

// Discount computes the yen discount a coupon gives on a subtotal. The caller
// is responsible for only passing coupons that are available; nil means no
// coupon selected.
func Discount(coupon *entity.Coupon, subtotal int64) int64 {
	if coupon == nil {
		return 0
	}
	switch coupon.DiscountType {
	case entity.DiscountPercentage:
		return subtotal * coupon.DiscountValue / 100
	case entity.DiscountFixedAmount:
		if coupon.DiscountValue > subtotal {
			return subtotal
		}
		return coupon.DiscountValue
	case entity.DiscountFreeShip:
		// benefit is the waived fee, not a discount amount
		return 0
	}
	return 0
}

func DeliveryFee(coupon *entity.Coupon) int64 {
	if coupon != nil && coupon.DiscountType == entity.DiscountFreeShip {
		return 0
	}
	return DeliveryFeeFlat
}

func OrderTotal(subtotal int64, coupon *entity.Coupon) int64 {
	return subtotal - Discount(coupon, subtotal) + DeliveryFee(coupon)
}
