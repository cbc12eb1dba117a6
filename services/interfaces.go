package services

import (
	"tomyumkitchen/entity"
)

// Thin read interfaces over the repositories so services can be exercised
// against in-memory fakes.

type DishSource interface {
	ListDishes() ([]entity.Dish, error)
	GetDish(id uint) (*entity.Dish, error)
	ListCategories() ([]entity.Category, error)
}

type CouponSource interface {
	ListCoupons() ([]entity.Coupon, error)
	GetCoupon(id uint) (*entity.Coupon, error)
}
