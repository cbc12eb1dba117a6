package repository

import (
	"tomyumkitchen/entity"

	"gorm.io/gorm"
)

type CouponRepository struct{ DB *gorm.DB }

func NewCouponRepository(db *gorm.DB) *CouponRepository { return &CouponRepository{DB: db} }

func (r *CouponRepository) ListCoupons() ([]entity.Coupon, error) {
	var coupons []entity.Coupon
	err := r.DB.Order("id").Find(&coupons).Error
	return coupons, err
}

func (r *CouponRepository) GetCoupon(id uint) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) GetByCode(code string) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.Where("code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
