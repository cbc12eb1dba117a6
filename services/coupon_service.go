package services

import (
	"log"
	"time"

	"tomyumkitchen/entity"
)

type CouponService struct {
	Repo CouponSource
}

func NewCouponService(repo CouponSource) *CouponService {
	return &CouponService{Repo: repo}
}

// List filters the coupon book the way the app's coupon tab does. Falls back
// to the bundled set when the collection is unreachable or empty.
func (s *CouponService) List(filter string, now time.Time) []entity.Coupon {
	coupons, err := s.Repo.ListCoupons()
	if err != nil || len(coupons) == 0 {
		if err != nil {
			log.Println("coupon fetch failed, using bundled set:", err)
		}
		coupons = entity.SampleCoupons(now)
	}

	out := make([]entity.Coupon, 0, len(coupons))
	for _, c := range coupons {
		switch filter {
		case "available":
			if !c.IsAvailable(now) {
				continue
			}
		case "used":
			if !c.Used {
				continue
			}
		case "expired":
			if !c.IsExpired(now) || c.Used {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
