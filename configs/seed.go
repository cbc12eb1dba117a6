package configs

import (
	"log"
	"time"

	"tomyumkitchen/entity"

	"golang.org/x/crypto/bcrypt"
)

// Seed the dashboard admin on first run.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Admin{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog fills empty dishes/categories collections with the bundled menu.
func SeedCatalog() error {
	db := DB()

	for _, c := range entity.SampleCategories() {
		if err := db.Where(entity.Category{Name: c.Name}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}

	for _, d := range entity.SampleDishes() {
		if err := db.Where(entity.Dish{Name: d.Name}).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}

	log.Println("✅ catalog seeded")
	return nil
}

// SeedCoupons inserts the bundled coupon set; expiry is relative to first run.
func SeedCoupons() error {
	db := DB()

	for _, c := range entity.SampleCoupons(time.Now()) {
		if err := db.Where(entity.Coupon{Code: c.Code}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}

	log.Println("✅ coupons seeded")
	return nil
}
