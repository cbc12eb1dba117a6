package repository

import (
	"time"

	"tomyumkitchen/entity"

	"gorm.io/gorm"
)

type ReservationRepository struct{ DB *gorm.DB }

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(tx *gorm.DB, res *entity.Reservation) error {
	return tx.Create(res).Error
}

// GET /admin/reservations → newest first
type ReservationSummary struct {
	ID              uint            `json:"id"`
	CustomerName    string          `json:"customerName"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	PartySize       int             `json:"partySize"`
	Date            time.Time       `json:"date"`
	TimeSlot        entity.TimeSlot `json:"timeSlot"`
	SpecialRequests string          `json:"specialRequests"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (r *ReservationRepository) ListRecent(limit int) ([]ReservationSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []ReservationSummary
	err := r.DB.Model(&entity.Reservation{}).
		Select("id, customer_name, phone, email, party_size, date, time_slot, special_requests, status, created_at").
		Order("created_at DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// CountByDateRange counts reservations whose reserved date falls in [from, to).
func (r *ReservationRepository) CountByDateRange(from, to time.Time) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Reservation{}).
		Where("date >= ? AND date < ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *ReservationRepository) CountByStatuses(statuses []string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Reservation{}).
		Where("status IN ?", statuses).
		Count(&n).Error
	return n, err
}
