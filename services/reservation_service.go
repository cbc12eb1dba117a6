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
	ErrBadPartySize = errors.New("party size must be between 1 and 8")
	ErrBadTimeSlot  = errors.New("unknown time slot")
	ErrPastDate     = errors.New("date is in the past")
)

type ReservationService struct {
	DB   *gorm.DB
	Repo *repository.ReservationRepository
}

func NewReservationService(db *gorm.DB, repo *repository.ReservationRepository) *ReservationService {
	return &ReservationService{DB: db, Repo: repo}
}

type CreateReservationReq struct {
	CustomerName    string          `json:"customerName" binding:"required"`
	Phone           string          `json:"phone" binding:"required"`
	Email           string          `json:"email" binding:"required"`
	PartySize       int             `json:"partySize" binding:"required"`
	Date            time.Time       `json:"date" binding:"required"`
	TimeSlot        entity.TimeSlot `json:"timeSlot" binding:"required"`
	SpecialRequests string          `json:"specialRequests"`
}

type CreateReservationRes struct {
	ID                uint   `json:"id"`
	ReservationNumber string `json:"reservationNumber"`
}

func (s *ReservationService) Create(req *CreateReservationReq) (*CreateReservationRes, error) {
	if req.PartySize < 1 || req.PartySize > 8 {
		return nil, ErrBadPartySize
	}
	if !req.TimeSlot.Valid() {
		return nil, ErrBadTimeSlot
	}
	now := time.Now()
	if req.Date.Before(now) && !sameDay(req.Date, now) {
		return nil, ErrPastDate
	}

	res := entity.Reservation{
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Email:           req.Email,
		PartySize:       req.PartySize,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		SpecialRequests: req.SpecialRequests,
		Status:          entity.ReservationRequested,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &res)
	})
	if err != nil {
		return nil, err
	}

	return &CreateReservationRes{
		ID:                res.ID,
		ReservationNumber: fmt.Sprintf("#RS%04d", res.ID),
	}, nil
}

type SlotsOut struct {
	Date     time.Time         `json:"date"`
	Slots    []entity.TimeSlot `json:"slots"`
	Selected entity.TimeSlot   `json:"selected"`
}

// Slots answers the reservation form's "which times can I still book" query
// and resolves the effective selection after a date change.
func (s *ReservationService) Slots(date time.Time, selected entity.TimeSlot, now time.Time) *SlotsOut {
	available := AvailableSlots(date, now)
	return &SlotsOut{
		Date:     date,
		Slots:    available,
		Selected: EffectiveSlot(selected, available),
	}
}
