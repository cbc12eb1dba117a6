package entity

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type TimeSlot string

// 13 fixed half-hour start times: lunch 11:30-14:00, dinner 17:30-20:30.
var AllTimeSlots = []TimeSlot{
	"11:30", "12:00", "12:30", "13:00", "13:30", "14:00",
	"17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30",
}

func (s TimeSlot) IsLunchTime() bool {
	switch s {
	case "11:30", "12:00", "12:30", "13:00", "13:30", "14:00":
		return true
	}
	return false
}

func (s TimeSlot) Valid() bool {
	for _, slot := range AllTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Hour is the slot's starting hour ("18:30" -> 18).
func (s TimeSlot) Hour() int {
	var h, m int
	if _, err := fmt.Sscanf(string(s), "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h
}

const (
	ReservationRequested = "requested"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

type Reservation struct {
	gorm.Model
	CustomerName    string    `json:"customerName"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	PartySize       int       `json:"partySize"` // 1-8
	Date            time.Time `json:"date"`
	TimeSlot        TimeSlot  `json:"timeSlot" gorm:"size:5"`
	SpecialRequests string    `json:"specialRequests"`
	Status          string    `json:"status" gorm:"size:20;index"`
}
