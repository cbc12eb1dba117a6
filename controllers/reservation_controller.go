package controllers

import (
	"errors"
	"time"

	"tomyumkitchen/entity"
	"tomyumkitchen/pkg/resp"
	"tomyumkitchen/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct{ Svc *services.ReservationService }

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: s}
}

// POST /reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var req services.CreateReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := rc.Svc.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadPartySize),
			errors.Is(err, services.ErrBadTimeSlot),
			errors.Is(err, services.ErrPastDate):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

// GET /reservations/slots?date=2006-01-02&slot=18:00
func (rc *ReservationController) Slots(c *gin.Context) {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			resp.BadRequest(c, "invalid date, want YYYY-MM-DD")
			return
		}
		date = parsed
	}

	selected := services.DefaultTimeSlot
	if v := c.Query("slot"); v != "" {
		selected = entity.TimeSlot(v)
	}

	resp.OK(c, rc.Svc.Slots(date, selected, time.Now()))
}
