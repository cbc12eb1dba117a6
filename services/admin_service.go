package services

import (
	"log"
	"sync"
	"time"

	"tomyumkitchen/entity"
	"tomyumkitchen/repository"
)

// RefreshSeconds is how often dashboard clients are told to re-poll.
const RefreshSeconds = 30

type AdminService struct {
	Orders       *repository.OrderRepository
	Reservations *repository.ReservationRepository
}

func NewAdminService(orders *repository.OrderRepository, reservations *repository.ReservationRepository) *AdminService {
	return &AdminService{Orders: orders, Reservations: reservations}
}

type DashboardStats struct {
	TodayReservations  int64 `json:"todayReservations"`
	TodayOrders        int64 `json:"todayOrders"`
	MonthlyRevenue     int64 `json:"monthlyRevenue"`
	ActiveReservations int64 `json:"activeReservations"`
	RefreshSeconds     int   `json:"refreshSeconds"`
}

// Dashboard runs the four statistics reads concurrently; they touch disjoint
// computed views so there is no ordering between them. A failed read keeps its
// zero value for this refresh cycle.
func (s *AdminService) Dashboard(now time.Time) *DashboardStats {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	stats := DashboardStats{RefreshSeconds: RefreshSeconds}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		n, err := s.Reservations.CountByDateRange(today, tomorrow)
		if err != nil {
			log.Println("today reservation count failed:", err)
			return
		}
		stats.TodayReservations = n
	}()

	go func() {
		defer wg.Done()
		n, err := s.Orders.CountCreatedBetween(today, tomorrow)
		if err != nil {
			log.Println("today order count failed:", err)
			return
		}
		stats.TodayOrders = n
	}()

	go func() {
		defer wg.Done()
		sum, err := s.Orders.SumTotalBetween(monthStart, monthEnd)
		if err != nil {
			log.Println("monthly revenue failed:", err)
			return
		}
		stats.MonthlyRevenue = sum
	}()

	go func() {
		defer wg.Done()
		n, err := s.Reservations.CountByStatuses([]string{
			entity.ReservationRequested, entity.ReservationConfirmed,
		})
		if err != nil {
			log.Println("active reservation count failed:", err)
			return
		}
		stats.ActiveReservations = n
	}()

	wg.Wait()
	return &stats
}

func (s *AdminService) RecentReservations(limit int) ([]repository.ReservationSummary, error) {
	return s.Reservations.ListRecent(limit)
}

func (s *AdminService) RecentOrders(limit int) ([]repository.OrderSummary, error) {
	return s.Orders.ListRecent(limit)
}
