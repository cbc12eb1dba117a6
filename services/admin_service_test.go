package services

import (
	"testing"
	"time"

	"tomyumkitchen/entity"
	"tomyumkitchen/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminService(t *testing.T) (*AdminService, *gorm.DB) {
	db := newTestDB(t)
	return NewAdminService(
		repository.NewOrderRepository(db),
		repository.NewReservationRepository(db),
	), db
}

func seedOrder(t *testing.T, db *gorm.DB, total int64, createdAt time.Time) {
	t.Helper()
	o := entity.Order{
		CustomerName: "山田太郎", Total: total,
		Status: entity.OrderPending, DeliveryTime: entity.DeliveryASAP,
	}
	o.CreatedAt = createdAt
	require.NoError(t, db.Create(&o).Error)
}

func seedReservation(t *testing.T, db *gorm.DB, date time.Time, status string) {
	t.Helper()
	r := entity.Reservation{
		CustomerName: "佐藤花子", PartySize: 2,
		Date: date, TimeSlot: "18:00", Status: status,
	}
	require.NoError(t, db.Create(&r).Error)
}

func TestDashboard(t *testing.T) {
	svc, db := newAdminService(t)
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())

	seedOrder(t, db, 3000, now)
	seedOrder(t, db, 2000, now)
	// previous month, outside both windows
	seedOrder(t, db, 9999, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Add(-time.Hour))

	seedReservation(t, db, today, entity.ReservationRequested)
	seedReservation(t, db, today, entity.ReservationCancelled)
	seedReservation(t, db, today.AddDate(0, 0, 1), entity.ReservationConfirmed)

	stats := svc.Dashboard(now)
	assert.Equal(t, int64(2), stats.TodayOrders)
	assert.Equal(t, int64(5000), stats.MonthlyRevenue)
	assert.Equal(t, int64(2), stats.TodayReservations)
	assert.Equal(t, int64(2), stats.ActiveReservations, "requested and confirmed count, cancelled does not")
	assert.Equal(t, 30, stats.RefreshSeconds)
}

func TestDashboardEmptyDatabase(t *testing.T) {
	svc, _ := newAdminService(t)
	stats := svc.Dashboard(time.Now())
	assert.Zero(t, stats.TodayOrders)
	assert.Zero(t, stats.MonthlyRevenue)
	assert.Zero(t, stats.TodayReservations)
	assert.Zero(t, stats.ActiveReservations)
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	svc, db := newAdminService(t)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		seedOrder(t, db, int64(1000+i), base.Add(time.Duration(i)*time.Minute))
	}

	out, err := svc.RecentOrders(10)
	require.NoError(t, err)
	require.Len(t, out, 10)
	assert.Equal(t, int64(1011), out[0].Total)
	assert.True(t, out[0].CreatedAt.After(out[9].CreatedAt))
}

func TestRecentReservationsNewestFirst(t *testing.T) {
	svc, db := newAdminService(t)
	date := time.Now().AddDate(0, 0, 1)
	for i := 0; i < 3; i++ {
		seedReservation(t, db, date, entity.ReservationRequested)
	}

	out, err := svc.RecentReservations(2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Greater(t, out[0].ID, out[1].ID)
}
