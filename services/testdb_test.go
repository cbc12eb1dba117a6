package services

import (
	"fmt"
	"testing"

	"tomyumkitchen/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway in-memory sqlite named after the test so
// parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Dish{}, &entity.Category{}, &entity.Coupon{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Reservation{}, &entity.Admin{},
	))
	return db
}
