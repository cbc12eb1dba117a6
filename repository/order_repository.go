package repository

import (
	"time"

	"tomyumkitchen/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// POST /orders → create order
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, qty, unit_price, total, options, dish_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

// GET /admin/orders → newest first
type OrderSummary struct {
	ID                   uint                `json:"id"`
	CustomerName         string              `json:"customerName"`
	Phone                string              `json:"phone"`
	Email                string              `json:"email"`
	Address              string              `json:"address"`
	ItemCount            int64               `json:"itemCount"`
	Total                int64               `json:"total"`
	Status               string              `json:"status"`
	DeliveryTime         entity.DeliveryTime `json:"deliveryTime"`
	DeliveryInstructions string              `json:"deliveryInstructions"`
	CreatedAt            time.Time           `json:"createdAt"`
}

func (r *OrderRepository) ListRecent(limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []OrderSummary
	err := r.DB.Table("orders AS o").
		Select("o.id, o.customer_name, o.phone, o.email, o.address, "+
			"(SELECT COUNT(1) FROM order_items oi WHERE oi.order_id = o.id AND oi.deleted_at IS NULL) AS item_count, "+
			"o.total, o.status, o.delivery_time, o.delivery_instructions, o.created_at").
		Where("o.deleted_at IS NULL").
		Order("o.created_at DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// CountCreatedBetween counts orders created in [from, to).
func (r *OrderRepository) CountCreatedBetween(from, to time.Time) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}

// SumTotalBetween sums order totals over [from, to).
func (r *OrderRepository) SumTotalBetween(from, to time.Time) (int64, error) {
	var sum int64
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&sum).Error
	return sum, err
}
