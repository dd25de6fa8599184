package repository

import (
	"errors"
	"time"

	"github.com/OhadLibai/Timely-sub002/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreateDelivery(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Create(d).Error
}

// LatestForUser returns the user's most recent order, or nil when the user
// has never ordered. Runs on the caller's handle so it stays inside the
// checkout transaction.
func (r *OrderRepository) LatestForUser(tx *gorm.DB, userID uint) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where("user_id = ?", userID).Order("created_at DESC").First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID          uint      `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListForUser(userID uint, page, limit int) ([]OrderSummary, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Order{}).Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, status, total, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&items).Error
	return items, total, err
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		Preload("Items.Product").
		Preload("Delivery").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListAll(page, limit int) ([]entity.Order, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := r.DB.Preload("User").
		Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountSince(t time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}

func (r *OrderRepository) RevenueSince(t time.Time) (float64, error) {
	var revenue float64
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("created_at >= ?", t).
		Scan(&revenue).Error
	return revenue, err
}
