package repository

import (
	"hardware_store/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// Create persists the order together with its items and status updates
	// as a single transaction.
	Create(order *models.Order) error
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	GetByOrderNumberForUser(orderNumber string, userID uint) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	ListAll() ([]models.Order, error)
	// UpdateStatus sets the order's current status and appends the audit
	// record in one transaction. Prior audit rows are never touched.
	UpdateStatus(order *models.Order, update *models.OrderStatusUpdate) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) preload() *gorm.DB {
	return r.db.
		Preload("Items").
		Preload("StatusUpdates", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		})
}

func (r *orderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.preload().Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByOrderNumberForUser(orderNumber string, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.preload().
		Where("order_number = ? AND user_id = ?", orderNumber, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.preload().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.preload().Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(order *models.Order, update *models.OrderStatusUpdate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Update("status", order.Status).Error; err != nil {
			return err
		}
		return tx.Create(update).Error
	})
}
