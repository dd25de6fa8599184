package repository

import (
	"errors"

	"github.com/OhadLibai/Timely-sub002/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetActiveCartWithItems returns the user's active cart. A user without one
// gets an empty unsaved cart so the frontend can still render.
func (r *CartRepository) GetActiveCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ? AND status = ?", userID, entity.CartStatusActive).
		Preload("Items").
		Preload("Items.Product").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, Status: entity.CartStatusActive}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateActiveCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ? AND status = ?", userID, entity.CartStatusActive).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, Status: entity.CartStatusActive}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges same-product lines by incrementing quantity.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, row.ProductID).First(&exist).Error
	if err == nil {
		exist.Quantity += row.Quantity
		exist.UnitPrice = row.UnitPrice
		exist.Total = float64(exist.Quantity) * exist.UnitPrice
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateQuantity(tx *gorm.DB, userID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	// the subquery pins the item to the caller's active cart
	res := tx.Exec(`
		UPDATE cart_items
		   SET quantity = ?, total = unit_price * ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ? AND status = ?)
	`, quantity, quantity, itemID, userID, entity.CartStatusActive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	res := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ? AND status = ?)",
			itemID, userID, entity.CartStatusActive).
		Delete(&entity.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	err := tx.Where("user_id = ? AND status = ?", userID, entity.CartStatusActive).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}

// Convert deletes the cart's items and marks it converted. Called from the
// checkout transaction after the order rows are written.
func (r *CartRepository) Convert(tx *gorm.DB, cartID uint) error {
	if err := tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("status", entity.CartStatusConverted).Error
}
