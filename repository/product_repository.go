package repository

import (
	"strings"

	"github.com/OhadLibai/Timely-sub002/entity"
	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

type ProductFilter struct {
	CategoryID uint
	Search     string
	Page       int
	Limit      int
}

func (r *ProductRepository) List(f ProductFilter) ([]entity.Product, int64, error) {
	q := r.DB.Model(&entity.Product{}).Where("is_active = ?", true)
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []entity.Product
	err := q.Order("name ASC").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Find(&products).Error
	return products, total, err
}

func (r *ProductRepository) GetActive(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Where("id = ? AND is_active = ?", id, true).
		Preload("Category").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDs loads active products for a set of IDs in one query. Order is
// whatever the database returns.
func (r *ProductRepository) FindByIDs(ids []uint) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []entity.Product
	err := r.DB.Where("id IN ? AND is_active = ?", ids, true).Find(&products).Error
	return products, err
}

func (r *ProductRepository) ListCategories() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.Order("sort_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

func (r *ProductRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Product{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// FuzzyMatch resolves an external product reference: exact ID first, then a
// case-insensitive substring match on the name. Takes the caller's handle so
// seeding can match inside its own transaction.
func (r *ProductRepository) FuzzyMatch(tx *gorm.DB, id uint, name string) (*entity.Product, error) {
	var p entity.Product
	if id != 0 {
		if err := tx.First(&p, id).Error; err == nil {
			return &p, nil
		}
	}
	if name == "" {
		return nil, gorm.ErrRecordNotFound
	}
	err := tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("id ASC").First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
