package repository

import (
	"errors"

	"github.com/kbryant/sendlater/internal/models"
	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *ItemRepository) GetByID(id string) (*models.Item, error) {
	var item models.Item
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) Update(id string, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Item{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *ItemRepository) Delete(id string) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Item{})
	return result.RowsAffected, result.Error
}

func (r *ItemRepository) ListAll() ([]models.Item, error) {
	var items []models.Item
	err := r.db.Find(&items).Error
	return items, err
}
