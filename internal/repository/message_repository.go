package repository

import (
	"errors"

	"github.com/kbryant/sendlater/internal/models"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetByID returns nil without error when no row matches.
func (r *MessageRepository) GetByID(id string) (*models.Message, error) {
	var message models.Message
	err := r.db.Where("id = ?", id).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// Update replaces the given columns on one row and reports how many rows
// matched, so callers can distinguish a missing id from success.
func (r *MessageRepository) Update(id string, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Message{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete is a hard delete by id.
func (r *MessageRepository) Delete(id string) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Message{})
	return result.RowsAffected, result.Error
}

// ListAll is a full scan, unbounded.
func (r *MessageRepository) ListAll() ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Find(&messages).Error
	return messages, err
}

// ListByOwner reads the (owner, send_time) index, send_time ascending.
func (r *MessageRepository) ListByOwner(owner string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("owner = ?", owner).
		Order("send_time ASC").
		Find(&messages).Error
	return messages, err
}

// ListDueUnsent reads the (send_year_month_day, send_time) index: one
// calendar-day partition, everything scheduled at or before the cutoff,
// unsent rows only.
func (r *MessageRepository) ListDueUnsent(day, cutoff string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("send_year_month_day = ? AND send_time <= ? AND sent = ?", day, cutoff, false).
		Order("send_time ASC").
		Find(&messages).Error
	return messages, err
}

// MarkSent flips the sent flag for one message.
func (r *MessageRepository) MarkSent(id string) error {
	result := r.db.Model(&models.Message{}).Where("id = ?", id).Update("sent", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
