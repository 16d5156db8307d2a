package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/kbryant/sendlater/internal/models"
)

// CreateTestMessage builds an unsent message for the given owner and
// send_time (YYYY-MM-DDTHH:MM:SS). send_year_month_day is derived the
// same way the service derives it.
func CreateTestMessage(owner, sendTime string) *models.Message {
	return &models.Message{
		ID:               uuid.New().String(),
		Message:          "hello from " + owner,
		Owner:            owner,
		DisplayName:      owner,
		OutgoingPhone:    "+15005550006",
		SendTime:         sendTime,
		SendYearMonthDay: sendTime[:10],
		Sent:             false,
		DateAdded:        time.Now().UTC().Format(time.RFC3339),
	}
}

// CreateTestItem builds an active item.
func CreateTestItem(name string) *models.Item {
	return &models.Item{
		ID:          uuid.New().String(),
		ItemName:    name,
		Description: "test item",
		Price:       9.99,
		IsActive:    true,
		DateAdded:   time.Now().UTC().Format(time.RFC3339),
	}
}
