package models

// Message is a scheduled outgoing text. send_time and send_year_month_day
// are stored as zero-padded strings so index range conditions compare
// chronologically.
type Message struct {
	ID            string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Message       string `gorm:"type:text;not null" json:"message"`
	Owner         string `gorm:"type:varchar(100);not null;index:idx_messages_owner_send_time,priority:1" json:"owner"`
	DisplayName   string `gorm:"type:varchar(100);not null" json:"display_name"`
	OutgoingPhone string `gorm:"type:varchar(32);not null" json:"outgoing_phone"`

	// YYYY-MM-DDTHH:MM:SS, UTC, no offset
	SendTime string `gorm:"type:varchar(19);not null;index:idx_messages_owner_send_time,priority:2;index:idx_messages_due,priority:2" json:"send_time"`

	// Derived from SendTime at create/update; partition key of the due index.
	SendYearMonthDay string `gorm:"type:varchar(10);not null;index:idx_messages_due,priority:1" json:"send_year_month_day"`

	// Flipped true at most once by the delivery sweep.
	Sent bool `gorm:"not null;default:false" json:"sent"`

	DateAdded string `gorm:"type:varchar(35);not null" json:"dateAdded"`
}
