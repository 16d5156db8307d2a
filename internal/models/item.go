package models

type Item struct {
	ID          string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	ItemName    string  `gorm:"type:varchar(200);not null" json:"itemName"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	IsActive    bool    `gorm:"not null;default:true" json:"isActive"`
	DateAdded   string  `gorm:"type:varchar(35);not null" json:"dateAdded"`
}
