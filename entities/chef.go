package entities

import (
	"time"
)

type Chef struct {
	ID            uint      `gorm:"primaryKey" json:"chef_id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:100;not null" json:"email"`
	Password      string    `gorm:"size:255;not null" json:"password"`
	Gender        string    `gorm:"size:10;not null" json:"gender"`
	ContactNumber string    `gorm:"size:15;not null" json:"contact_number"`
	Address       string    `gorm:"not null" json:"address"`
	Experience    int       `gorm:"not null" json:"experience"`
	Image         *string   `gorm:"size:255" json:"image,omitempty"`
	CreatedAt     time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`

	Recipes []*Recipe `gorm:"foreignKey:ChefID;constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
}
