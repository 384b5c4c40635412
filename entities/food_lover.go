package entities

import (
	"time"
)

type FoodLover struct {
	ID            uint      `gorm:"primaryKey" json:"foodlover_id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:100;not null" json:"email"`
	Password      string    `gorm:"size:255;not null" json:"password"`
	Gender        string    `gorm:"size:10;not null" json:"gender"`
	ContactNumber string    `gorm:"size:15;not null" json:"contact_number"`
	Address       string    `gorm:"size:200;not null" json:"address"`
	CreatedAt     time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`

	Reviews   []*Review         `gorm:"foreignKey:FoodLoverID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Favorites []*FavoriteRecipe `gorm:"foreignKey:FoodLoverID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}
