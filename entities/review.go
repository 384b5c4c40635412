package entities

import (
	"time"
)

type Review struct {
	ID          uint      `gorm:"primaryKey" json:"review_id"`
	RecipeID    uint      `gorm:"not null" json:"recipe_id"`
	FoodLoverID uint      `gorm:"column:foodlover_id;not null" json:"foodlover_id"`
	Rating      float64   `gorm:"type:decimal(3,2);not null" json:"rating"`
	Comment     string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`

	Recipe    *Recipe    `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	FoodLover *FoodLover `gorm:"foreignKey:FoodLoverID" json:"food_lover,omitempty"`
}
