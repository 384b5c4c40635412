package entities

import (
	"time"
)

type Recipe struct {
	ID              uint      `gorm:"primaryKey" json:"recipe_id"`
	Title           string    `gorm:"size:100;not null" json:"title"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Ingredients     string    `gorm:"type:text;not null" json:"ingredients"`
	Instructions    string    `gorm:"type:text;not null" json:"instructions"`
	Image           *string   `gorm:"size:255" json:"image,omitempty"`
	Rating          float64   `gorm:"type:decimal(3,2);default:0" json:"rating"`
	ChefID          uint      `gorm:"not null" json:"chef_id"`
	FoodLoverID     *uint     `gorm:"column:foodlover_id" json:"foodlover_id,omitempty"`
	DifficultyLevel string    `gorm:"size:20;not null" json:"difficulty_level"`
	CuisineType     string    `gorm:"size:50;not null" json:"cuisine_type"`
	CookingTime     int       `gorm:"not null" json:"cooking_time"`
	Servings        int       `gorm:"not null" json:"servings"`
	CreatedAt       time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`

	Chef      *Chef      `gorm:"foreignKey:ChefID" json:"chef,omitempty"`
	FoodLover *FoodLover `gorm:"foreignKey:FoodLoverID;constraint:OnDelete:CASCADE" json:"food_lover,omitempty"`
	Reviews   []*Review  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}
