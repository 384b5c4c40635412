package entities

import (
	"time"
)

// FavoriteRecipe links a food lover to a recipe they marked as favorite.
// There is no API surface over this table yet; it exists in the schema with
// cascade rules so rows disappear with either parent.
type FavoriteRecipe struct {
	ID          uint      `gorm:"primaryKey" json:"favorite_recipe_id"`
	FoodLoverID uint      `gorm:"column:foodlover_id;not null" json:"foodlover_id"`
	RecipeID    uint      `gorm:"not null" json:"recipe_id"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`

	FoodLover *FoodLover `gorm:"foreignKey:FoodLoverID" json:"food_lover,omitempty"`
	Recipe    *Recipe    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
}
