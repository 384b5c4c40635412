package recipe

import (
	"context"

	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/crud"

	"gorm.io/gorm"
)

type (
	// RecipeRepository is the crud pattern plus the recipe-specific queries:
	// chef/review joins are eager-loaded explicitly so listings never fan out
	// into per-row lookups.
	RecipeRepository interface {
		crud.Repository[entities.Recipe]
		FindByChef(ctx context.Context, chefID uint) ([]entities.Recipe, error)
		ChefExists(ctx context.Context, chefID uint) (bool, error)
		Ping(ctx context.Context) error
	}

	recipeRepository struct {
		crud.Repository[entities.Recipe]
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{
		Repository: crud.NewRepository[entities.Recipe](db, "Chef", "Reviews"),
		db:         db,
	}
}

func (r *recipeRepository) FindByChef(ctx context.Context, chefID uint) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Chef").
		Preload("Reviews").
		Where("chef_id = ?", chefID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) ChefExists(ctx context.Context, chefID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Chef{}).Where("id = ?", chefID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ping probes storage connectivity for the health endpoint.
func (r *recipeRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
