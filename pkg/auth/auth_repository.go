package auth

import (
	"context"
	"errors"

	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/crud"

	"gorm.io/gorm"
)

type (
	// AuthRepository spans the two user tables; email uniqueness across both
	// is checked here rather than enforced by the database.
	AuthRepository interface {
		CreateFoodLover(ctx context.Context, foodLover *entities.FoodLover) error
		CreateChef(ctx context.Context, chef *entities.Chef) error
		FindFoodLoverByEmail(ctx context.Context, email string) (*entities.FoodLover, error)
		FindChefByEmail(ctx context.Context, email string) (*entities.Chef, error)
		FindFoodLoverByID(ctx context.Context, id uint) (*entities.FoodLover, error)
		FindChefByID(ctx context.Context, id uint) (*entities.Chef, error)
		EmailExists(ctx context.Context, email string) (bool, error)
	}

	authRepository struct {
		db *gorm.DB
	}
)

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateFoodLover(ctx context.Context, foodLover *entities.FoodLover) error {
	return r.db.WithContext(ctx).Create(foodLover).Error
}

func (r *authRepository) CreateChef(ctx context.Context, chef *entities.Chef) error {
	return r.db.WithContext(ctx).Create(chef).Error
}

func (r *authRepository) FindFoodLoverByEmail(ctx context.Context, email string) (*entities.FoodLover, error) {
	var foodLover entities.FoodLover
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&foodLover).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &foodLover, nil
}

func (r *authRepository) FindChefByEmail(ctx context.Context, email string) (*entities.Chef, error) {
	var chef entities.Chef
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&chef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &chef, nil
}

func (r *authRepository) FindFoodLoverByID(ctx context.Context, id uint) (*entities.FoodLover, error) {
	var foodLover entities.FoodLover
	if err := r.db.WithContext(ctx).First(&foodLover, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &foodLover, nil
}

func (r *authRepository) FindChefByID(ctx context.Context, id uint) (*entities.Chef, error) {
	var chef entities.Chef
	if err := r.db.WithContext(ctx).First(&chef, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}
	return &chef, nil
}

func (r *authRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodLover{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.db.WithContext(ctx).Model(&entities.Chef{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
