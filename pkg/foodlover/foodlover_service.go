package foodlover

import (
	"context"
	"errors"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/crud"
)

type (
	FoodLoverService interface {
		GetFoodLovers(ctx context.Context) ([]entities.FoodLover, error)
		GetFoodLover(ctx context.Context, id uint) (*entities.FoodLover, error)
		CreateFoodLover(ctx context.Context, req domain.FoodLoverRequest) (*entities.FoodLover, error)
		UpdateFoodLover(ctx context.Context, id uint, req domain.FoodLoverRequest) error
		DeleteFoodLover(ctx context.Context, id uint) error
	}

	foodLoverService struct {
		foodLovers crud.Repository[entities.FoodLover]
	}
)

func NewFoodLoverService(foodLovers crud.Repository[entities.FoodLover]) FoodLoverService {
	return &foodLoverService{foodLovers: foodLovers}
}

func (s *foodLoverService) GetFoodLovers(ctx context.Context) ([]entities.FoodLover, error) {
	return s.foodLovers.FindAll(ctx)
}

func (s *foodLoverService) GetFoodLover(ctx context.Context, id uint) (*entities.FoodLover, error) {
	foodLover, err := s.foodLovers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, domain.ErrFoodLoverNotFound
		}
		return nil, err
	}
	return foodLover, nil
}

func (s *foodLoverService) CreateFoodLover(ctx context.Context, req domain.FoodLoverRequest) (*entities.FoodLover, error) {
	foodLover := fromRequest(0, req)
	if err := s.foodLovers.Create(ctx, foodLover); err != nil {
		return nil, err
	}
	return foodLover, nil
}

func (s *foodLoverService) UpdateFoodLover(ctx context.Context, id uint, req domain.FoodLoverRequest) error {
	if err := s.foodLovers.Save(ctx, fromRequest(id, req)); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return domain.ErrFoodLoverNotFound
		}
		return err
	}
	return nil
}

func (s *foodLoverService) DeleteFoodLover(ctx context.Context, id uint) error {
	if err := s.foodLovers.Delete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return domain.ErrFoodLoverNotFound
		}
		return err
	}
	return nil
}

func fromRequest(id uint, req domain.FoodLoverRequest) *entities.FoodLover {
	return &entities.FoodLover{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Gender:        req.Gender,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
	}
}
