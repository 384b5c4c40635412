package chef

import (
	"context"
	"errors"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/crud"
)

type (
	ChefService interface {
		GetChefs(ctx context.Context) ([]entities.Chef, error)
		GetChef(ctx context.Context, id uint) (*entities.Chef, error)
		CreateChef(ctx context.Context, req domain.ChefRequest) (*entities.Chef, error)
		UpdateChef(ctx context.Context, id uint, req domain.ChefRequest) error
		DeleteChef(ctx context.Context, id uint) error
	}

	chefService struct {
		chefs crud.Repository[entities.Chef]
	}
)

func NewChefService(chefs crud.Repository[entities.Chef]) ChefService {
	return &chefService{chefs: chefs}
}

func (s *chefService) GetChefs(ctx context.Context) ([]entities.Chef, error) {
	return s.chefs.FindAll(ctx)
}

func (s *chefService) GetChef(ctx context.Context, id uint) (*entities.Chef, error) {
	chef, err := s.chefs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, domain.ErrChefNotFound
		}
		return nil, err
	}
	return chef, nil
}

func (s *chefService) CreateChef(ctx context.Context, req domain.ChefRequest) (*entities.Chef, error) {
	chef := fromRequest(0, req)
	if err := s.chefs.Create(ctx, chef); err != nil {
		return nil, err
	}
	return chef, nil
}

func (s *chefService) UpdateChef(ctx context.Context, id uint, req domain.ChefRequest) error {
	if err := s.chefs.Save(ctx, fromRequest(id, req)); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return domain.ErrChefNotFound
		}
		return err
	}
	return nil
}

// DeleteChef removes the chef; the chef's recipes (and their reviews) go with
// it through the FK cascade.
func (s *chefService) DeleteChef(ctx context.Context, id uint) error {
	if err := s.chefs.Delete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return domain.ErrChefNotFound
		}
		return err
	}
	return nil
}

func fromRequest(id uint, req domain.ChefRequest) *entities.Chef {
	experience := 0
	if req.Experience != nil {
		experience = *req.Experience
	}
	return &entities.Chef{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Gender:        req.Gender,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Experience:    experience,
		Image:         req.Image,
	}
}
