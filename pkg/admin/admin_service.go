package admin

import (
	"context"
	"errors"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/crud"
)

type (
	AdminService interface {
		GetAdmins(ctx context.Context) ([]entities.Admin, error)
		GetAdmin(ctx context.Context, id uint) (*entities.Admin, error)
		CreateAdmin(ctx context.Context, req domain.AdminRequest) (*entities.Admin, error)
		UpdateAdmin(ctx context.Context, id uint, req domain.AdminRequest) error
		DeleteAdmin(ctx context.Context, id uint) error
	}

	adminService struct {
		admins crud.Repository[entities.Admin]
	}
)

func NewAdminService(admins crud.Repository[entities.Admin]) AdminService {
	return &adminService{admins: admins}
}

func (s *adminService) GetAdmins(ctx context.Context) ([]entities.Admin, error) {
	return s.admins.FindAll(ctx)
}

func (s *adminService) GetAdmin(ctx context.Context, id uint) (*entities.Admin, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (s *adminService) CreateAdmin(ctx context.Context, req domain.AdminRequest) (*entities.Admin, error) {
	admin := &entities.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminService) UpdateAdmin(ctx context.Context, id uint, req domain.AdminRequest) error {
	admin := &entities.Admin{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := s.admins.Save(ctx, admin); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return domain.ErrAdminNotFound
		}
		return err
	}
	return nil
}

func (s *adminService) DeleteAdmin(ctx context.Context, id uint) error {
	if err := s.admins.Delete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return domain.ErrAdminNotFound
		}
		return err
	}
	return nil
}
