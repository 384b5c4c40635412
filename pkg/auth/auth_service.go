package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/internal/utils"
	"Recipe-Share-API/internal/utils/mailing"
	"Recipe-Share-API/internal/utils/storage"
	"Recipe-Share-API/pkg/crud"
	"Recipe-Share-API/pkg/jwt"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
)

type (
	AuthService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (string, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Profile(ctx context.Context, userID uint, role string) (domain.ProfileResponse, error)
	}

	authService struct {
		authRepository AuthRepository
		jwtService     jwt.JWTService
		uploader       storage.Uploader
	}
)

func NewAuthService(authRepository AuthRepository, jwtService jwt.JWTService, uploader storage.Uploader) AuthService {
	return &authService{
		authRepository: authRepository,
		jwtService:     jwtService,
		uploader:       uploader,
	}
}

// Register creates a chef or food lover row. The image is best-effort: a bad
// extension or failed write never fails the registration itself.
func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (string, error) {
	exists, err := s.authRepository.EmailExists(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(req.Role) {
	case domain.RoleFoodLover:
		foodLover := &entities.FoodLover{
			Name:          req.Name,
			Email:         req.Email,
			Password:      string(hash),
			Gender:        req.Gender,
			ContactNumber: req.ContactNumber,
			Address:       req.Address,
		}
		if err := s.authRepository.CreateFoodLover(ctx, foodLover); err != nil {
			return "", err
		}
		s.sendWelcomeMail(req.Email, req.Name)
		return domain.MessageSuccessRegisterFoodLover, nil

	case domain.RoleChef:
		if req.Experience == nil {
			return "", domain.ErrExperienceRequired
		}

		var image *string
		if req.Image != nil {
			name, err := s.uploader.UploadFile(req.Image, storage.AllowImage...)
			if err != nil {
				log.Warnf("failed to save profile image, continuing without image: %v", err)
			} else {
				image = &name
			}
		}

		chef := &entities.Chef{
			Name:          req.Name,
			Email:         req.Email,
			Password:      string(hash),
			Gender:        req.Gender,
			ContactNumber: req.ContactNumber,
			Address:       req.Address,
			Experience:    *req.Experience,
			Image:         image,
		}
		if err := s.authRepository.CreateChef(ctx, chef); err != nil {
			return "", err
		}
		s.sendWelcomeMail(req.Email, req.Name)
		return domain.MessageSuccessRegisterChef, nil

	default:
		return "", domain.ErrInvalidRole
	}
}

// Login checks the food lover table first, then chefs. Unknown email and
// wrong password return the same error on purpose.
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	foodLover, err := s.authRepository.FindFoodLoverByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, crud.ErrNotFound) {
		return domain.LoginResponse{}, err
	}
	if foodLover != nil {
		if bcrypt.CompareHashAndPassword([]byte(foodLover.Password), []byte(req.Password)) != nil {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{
			Token:  s.jwtService.GenerateToken(foodLover.ID, domain.RoleFoodLover),
			Role:   domain.RoleFoodLover,
			UserID: foodLover.ID,
			Name:   foodLover.Name,
			Email:  foodLover.Email,
		}, nil
	}

	chef, err := s.authRepository.FindChefByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, crud.ErrNotFound) {
		return domain.LoginResponse{}, err
	}
	if chef != nil {
		if bcrypt.CompareHashAndPassword([]byte(chef.Password), []byte(req.Password)) != nil {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{
			Token:  s.jwtService.GenerateToken(chef.ID, domain.RoleChef),
			Role:   domain.RoleChef,
			UserID: chef.ID,
			Name:   chef.Name,
			Email:  chef.Email,
			Image:  chef.Image,
		}, nil
	}

	return domain.LoginResponse{}, domain.ErrInvalidCredentials
}

func (s *authService) Profile(ctx context.Context, userID uint, role string) (domain.ProfileResponse, error) {
	switch strings.ToLower(role) {
	case domain.RoleFoodLover:
		foodLover, err := s.authRepository.FindFoodLoverByID(ctx, userID)
		if err != nil {
			if errors.Is(err, crud.ErrNotFound) {
				return domain.ProfileResponse{}, domain.ErrUserNotFound
			}
			return domain.ProfileResponse{}, err
		}
		return domain.ProfileResponse{
			Name:          foodLover.Name,
			Email:         foodLover.Email,
			Gender:        foodLover.Gender,
			ContactNumber: foodLover.ContactNumber,
			Address:       foodLover.Address,
			Role:          domain.RoleFoodLover,
			UserID:        foodLover.ID,
		}, nil

	case domain.RoleChef:
		chef, err := s.authRepository.FindChefByID(ctx, userID)
		if err != nil {
			if errors.Is(err, crud.ErrNotFound) {
				return domain.ProfileResponse{}, domain.ErrUserNotFound
			}
			return domain.ProfileResponse{}, err
		}
		experience := chef.Experience
		return domain.ProfileResponse{
			Name:          chef.Name,
			Email:         chef.Email,
			Gender:        chef.Gender,
			ContactNumber: chef.ContactNumber,
			Address:       chef.Address,
			Image:         chef.Image,
			Experience:    &experience,
			Role:          domain.RoleChef,
			UserID:        chef.ID,
		}, nil

	default:
		return domain.ProfileResponse{}, domain.ErrInvalidUserRole
	}
}

// sendWelcomeMail is fire-and-forget; registration never fails on SMTP.
func (s *authService) sendWelcomeMail(email, name string) {
	if utils.GetConfig("SMTP_HOST") == "" {
		return
	}
	body := fmt.Sprintf("<p>Hi %s,</p><p>Welcome to Recipe Share. Your account is ready.</p>", name)
	if err := mailing.SendMail(email, "Welcome to Recipe Share", body); err != nil {
		log.Warnf("failed to send welcome mail to %s: %v", email, err)
	}
}
