package review

import (
	"context"
	"errors"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/crud"
)

type (
	ReviewService interface {
		GetReviews(ctx context.Context) ([]entities.Review, error)
		GetReview(ctx context.Context, id uint) (*entities.Review, error)
		CreateReview(ctx context.Context, req domain.ReviewRequest) (*entities.Review, error)
		DeleteReview(ctx context.Context, id uint) error
	}

	reviewService struct {
		reviews crud.Repository[entities.Review]
	}
)

func NewReviewService(reviews crud.Repository[entities.Review]) ReviewService {
	return &reviewService{reviews: reviews}
}

func (s *reviewService) GetReviews(ctx context.Context) ([]entities.Review, error) {
	return s.reviews.FindAll(ctx)
}

func (s *reviewService) GetReview(ctx context.Context, id uint) (*entities.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req domain.ReviewRequest) (*entities.Review, error) {
	review := &entities.Review{
		RecipeID:    req.RecipeID,
		FoodLoverID: req.FoodLoverID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id uint) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}
	return nil
}
