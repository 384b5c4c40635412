package recipe

import (
	"context"
	"errors"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/internal/utils/storage"
	"Recipe-Share-API/pkg/crud"

	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, id uint) (*entities.Recipe, error)
		GetChefRecipes(ctx context.Context, chefID uint) ([]domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.RecipeRequest) error
		DeleteRecipe(ctx context.Context, id uint) error
		HealthCheck(ctx context.Context) (domain.RecipeHealthResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		uploader         storage.Uploader
	}
)

func NewRecipeService(recipeRepository RecipeRepository, uploader storage.Uploader) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		uploader:         uploader,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, s.toResponse(r, false))
	}
	return res, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) GetChefRecipes(ctx context.Context, chefID uint) ([]domain.RecipeResponse, error) {
	exists, err := s.recipeRepository.ChefExists(ctx, chefID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrChefNotFound
	}

	recipes, err := s.recipeRepository.FindByChef(ctx, chefID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, s.toResponse(r, true))
	}
	return res, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error) {
	recipe := &entities.Recipe{
		Title:           req.Title,
		Description:     req.Description,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
		CookingTime:     req.CookingTime,
		Servings:        req.Servings,
		DifficultyLevel: req.DifficultyLevel,
		CuisineType:     req.CuisineType,
		ChefID:          req.ChefID,
		Rating:          0,
	}

	if req.Image != nil {
		name, err := s.uploader.UploadFile(req.Image, storage.AllowImage...)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidExtension) {
				return nil, domain.ErrInvalidFileType
			}
			return nil, err
		}
		recipe.Image = &name
	}

	if err := s.recipeRepository.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.RecipeRequest) error {
	recipe := &entities.Recipe{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
		Image:           req.Image,
		Rating:          req.Rating,
		ChefID:          req.ChefID,
		FoodLoverID:     req.FoodLoverID,
		DifficultyLevel: req.DifficultyLevel,
		CuisineType:     req.CuisineType,
		CookingTime:     req.CookingTime,
		Servings:        req.Servings,
	}
	if err := s.recipeRepository.Save(ctx, recipe); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if err := s.recipeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, crud.ErrNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) HealthCheck(ctx context.Context) (domain.RecipeHealthResponse, error) {
	if err := s.recipeRepository.Ping(ctx); err != nil {
		return domain.RecipeHealthResponse{}, err
	}

	count, err := s.recipeRepository.Count(ctx)
	if err != nil {
		return domain.RecipeHealthResponse{}, err
	}

	log.Infof("database connection successful, recipe count: %d", count)
	return domain.RecipeHealthResponse{
		Message:     domain.MessageSuccessHealthCheck,
		RecipeCount: count,
	}, nil
}

// toResponse flattens a recipe row with its joined chef and reviews. Image
// names are resolved to the URL the configured storage backend serves them
// from; with coalesce set, empty text columns fall back to placeholder values.
func (s *recipeService) toResponse(r entities.Recipe, coalesce bool) domain.RecipeResponse {
	res := domain.RecipeResponse{
		RecipeID:        r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		Rating:          r.Rating,
		DifficultyLevel: r.DifficultyLevel,
		CuisineType:     r.CuisineType,
		CookingTime:     r.CookingTime,
		Servings:        r.Servings,
		CreatedAt:       r.CreatedAt,
		Reviews:         make([]domain.RecipeReviewSummary, 0, len(r.Reviews)),
	}

	if r.Image != nil {
		link := s.uploader.FileLink(*r.Image)
		res.Image = &link
	}

	if r.Chef != nil {
		res.Chef = domain.RecipeChefSummary{
			ChefID: r.Chef.ID,
			Name:   r.Chef.Name,
			Email:  r.Chef.Email,
		}
	}

	for _, review := range r.Reviews {
		summary := domain.RecipeReviewSummary{
			ReviewID:  review.ID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		}
		if coalesce && summary.Comment == "" {
			summary.Comment = "No comment"
		}
		res.Reviews = append(res.Reviews, summary)
	}

	if coalesce {
		res.Title = orDefault(res.Title, "No title")
		res.Description = orDefault(res.Description, "No description")
		res.Ingredients = orDefault(res.Ingredients, "No ingredients")
		res.Instructions = orDefault(res.Instructions, "No instructions")
		res.DifficultyLevel = orDefault(res.DifficultyLevel, "Not specified")
		res.CuisineType = orDefault(res.CuisineType, "Not specified")
		if r.Chef != nil {
			res.Chef.Name = orDefault(res.Chef.Name, "Unknown")
			res.Chef.Email = orDefault(res.Chef.Email, "No email")
		}
	}

	return res
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
