package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/internal/api/presenters"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeRecipeService struct {
	recipes map[uint]*entities.Recipe
	nextID  uint
}

func newFakeRecipeService() *fakeRecipeService {
	return &fakeRecipeService{recipes: map[uint]*entities.Recipe{}, nextID: 1}
}

func (s *fakeRecipeService) GetRecipes(context.Context) ([]domain.RecipeResponse, error) {
	out := make([]domain.RecipeResponse, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, domain.RecipeResponse{RecipeID: r.ID, Title: r.Title})
	}
	return out, nil
}

func (s *fakeRecipeService) GetRecipe(_ context.Context, id uint) (*entities.Recipe, error) {
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *fakeRecipeService) GetChefRecipes(_ context.Context, chefID uint) ([]domain.RecipeResponse, error) {
	return nil, domain.ErrChefNotFound
}

func (s *fakeRecipeService) CreateRecipe(_ context.Context, req domain.CreateRecipeRequest) (*entities.Recipe, error) {
	recipe := &entities.Recipe{ID: s.nextID, Title: req.Title, ChefID: req.ChefID}
	s.nextID++
	s.recipes[recipe.ID] = recipe
	return recipe, nil
}

func (s *fakeRecipeService) UpdateRecipe(_ context.Context, id uint, req domain.RecipeRequest) error {
	if _, ok := s.recipes[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	s.recipes[id] = &entities.Recipe{ID: id, Title: req.Title, ChefID: req.ChefID}
	return nil
}

func (s *fakeRecipeService) DeleteRecipe(_ context.Context, id uint) error {
	if _, ok := s.recipes[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	delete(s.recipes, id)
	return nil
}

func (s *fakeRecipeService) HealthCheck(context.Context) (domain.RecipeHealthResponse, error) {
	return domain.RecipeHealthResponse{
		Message:     domain.MessageSuccessHealthCheck,
		RecipeCount: int64(len(s.recipes)),
	}, nil
}

func newRecipeTestApp(svc *fakeRecipeService) *fiber.App {
	app := fiber.New()
	handler := NewRecipeHandler(svc, validator.New())

	api := app.Group("/api/recipe")
	api.Get("", handler.GetRecipes)
	api.Get("/health", handler.HealthCheck)
	api.Get("/chef/:chefId", handler.GetChefRecipes)
	api.Post("/chef", handler.CreateChefRecipe)
	api.Get("/:id", handler.GetRecipe)
	api.Put("/:id", handler.UpdateRecipe)
	api.Delete("/:id", handler.DeleteRecipe)
	return app
}

func recipeForm(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("writing field %s: %v", key, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/recipe/chef", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func fullRecipeFields() map[string]string {
	return map[string]string{
		"title":            "Rendang",
		"description":      "Slow cooked beef",
		"ingredients":      "beef, coconut milk",
		"instructions":     "simmer for hours",
		"cooking_time":     "240",
		"servings":         "4",
		"difficulty_level": "Hard",
		"cuisine_type":     "Indonesian",
		"chef_id":          "1",
	}
}

func decodeResponse(t *testing.T, body io.Reader) presenters.Response {
	t.Helper()

	var res presenters.Response
	if err := json.NewDecoder(body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return res
}

func TestCreateRecipeMissingField(t *testing.T) {
	app := newRecipeTestApp(newFakeRecipeService())

	fields := fullRecipeFields()
	delete(fields, "title")

	resp, err := app.Test(recipeForm(t, fields))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.False(t, res.Status)
	assert.Equal(t, "All required fields must be provided.", res.Message)
}

func TestCreateRecipeSuccess(t *testing.T) {
	svc := newFakeRecipeService()
	app := newRecipeTestApp(svc)

	resp, err := app.Test(recipeForm(t, fullRecipeFields()))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.True(t, res.Status)
	assert.Len(t, svc.recipes, 1)
}

func TestCreateRecipeNonNumericServings(t *testing.T) {
	app := newRecipeTestApp(newFakeRecipeService())

	fields := fullRecipeFields()
	fields["servings"] = "four"

	resp, err := app.Test(recipeForm(t, fields))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateRecipeIDMismatch(t *testing.T) {
	svc := newFakeRecipeService()
	svc.recipes[5] = &entities.Recipe{ID: 5, Title: "Rendang", ChefID: 1}
	app := newRecipeTestApp(svc)

	body := map[string]any{
		"recipe_id": 6, "title": "Rendang", "description": "d", "ingredients": "i",
		"instructions": "x", "chef_id": 1, "difficulty_level": "Easy", "cuisine_type": "Indonesian",
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPut, "/api/recipe/5", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.Equal(t, domain.MessageIDMismatch, res.Message)
}

func TestUpdateRecipeNoContent(t *testing.T) {
	svc := newFakeRecipeService()
	svc.recipes[5] = &entities.Recipe{ID: 5, Title: "Rendang", ChefID: 1}
	app := newRecipeTestApp(svc)

	body := map[string]any{
		"recipe_id": 5, "title": "Rendang v2", "description": "d", "ingredients": "i",
		"instructions": "x", "chef_id": 1, "difficulty_level": "Easy", "cuisine_type": "Indonesian",
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPut, "/api/recipe/5", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "Rendang v2", svc.recipes[5].Title)

	raw, _ := io.ReadAll(resp.Body)
	assert.Empty(t, raw)
}

func TestDeleteRecipeNotFound(t *testing.T) {
	app := newRecipeTestApp(newFakeRecipeService())

	req := httptest.NewRequest(http.MethodDelete, "/api/recipe/42", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetRecipeInvalidID(t *testing.T) {
	app := newRecipeTestApp(newFakeRecipeService())

	req := httptest.NewRequest(http.MethodGet, "/api/recipe/abc", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetChefRecipesUnknownChef(t *testing.T) {
	app := newRecipeTestApp(newFakeRecipeService())

	req := httptest.NewRequest(http.MethodGet, "/api/recipe/chef/99", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHealthCheckRoute(t *testing.T) {
	svc := newFakeRecipeService()
	svc.recipes[1] = &entities.Recipe{ID: 1, ChefID: 1}
	app := newRecipeTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/recipe/health", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(raw), "Database connection successful"))
}
