package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeAdminService struct {
	admins map[uint]*entities.Admin
	nextID uint
}

func newFakeAdminService() *fakeAdminService {
	return &fakeAdminService{admins: map[uint]*entities.Admin{}, nextID: 1}
}

func (s *fakeAdminService) GetAdmins(context.Context) ([]entities.Admin, error) {
	out := make([]entities.Admin, 0, len(s.admins))
	for _, admin := range s.admins {
		out = append(out, *admin)
	}
	return out, nil
}

func (s *fakeAdminService) GetAdmin(_ context.Context, id uint) (*entities.Admin, error) {
	admin, ok := s.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return admin, nil
}

func (s *fakeAdminService) CreateAdmin(_ context.Context, req domain.AdminRequest) (*entities.Admin, error) {
	admin := &entities.Admin{ID: s.nextID, Name: req.Name, Email: req.Email, Password: req.Password}
	s.nextID++
	s.admins[admin.ID] = admin
	return admin, nil
}

func (s *fakeAdminService) UpdateAdmin(_ context.Context, id uint, req domain.AdminRequest) error {
	if _, ok := s.admins[id]; !ok {
		return domain.ErrAdminNotFound
	}
	s.admins[id] = &entities.Admin{ID: id, Name: req.Name, Email: req.Email, Password: req.Password}
	return nil
}

func (s *fakeAdminService) DeleteAdmin(_ context.Context, id uint) error {
	if _, ok := s.admins[id]; !ok {
		return domain.ErrAdminNotFound
	}
	delete(s.admins, id)
	return nil
}

func newAdminTestApp(svc *fakeAdminService) *fiber.App {
	app := fiber.New()
	handler := NewAdminHandler(svc, validator.New())

	api := app.Group("/api/admin")
	api.Get("", handler.GetAdmins)
	api.Post("", handler.CreateAdmin)
	api.Get("/:id", handler.GetAdmin)
	api.Put("/:id", handler.UpdateAdmin)
	api.Delete("/:id", handler.DeleteAdmin)
	return app
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateAdminValidation(t *testing.T) {
	app := newAdminTestApp(newFakeAdminService())

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/admin", map[string]any{
		"name": "Root", "email": "not-an-email", "password": "secret123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.Equal(t, "Validation failed", res.Message)
	assert.NotEmpty(t, res.Errors)
}

func TestCreateAdminSuccess(t *testing.T) {
	svc := newFakeAdminService()
	app := newAdminTestApp(svc)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/admin", map[string]any{
		"name": "Root", "email": "root@example.com", "password": "secret123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Len(t, svc.admins, 1)
}

func TestUpdateAdminIDMismatch(t *testing.T) {
	svc := newFakeAdminService()
	svc.admins[3] = &entities.Admin{ID: 3, Name: "Root", Email: "root@example.com"}
	app := newAdminTestApp(svc)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/admin/3", map[string]any{
		"admin_id": 4, "name": "Root", "email": "root@example.com", "password": "secret123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.Equal(t, domain.MessageIDMismatch, res.Message)
}

func TestUpdateAdminMissingReturns404(t *testing.T) {
	app := newAdminTestApp(newFakeAdminService())

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/admin/9", map[string]any{
		"admin_id": 9, "name": "Root", "email": "root@example.com", "password": "secret123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteAdminNoContent(t *testing.T) {
	svc := newFakeAdminService()
	svc.admins[3] = &entities.Admin{ID: 3, Name: "Root", Email: "root@example.com"}
	app := newAdminTestApp(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/3", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, svc.admins)
}

func TestGetAdminInvalidID(t *testing.T) {
	app := newAdminTestApp(newFakeAdminService())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/abc", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	res := decodeResponse(t, resp.Body)
	assert.Equal(t, domain.ErrInvalidID.Error(), res.Error)
}
