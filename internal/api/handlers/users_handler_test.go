package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/userweb/engine/internal/models"
	"github.com/userweb/engine/internal/services"
)

// unreachableService fails the test on any call.
type unreachableService struct{ t *testing.T }

func (s unreachableService) ListUsers(context.Context) ([]models.User, error) {
	s.t.Fatal("unexpected ListUsers")
	return nil, nil
}

func (s unreachableService) GetUserByEmail(context.Context, string) (*models.User, error) {
	s.t.Fatal("unexpected GetUserByEmail")
	return nil, nil
}

func (s unreachableService) CreateUser(context.Context, *services.CreateUserInput) (*models.User, error) {
	s.t.Fatal("unexpected CreateUser")
	return nil, nil
}

func (s unreachableService) UpdateUser(context.Context, uuid.UUID, *services.UpdateUserInput) (*models.User, error) {
	s.t.Fatal("unexpected UpdateUser")
	return nil, nil
}

func (s unreachableService) UpdateUserByEmail(context.Context, *services.UpdateUserInput) (*models.User, error) {
	s.t.Fatal("unexpected UpdateUserByEmail")
	return nil, nil
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdate_UnconstrainedMountRejectsNonUUID(t *testing.T) {
	h := NewUsersHandler(unreachableService{t})

	req := httptest.NewRequest(http.MethodPut, "/users/not-a-uuid", strings.NewReader(`{"firstName":"Z"}`))
	rr := httptest.NewRecorder()
	h.Update(rr, withURLParam(req, "id", "not-a-uuid"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Body.String())
}
