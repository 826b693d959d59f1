package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/userweb/engine/internal/api/types"
	"github.com/userweb/engine/internal/services"
	appErr "github.com/userweb/engine/pkg/errors"
)

type UsersHandler struct {
	svc services.UserService
}

func NewUsersHandler(svc services.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      500  {object}  types.APIResponse
// @Router       /users [get]
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GetByEmail godoc
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "Email address"
// @Success      200    {object}  models.User
// @Failure      404
// @Failure      500    {object}  types.APIResponse
// @Router       /users/{email} [get]
func (h *UsersHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	// chi matches on the raw path, so %40 and friends arrive undecoded.
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	u, err := h.svc.GetUserByEmail(r.Context(), email)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Create godoc
// @Summary      Create a user
// @Description  Email is required and must not already be registered.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      types.CreateUserRequest  true  "User"
// @Success      200   {object}  models.User
// @Failure      400   {object}  types.APIResponse
// @Failure      409   {object}  types.APIResponse
// @Failure      500   {object}  types.APIResponse
// @Router       /users [post]
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := h.svc.CreateUser(r.Context(), req.Input())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Update godoc
// @Summary      Update a user by id
// @Description  Fields that are absent or null are left unchanged.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "User ID (uuid)"
// @Param        body  body      types.UpdateUserRequest  true  "Fields to change"
// @Success      200   {object}  models.User
// @Failure      400   {object}  types.APIResponse
// @Failure      404
// @Failure      500   {object}  types.APIResponse
// @Router       /users/{id} [put]
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	// The router constrains {id} to a UUID; this covers mounts without that pattern.
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var req types.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := h.svc.UpdateUser(r.Context(), id, req.Input())
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// UpdateByEmail godoc
// @Summary      Update a user by email
// @Description  The email in the body selects the user and is never changed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      types.UpdateUserRequest  true  "Email and fields to change"
// @Success      200   {object}  models.User
// @Failure      400   {object}  types.APIResponse
// @Failure      404   {object}  types.APIResponse
// @Failure      500   {object}  types.APIResponse
// @Router       /users/updateUserByEmail [put]
func (h *UsersHandler) UpdateByEmail(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := h.svc.UpdateUserByEmail(r.Context(), req.Input())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// statusFor maps an error code to its HTTP status. Validation failures share 409 with conflicts.
func statusFor(err error) int {
	switch appErr.CodeOf(err) {
	case appErr.CodeInvalid, appErr.CodeConflict:
		return http.StatusConflict
	case appErr.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, types.APIResponse{Success: false, Error: types.FromAppError(err)})
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.APIResponse{Success: false, Error: &types.APIError{Code: string(appErr.CodeInvalid), Message: msg}})
}
