package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/middleware"
	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/repository"
)

// UserHandler bundles dependencies for user and role endpoints.
type UserHandler struct {
	Users repository.UserStore
}

func NewUserHandler(users repository.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

// ----- DTOs -----

type registerReq struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type roleReq struct {
	Role string `json:"role" validate:"required"`
}

// Register handles POST /users.  Registration is idempotent by email: a
// repeated registration reports the existing user instead of failing, so
// the frontend can call it on every sign-in.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := model.User{Email: req.Email, Name: req.Name, Photo: req.Photo}
	created, err := h.Users.RegisterIfAbsent(ctx, &u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	if !created {
		return c.JSON(http.StatusOK, echo.Map{"message": "user already exists", "insertedId": nil})
	}
	return c.JSON(http.StatusCreated, echo.Map{"insertedId": u.ID})
}

// List handles GET /users (admin only).
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, users)
}

// GetRole handles GET /users/role/:email.  The self-guard middleware has
// already checked that the path email matches the token email.
func (h *UserHandler) GetRole(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"role": u.Role})
}

// UpdateRole handles PATCH /users/role/:id (admin only).  The role value
// is validated against the closed set; anything else is rejected with a
// 400 before touching the store.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var req roleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	role, err := model.ParseRole(strings.TrimSpace(req.Role))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role specified"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"role": role})
}

// Delete handles DELETE /users/:id (admin only).
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// callerEmail is a thin wrapper so handlers do not import the middleware
// package at every call site.
func callerEmail(c echo.Context) string { return middleware.CallerEmail(c) }
