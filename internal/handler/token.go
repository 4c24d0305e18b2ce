package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/config"
	"github.com/iliyamo/tour-booking/internal/utils"
)

// TokenHandler issues access tokens for identity claims.  Sign-in itself
// happens against the frontend identity provider; this endpoint signs
// the resulting claim so the API can verify it on subsequent calls.
type TokenHandler struct {
	Cfg config.Config
}

func NewTokenHandler(cfg config.Config) *TokenHandler {
	return &TokenHandler{Cfg: cfg}
}

type tokenReq struct {
	Email string `json:"email" validate:"required,email"`
}

// Issue handles POST /jwt.  It signs the supplied email claim with the
// server secret and a one-hour expiry and returns the token.
func (h *TokenHandler) Issue(c echo.Context) error {
	var req tokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, email, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": access.Token})
}
