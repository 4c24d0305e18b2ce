package handler

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/gateway"
	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/repository"
)

// PaymentHandler bundles the payment ledger and the external gateway
// collaborator.
type PaymentHandler struct {
	Payments repository.PaymentStore
	Intents  gateway.PaymentIntents
}

func NewPaymentHandler(payments repository.PaymentStore, intents gateway.PaymentIntents) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Intents: intents}
}

// ----- DTOs -----

type intentReq struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type paymentReq struct {
	MenuID         string  `json:"menuId" validate:"required"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	TransactionRef string  `json:"transactionId"`
}

// CreateIntent handles POST /create-payment-intent.  The price arrives
// in major currency units and is converted to minor units (price × 100)
// for the gateway; the resulting client secret goes straight back to the
// client.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req intentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	amount := int64(math.Round(req.Price * 100))

	in, err := h.Intents.CreateIntent(c.Request().Context(), amount)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment intent failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"clientSecret": in.ClientSecret})
}

// Create handles POST /payment, recording a completed external charge
// with initial status pending.  The reconciliation step later mirrors
// the booking outcome onto this record by menu ID.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p := model.Payment{
		MenuID:         req.MenuID,
		TouristEmail:   callerEmail(c),
		AmountCents:    int64(math.Round(req.Price * 100)),
		TransactionRef: req.TransactionRef,
	}
	if err := h.Payments.Create(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create payment failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"insertedId": p.ID, "status": p.Status})
}

// List handles GET /payment (admin only).
func (h *PaymentHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	payments, err := h.Payments.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, payments)
}
