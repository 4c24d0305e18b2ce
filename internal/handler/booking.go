package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/repository"
	"github.com/iliyamo/tour-booking/internal/service"
)

// BookingHandler groups the booking ledger and the reconciliation
// coordinator behind the booking endpoints.  JWT authentication and role
// checks happen in middleware; handlers only consult the verified email
// for ownership decisions.
type BookingHandler struct {
	Bookings   repository.BookingStore
	Reconciler *service.Reconciler
}

func NewBookingHandler(bookings repository.BookingStore, rec *service.Reconciler) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Reconciler: rec}
}

// ----- DTOs -----

type bookingReq struct {
	TourGuideName string    `json:"tourGuideName" validate:"required"`
	MenuID        string    `json:"menuId" validate:"required"`
	PackageName   string    `json:"packageName"`
	PriceCents    int64     `json:"priceCents" validate:"gte=0"`
	TourDate      time.Time `json:"tourDate"`
}

// Create handles POST /booked.  The booking is created for the calling
// tourist (email from the token) with status pending.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b := model.Booking{
		TouristEmail:  callerEmail(c),
		TourGuideName: req.TourGuideName,
		MenuID:        req.MenuID,
		PackageName:   req.PackageName,
		PriceCents:    req.PriceCents,
		TourDate:      req.TourDate,
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"insertedId": b.ID, "status": b.Status})
}

// ListMine handles GET /booked, returning the calling tourist's bookings.
func (h *BookingHandler) ListMine(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByTourist(ctx, callerEmail(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListAssigned handles GET /assigned-tours/:name, returning the bookings
// assigned to the named guide.
func (h *BookingHandler) ListAssigned(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guide name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByGuide(ctx, name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// MarkInReview handles PATCH /booked/:id, the pending→in-review edge of
// the state machine.  A booking already advanced by a concurrent call
// yields 409 with its current status; a missing one yields 404.
func (h *BookingHandler) MarkInReview(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.MarkInReview(ctx, id); err != nil {
		return bookingTransitionError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": model.BookingInReview})
}

// Delete handles DELETE /booked/:id.  Only the tourist who made the
// booking may cancel it, and only while it is still pending.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if b.TouristEmail != callerEmail(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if err := h.Bookings.Delete(ctx, id); err != nil {
		return bookingTransitionError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Accept handles PATCH /assigned-tours/accept-by-menu/:menuId.
func (h *BookingHandler) Accept(c echo.Context) error {
	return h.decide(c, service.DecisionAccept)
}

// Reject handles PATCH /assigned-tours/reject-by-menu/:menuId.
func (h *BookingHandler) Reject(c echo.Context) error {
	return h.decide(c, service.DecisionReject)
}

// decide runs the reconciliation for a menu ID and returns both ledger
// outcomes.  Partial outcomes (booking already decided, payment never
// created) surface as zero counts in the response body, not as errors;
// the client interprets them.
func (h *BookingHandler) decide(c echo.Context, d service.Decision) error {
	menuID := c.Param("menuId")
	if menuID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "menu id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Reconciler.Decide(ctx, menuID, d, callerEmail(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reconciliation failed"})
	}
	return c.JSON(http.StatusOK, out)
}

// bookingTransitionError maps conditional-update failures onto HTTP:
// 404 for a missing booking, 409 with the current status for a booking
// in the wrong state, 500 otherwise.
func bookingTransitionError(c echo.Context, err error) error {
	var conflict *repository.StateConflictError
	switch {
	case errors.Is(err, repository.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, echo.Map{
			"error":  "booking is not in the required status",
			"status": conflict.Current,
		})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
}
