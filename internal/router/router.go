package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/handler"
	"github.com/iliyamo/tour-booking/internal/middleware"
	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/repository"
)

// RegisterRoutes registers routes that require no authentication: the
// health check, token issuance and idempotent user registration.
func RegisterRoutes(e *echo.Echo, t *handler.TokenHandler, u *handler.UserHandler) {
	e.GET("/healthz", handler.Health)
	// POST /jwt signs a supplied identity claim with a one-hour expiry.
	e.POST("/jwt", t.Issue)
	// Registration happens on every frontend sign-in and is idempotent.
	e.POST("/users", u.Register)
}

// RegisterUsers registers the authenticated user endpoints.  Role reads
// are self-service (path email must match the token email); all role and
// account mutations are admin-gated.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, users repository.UserStore, jwtSecret string) {
	auth := e.Group("", middleware.JWTAuth(jwtSecret))

	auth.GET("/users/role/:email", u.GetRole, middleware.RequireSelf("email"))

	admin := auth.Group("", middleware.RequireRole(users, model.RoleAdmin))
	admin.GET("/users", u.List)
	admin.PATCH("/users/role/:id", u.UpdateRole)
	admin.DELETE("/users/:id", u.Delete)
}

// RegisterBookings registers the booking lifecycle endpoints.  Tourists
// create, list and cancel their own bookings; the state machine edges
// (pending→in-review and the accept/reject reconciliation) require the
// guide or admin role, looked up in the store on every call.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, users repository.UserStore, jwtSecret string) {
	auth := e.Group("", middleware.JWTAuth(jwtSecret))

	auth.POST("/booked", b.Create)
	auth.GET("/booked", b.ListMine)
	auth.DELETE("/booked/:id", b.Delete)

	staff := auth.Group("", middleware.RequireRole(users, model.RoleGuide, model.RoleAdmin))
	staff.GET("/assigned-tours/:name", b.ListAssigned)
	staff.PATCH("/booked/:id", b.MarkInReview)
	staff.PATCH("/assigned-tours/accept-by-menu/:menuId", b.Accept)
	staff.PATCH("/assigned-tours/reject-by-menu/:menuId", b.Reject)
}

// RegisterPayments registers payment endpoints.  Recording a payment and
// creating a gateway intent require a token; the full payment list is
// admin-only.
func RegisterPayments(e *echo.Echo, p *handler.PaymentHandler, users repository.UserStore, jwtSecret string) {
	auth := e.Group("", middleware.JWTAuth(jwtSecret))

	auth.POST("/create-payment-intent", p.CreateIntent)
	auth.POST("/payment", p.Create)

	admin := auth.Group("", middleware.RequireRole(users, model.RoleAdmin))
	admin.GET("/payment", p.List)
}
