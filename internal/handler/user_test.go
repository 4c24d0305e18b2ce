package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/model"
)

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterIsIdempotentByEmail(t *testing.T) {
	e := newTestEcho()
	users := newMemUserStore()
	h := NewUserHandler(users)

	c, rec := postJSON(e, "/users", `{"email":"amina@example.com","name":"Amina"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	c, rec = postJSON(e, "/users", `{"email":"amina@example.com","name":"Amina"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat registration should be a 200 no-op, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["insertedId"] != nil {
		t.Fatalf("repeat registration must not insert, got %v", body["insertedId"])
	}

	u, err := users.GetByEmail(context.Background(), "amina@example.com")
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if u.Role != model.RoleTourist {
		t.Fatalf("new users default to tourist, got %s", u.Role)
	}
}

func TestUpdateRoleRejectsValuesOutsideEnum(t *testing.T) {
	e := newTestEcho()
	users := newMemUserStore()
	h := NewUserHandler(users)

	u := model.User{Email: "amina@example.com"}
	if _, err := users.RegisterIfAbsent(context.Background(), &u); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	patch := func(id, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/users/role/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := h.UpdateRole(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		return rec
	}

	if rec := patch("1", `{"role":"superuser"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("superuser must be rejected with 400, got %d", rec.Code)
	}
	for _, role := range []string{"tourist", "guide", "admin"} {
		if rec := patch("1", `{"role":"`+role+`"}`); rec.Code != http.StatusOK {
			t.Fatalf("role %q should succeed, got %d", role, rec.Code)
		}
	}
	if rec := patch("42", `{"role":"guide"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown user should give 404, got %d", rec.Code)
	}

	u2, _ := users.GetByEmail(context.Background(), "amina@example.com")
	if u2.Role != model.RoleAdmin {
		t.Fatalf("expected final role admin, got %s", u2.Role)
	}
}

func TestGetRoleReturnsStoredRole(t *testing.T) {
	e := newTestEcho()
	users := newMemUserStore()
	h := NewUserHandler(users)

	u := model.User{Email: "guide@example.com", Role: model.RoleGuide}
	if _, err := users.RegisterIfAbsent(context.Background(), &u); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/users/role/:email")
	c.SetParamNames("email")
	c.SetParamValues("guide@example.com")
	c.Set("email", "guide@example.com")

	if err := h.GetRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["role"] != "guide" {
		t.Fatalf("expected role guide, got %q", body["role"])
	}
}
