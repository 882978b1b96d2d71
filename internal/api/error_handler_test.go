package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spendwise/expense-system/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_TaxonomyMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{domain.ErrUnknownCategory, http.StatusUnprocessableEntity},
		{domain.ErrSelfDelete, http.StatusUnprocessableEntity},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrCategoryExists, http.StatusConflict},
		{domain.ErrNotOwner, http.StatusForbidden},
		{domain.ErrExpenseNotFound, http.StatusNotFound},
		{domain.ErrCategoryNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		code, msg := render(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if msg == "" {
			t.Fatalf("%v: empty error message", tc.err)
		}
	}
}

func TestHTTPErrorHandler_StoreFailureHidden(t *testing.T) {
	wrapped := fmt.Errorf("%w: insert expenses: connection refused to 10.0.0.5", domain.ErrStore)
	code, msg := render(t, wrapped)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("store internals leaked to the client: %q", msg)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid id"))
	if code != http.StatusBadRequest || msg != "invalid id" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	code, msg := render(t, errors.New("something odd"))
	if code != http.StatusInternalServerError || msg != "internal server error" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}
