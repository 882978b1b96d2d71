package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spendwise/expense-system/internal/core/domain"
	"github.com/spendwise/expense-system/internal/core/ports"
)

type stubExpenseService struct {
	createFn func(ctx context.Context, actor ports.Actor, in ports.CreateExpenseInput) (*domain.Expense, error)
	getFn    func(ctx context.Context, actor ports.Actor, id int64) (*domain.Expense, error)
	updateFn func(ctx context.Context, actor ports.Actor, id int64, in ports.UpdateExpenseInput) (*domain.Expense, error)
	deleteFn func(ctx context.Context, actor ports.Actor, id int64) error
	listFn   func(ctx context.Context, actor ports.Actor, in ports.ListExpensesInput) (*ports.ListExpensesResult, error)
}

func (s *stubExpenseService) Create(ctx context.Context, actor ports.Actor, in ports.CreateExpenseInput) (*domain.Expense, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubExpenseService) Get(ctx context.Context, actor ports.Actor, id int64) (*domain.Expense, error) {
	return s.getFn(ctx, actor, id)
}

func (s *stubExpenseService) Update(ctx context.Context, actor ports.Actor, id int64, in ports.UpdateExpenseInput) (*domain.Expense, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubExpenseService) Delete(ctx context.Context, actor ports.Actor, id int64) error {
	return s.deleteFn(ctx, actor, id)
}

func (s *stubExpenseService) List(ctx context.Context, actor ports.Actor, in ports.ListExpensesInput) (*ports.ListExpensesResult, error) {
	return s.listFn(ctx, actor, in)
}

// authedContext builds a context carrying the claims the Auth middleware
// would have injected.
func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID int64, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("username", "tester")
	c.Set("role", role)
	return c
}

func TestExpenseHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubExpenseService{
		createFn: func(ctx context.Context, actor ports.Actor, in ports.CreateExpenseInput) (*domain.Expense, error) {
			if actor.UserID != 7 {
				t.Fatalf("actor not derived from claims: %+v", actor)
			}
			if in.Date.Format("2006-01-02") != "2024-05-02" {
				t.Fatalf("date not parsed: %v", in.Date)
			}
			return &domain.Expense{
				ID: 11, Amount: in.Amount, Category: in.Category, Description: in.Description,
				Date: in.Date, CreatedAt: time.Now().UTC(), UserID: actor.UserID,
			}, nil
		},
	}
	handler := NewExpenseHandler(stub)

	body := strings.NewReader(`{"amount":42.5,"category":"Groceries","description":"weekly run","date":"2024-05-02"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/expenses", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 7, domain.RoleCustomer)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["date"] != "2024-05-02" || resp["category"] != "Groceries" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestExpenseHandler_Create_RejectsNonPositiveAmount(t *testing.T) {
	e := newTestEcho()
	stub := &stubExpenseService{
		createFn: func(ctx context.Context, actor ports.Actor, in ports.CreateExpenseInput) (*domain.Expense, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewExpenseHandler(stub)

	body := strings.NewReader(`{"amount":0,"category":"Groceries"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/expenses", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 7, domain.RoleCustomer)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestExpenseHandler_Create_UnknownCategoryPassthrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubExpenseService{
		createFn: func(ctx context.Context, actor ports.Actor, in ports.CreateExpenseInput) (*domain.Expense, error) {
			return nil, domain.ErrUnknownCategory
		},
	}
	handler := NewExpenseHandler(stub)

	body := strings.NewReader(`{"amount":10,"category":"Yachts"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/expenses", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 7, domain.RoleCustomer)

	if err := handler.Create(c); !errors.Is(err, domain.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestExpenseHandler_Create_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	handler := NewExpenseHandler(&stubExpenseService{})

	body := strings.NewReader(`{"amount":10,"category":"Bills"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/expenses", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no claims injected

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestExpenseHandler_List(t *testing.T) {
	e := newTestEcho()
	day := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
	stub := &stubExpenseService{
		listFn: func(ctx context.Context, actor ports.Actor, in ports.ListExpensesInput) (*ports.ListExpensesResult, error) {
			if in.Category != "Bills" || in.Page != 2 || in.Limit != 5 {
				t.Fatalf("query params not forwarded: %+v", in)
			}
			return &ports.ListExpensesResult{
				Items: []*domain.Expense{
					{ID: 1, Amount: 9.5, Category: "Bills", Date: day, UserID: actor.UserID},
				},
				Total: 6, Page: 2, Limit: 5, TotalPages: 2,
			}, nil
		},
	}
	handler := NewExpenseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/expenses?category=Bills&page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 3, domain.RoleCustomer)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data       []map[string]any `json:"data"`
		Pagination map[string]any   `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0]["date"] != "2024-05-02" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
	if resp.Pagination["total"] != float64(6) || resp.Pagination["total_pages"] != float64(2) {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
}

func TestExpenseHandler_BadID(t *testing.T) {
	e := newTestEcho()
	handler := NewExpenseHandler(&stubExpenseService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/expenses/abc", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 3, domain.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestExpenseHandler_Delete(t *testing.T) {
	e := newTestEcho()
	deleted := false
	stub := &stubExpenseService{
		deleteFn: func(ctx context.Context, actor ports.Actor, id int64) error {
			if id != 12 {
				t.Fatalf("wrong id: %d", id)
			}
			deleted = true
			return nil
		},
	}
	handler := NewExpenseHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/expenses/12", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, 3, domain.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues("12")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !deleted || rec.Code != http.StatusNoContent {
		t.Fatalf("delete not executed: code=%d", rec.Code)
	}
}
