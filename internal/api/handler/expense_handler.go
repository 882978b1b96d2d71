package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/spendwise/expense-system/internal/api/metrics"
	"github.com/spendwise/expense-system/internal/core/ports"
)

// ExpenseHandler handles HTTP requests for the expense ledger.
type ExpenseHandler struct {
	service ports.ExpenseService
}

func NewExpenseHandler(service ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// Create handles POST /v1/expenses.
//
// @Summary      Record a new expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createExpenseRequest  true  "Expense details"
// @Success      201   {object}  expenseResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/expenses [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), actor, ports.CreateExpenseInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        parseDay(req.Date),
	})
	if err != nil {
		return err
	}

	metrics.ExpensesCreatedTotal.WithLabelValues(created.Category).Inc()
	return c.JSON(http.StatusCreated, toExpenseResponse(created))
}

// List handles GET /v1/expenses.
//
// @Summary      List expenses
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Filter by category name"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Rows per page (max 100)"
// @Success      200       {object}  listExpensesResponse
// @Failure      401       {object}  errorResponse
// @Router       /v1/expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), actor, ports.ListExpensesInput{
		Category: c.QueryParam("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	data := make([]expenseResponse, 0, len(result.Items))
	for _, e := range result.Items {
		data = append(data, toExpenseResponse(e))
	}

	return c.JSON(http.StatusOK, listExpensesResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/expenses/:id.
//
// @Summary      Get one expense
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Expense id"
// @Success      200  {object}  expenseResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	e, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExpenseResponse(e))
}

// Update handles PUT /v1/expenses/:id.
//
// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Expense id"
// @Param        body  body      updateExpenseRequest  true  "Replacement fields"
// @Success      200   {object}  expenseResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), actor, id, ports.UpdateExpenseInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        parseDay(req.Date),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toExpenseResponse(updated))
}

// Delete handles DELETE /v1/expenses/:id.
//
// @Summary      Delete an expense
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Expense id"
// @Success      204  "no content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id path segment.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
