package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spendwise/expense-system/internal/core/ports"
)

// CategoryHandler handles HTTP requests for the category registry.
// All routes are admin-only; RBAC is enforced by middleware.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=80"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type renameCategoryRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=80"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// List handles GET /v1/categories. Available to any authenticated user so
// the expense form can offer the catalog.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Category
// @Failure      401  {object}  errorResponse
// @Router       /v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Create handles POST /v1/categories.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), req.Name, req.Color)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Rename handles PUT /v1/categories/:id. Renaming cascades to every expense
// recorded under the old name.
//
// @Summary      Rename a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Category id"
// @Param        body  body      renameCategoryRequest  true  "New name"
// @Success      200   {object}  domain.Category
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/categories/{id} [put]
func (h *CategoryHandler) Rename(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req renameCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	renamed, err := h.service.Rename(c.Request().Context(), id, req.Name, req.Color)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, renamed)
}

// Delete handles DELETE /v1/categories/:id. Expenses under the deleted
// category are moved to Uncategorized first.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Category id"
// @Success      204  "no content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
