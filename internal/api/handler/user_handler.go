package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spendwise/expense-system/internal/core/ports"
)

// UserHandler handles the admin-only user management endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin customer"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin customer"`
}

// List handles GET /v1/admin/users.
//
// @Summary      List users with lifetime totals
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.UserWithTotal
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /v1/admin/users.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/admin/users/:id. An empty password keeps the
// current one.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Replacement fields"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/admin/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/admin/users/:id. Deleting your own account is
// refused so an installation cannot lock itself out.
//
// @Summary      Delete a user and their expenses
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "User id"
// @Success      204  "no content"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor.UserID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Overview handles GET /v1/admin/overview.
//
// @Summary      Headline figures for the admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminOverview
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/overview [get]
func (h *UserHandler) Overview(c echo.Context) error {
	overview, err := h.service.Overview(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
