package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/usecase"
)

// UserHandler admin user directory.
type UserHandler struct {
	uc *usecase.UserDirectoryUseCase
}

func NewUserHandler(uc *usecase.UserDirectoryUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

func userListQuery(c *fiber.Ctx) dto.UserListQuery {
	q := dto.UserListQuery{
		PageRequest: dto.PageRequest{Page: c.QueryInt("page", 1), Limit: c.QueryInt("limit", dto.DefaultLimit)},
		Search:      c.Query("search"),
		Role:        c.Query("role"),
		SortBy:      c.Query("sortBy"),
		SortOrder:   c.Query("sortOrder"),
	}
	// Anything other than true/false means "no filter".
	if b, err := strconv.ParseBool(c.Query("isActive")); err == nil {
		q.IsActive = &b
	}
	return q
}

// List godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search     query  string  false  "name or email contains, case-insensitive"
// @Param        role       query  string  false  "exact role"
// @Param        isActive   query  bool    false  "active flag"
// @Param        sortBy     query  string  false  "createdAt | name | email"
// @Param        sortOrder  query  string  false  "asc | desc (default desc)"
// @Param        page       query  int     false  "page (default 1)"
// @Param        limit      query  int     false  "page size (default 10, max 100)"
// @Success      200  {object}  dto.UserListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c), userListQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateUserRequest  true  "user"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "user ID"
// @Param        body  body  dto.UpdateUserRequest  true  "fields to change"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a user
// @Description  Admin accounts cannot be deleted. The user's applications go with it.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "user ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "user deleted"})
}
