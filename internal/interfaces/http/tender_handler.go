package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/usecase"
)

// TenderHandler tender catalogue.
type TenderHandler struct {
	uc *usecase.TenderUseCase
}

func NewTenderHandler(uc *usecase.TenderUseCase) *TenderHandler {
	return &TenderHandler{uc: uc}
}

// List godoc
// @Summary      List tenders
// @Tags         tenders
// @Produce      json
// @Param        status  query  string  false  "status, any letter case"
// @Param        search  query  string  false  "matches title or reference number"
// @Param        page    query  int     false  "page (default 1)"
// @Param        limit   query  int     false  "page size (default 10, max 100)"
// @Success      200  {object}  dto.TenderListResponse
// @Router       /api/tenders [get]
func (h *TenderHandler) List(c *fiber.Ctx) error {
	q := dto.TenderListQuery{
		PageRequest: dto.PageRequest{Page: c.QueryInt("page", 1), Limit: c.QueryInt("limit", dto.DefaultLimit)},
		Status:      c.Query("status"),
		Search:      c.Query("search"),
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a tender
// @Tags         tenders
// @Produce      json
// @Param        id   path  string  true  "tender ID"
// @Success      200  {object}  dto.TenderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tenders/{id} [get]
func (h *TenderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Publish a tender
// @Tags         tenders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTenderRequest  true  "tender"
// @Success      201   {object}  dto.TenderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tenders [post]
func (h *TenderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTenderRequest
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
// @Summary      Update a tender
// @Tags         tenders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "tender ID"
// @Param        body  body  dto.UpdateTenderRequest  true  "fields to change"
// @Success      200   {object}  dto.TenderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tenders/{id} [patch]
func (h *TenderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTenderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
