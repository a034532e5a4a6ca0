package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/tendering"
)

// ApplicationHandler the caller's own tender applications.
type ApplicationHandler struct {
	uc *tendering.ApplicationUseCase
}

func NewApplicationHandler(uc *tendering.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// List godoc
// @Summary      My tender applications
// @Description  Newest first, each with its tender.
// @Tags         tender-applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ApplicationListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/tender-applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Apply to a tender
// @Tags         tender-applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateApplicationRequest  true  "tender_id, notes"
// @Success      201   {object}  dto.ApplicationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tender-applications [post]
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Withdraw godoc
// @Summary      Withdraw a pending application
// @Description  The id may be given as a path segment or as ?id=.
// @Tags         tender-applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   query  string  false  "application ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tender-applications [delete]
func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		id = c.Query("id")
	}
	if err := h.uc.Withdraw(c.UserContext(), GetActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "application withdrawn"})
}

// Receipt godoc
// @Summary      Download the application receipt
// @Tags         tender-applications
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "application ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tender-applications/{id}/receipt [get]
func (h *ApplicationHandler) Receipt(c *fiber.Ctx) error {
	pdf, name, err := h.uc.Receipt(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(pdf)
}
