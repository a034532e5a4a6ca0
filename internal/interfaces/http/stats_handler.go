package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/YudheerRM/bidding-insights/internal/application/analytics"
)

// StatsHandler admin dashboard counters.
type StatsHandler struct {
	uc *analytics.StatsUseCase
}

func NewStatsHandler(uc *analytics.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Summary godoc
// @Summary      Platform statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/stats [get]
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
