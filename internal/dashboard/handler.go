package dashboard

import (
	"kartela-backend/internal/state"
	"kartela-backend/internal/views"

	"github.com/gofiber/fiber/v2"
)

// GET /api/dashboard/stats
func StatsHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(views.Dashboard(st.Snapshot()))
	}
}
