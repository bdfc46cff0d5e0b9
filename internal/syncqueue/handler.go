package syncqueue

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// POST /api/sync
func SyncHandler(q *Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := q.Drain()
		if err != nil {
			if errors.Is(err, ErrSyncInProgress) {
				return fiber.NewError(fiber.StatusConflict, "Senkronizasyon zaten devam ediyor")
			}
			return fiber.NewError(fiber.StatusBadGateway, "Senkronizasyon başarısız - Tekrar denenecek")
		}
		return c.JSON(fiber.Map{
			"synced":  count,
			"pending": q.Pending(),
		})
	}
}

// GET /api/sync/status
func QueueStatusHandler(q *Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"pending": q.Pending(),
			"items":   q.Items(),
		})
	}
}

// DELETE /api/sync/queue
func ClearQueueHandler(q *Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := q.Clear(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kuyruk temizlenemedi")
		}
		return c.JSON(fiber.Map{"message": "Senkronizasyon kuyruğu temizlendi"})
	}
}
