package stock

import (
	"errors"

	"kartela-backend/internal/models"
	"kartela-backend/internal/state"
	"kartela-backend/internal/syncqueue"
	"kartela-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type StockItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity"`
	Location string `json:"location" validate:"required"`
	Notes    string `json:"notes"`
}

type AdjustStockRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
	Type      string `json:"type" validate:"required,oneof=in out adjustment"`
	Reason    string `json:"reason"`
}

// GET /api/stock/items
func ListStockItemsHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Snapshot().StockItems)
	}
}

// POST /api/stock/items
func CreateStockItemHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body StockItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Kartela adı ve konum gerekli")
		}

		item, err := st.AddStockItem(models.StockItem{
			Name:     body.Name,
			Quantity: body.Quantity,
			Location: body.Location,
			Notes:    body.Notes,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok kaydı oluşturulamadı")
		}

		q.Enqueue(models.SyncCreate, models.SyncEntityStockItem, item)
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/stock/items/:id
func UpdateStockItemHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		existing, ok := st.GetStockItem(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Stok kaydı bulunamadı")
		}

		var body StockItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Kartela adı ve konum gerekli")
		}

		existing.Name = body.Name
		existing.Quantity = body.Quantity
		existing.Location = body.Location
		existing.Notes = body.Notes

		item, err := st.UpdateStockItem(existing)
		if err != nil {
			if errors.Is(err, state.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Stok kaydı bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Stok kaydı güncellenemedi")
		}

		q.Enqueue(models.SyncUpdate, models.SyncEntityStockItem, item)
		return c.JSON(item)
	}
}

// DELETE /api/stock/items/:id
func DeleteStockItemHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := st.DeleteStockItem(id); err != nil {
			if errors.Is(err, state.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Stok kaydı bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Stok kaydı silinemedi")
		}

		q.Enqueue(models.SyncDelete, models.SyncEntityStockItem, fiber.Map{"id": id})
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/stock/adjust
// Ürün stoğu yalnızca bu uç ve işlem kayıtları üzerinden hareket kaydıyla
// değişir. in/out miktarın mutlak değerini uygular, adjustment stoğu verilen
// değerle değiştirir; sonuç hiçbir zaman sıfırın altına inmez.
func AdjustStockHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AdjustStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if _, ok := st.GetProduct(body.ProductID); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		if err := st.AdjustStock(body.ProductID, body.Quantity, models.MovementType(body.Type), body.Reason); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok güncellenemedi")
		}

		product, _ := st.GetProduct(body.ProductID)
		return c.JSON(product)
	}
}

// GET /api/stock/movements
func ListMovementsHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Snapshot().StockMovements)
	}
}
