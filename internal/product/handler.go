package product

import (
	"errors"

	"kartela-backend/internal/models"
	"kartela-backend/internal/state"
	"kartela-backend/internal/syncqueue"
	"kartela-backend/internal/validate"
	"kartela-backend/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name          string           `json:"name" validate:"required"`
	Code          string           `json:"code" validate:"required"`
	Category      string           `json:"category"`
	Description   string           `json:"description"`
	Unit          string           `json:"unit"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity int              `json:"stockQuantity"`
	MinStockLevel int              `json:"minStockLevel"`
}

// GET /api/products
func ListProductsHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Snapshot().Products)
	}
}

// GET /api/products/:id
func GetProductHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		product, ok := st.GetProduct(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}
		return c.JSON(product)
	}
}

// POST /api/products
// Kod benzersizliği kaynak tasarımda zorlanmaz; aynı kodla ikinci kartela
// eklenebilir.
func CreateProductHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ad ve kod zorunlu")
		}

		product, err := st.AddProduct(models.Product{
			Name:          body.Name,
			Code:          body.Code,
			Category:      body.Category,
			Description:   body.Description,
			Unit:          body.Unit,
			Price:         body.Price,
			StockQuantity: body.StockQuantity,
			MinStockLevel: body.MinStockLevel,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün kaydedilemedi")
		}

		q.Enqueue(models.SyncCreate, models.SyncEntityProduct, product)
		return c.Status(fiber.StatusCreated).JSON(product)
	}
}

// PUT /api/products/:id
// Stok miktarı bu uçtan da değişebilir ama hareket kaydı üretmez; hareketli
// değişiklikler stok ucundan geçmelidir.
func UpdateProductHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		existing, ok := st.GetProduct(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ad ve kod zorunlu")
		}

		existing.Name = body.Name
		existing.Code = body.Code
		existing.Category = body.Category
		existing.Description = body.Description
		existing.Unit = body.Unit
		existing.Price = body.Price
		existing.StockQuantity = body.StockQuantity
		existing.MinStockLevel = body.MinStockLevel

		product, err := st.UpdateProduct(existing)
		if err != nil {
			if errors.Is(err, state.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		q.Enqueue(models.SyncUpdate, models.SyncEntityProduct, product)
		return c.JSON(product)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := st.DeleteProduct(id); err != nil {
			if errors.Is(err, state.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		q.Enqueue(models.SyncDelete, models.SyncEntityProduct, fiber.Map{"id": id})
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/products/:id/transactions
func ProductTransactionsHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(views.ProductTransactions(st.Snapshot(), c.Params("id")))
	}
}
