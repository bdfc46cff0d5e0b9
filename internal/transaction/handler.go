package transaction

import (
	"errors"

	"kartela-backend/internal/models"
	"kartela-backend/internal/state"
	"kartela-backend/internal/syncqueue"
	"kartela-backend/internal/validate"
	"kartela-backend/internal/views"

	"github.com/gofiber/fiber/v2"
)

type CreateTransactionRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	ProductID  string `json:"productId" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=given returned sold"`
	Quantity   int    `json:"quantity" validate:"gt=0"`
	Notes      string `json:"notes"`
}

type UpdateTransactionRequest struct {
	Type  string `json:"type" validate:"required,oneof=given returned sold"`
	Notes string `json:"notes"`
}

// GET /api/transactions
// Birleştirilmiş görünüm döner; müşterisi veya ürünü silinmiş işlemler
// listede görünmez.
func ListTransactionsHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(views.TransactionsWithDetails(st.Snapshot()))
	}
}

// POST /api/transactions
// Her işlem kaydı ürün stoğuna tam bir düzeltme uygular: given/sold düşürür,
// returned artırır. Referanslar store tarafında zorlanmaz; ürün yoksa stok
// adımı sessizce atlanır.
func CreateTransactionHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		tx, err := st.AddTransaction(models.Transaction{
			CustomerID: body.CustomerID,
			ProductID:  body.ProductID,
			Type:       models.TransactionType(body.Type),
			Quantity:   body.Quantity,
			Notes:      body.Notes,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem kaydedilemedi")
		}

		q.Enqueue(models.SyncCreate, models.SyncEntityTransaction, tx)
		return c.Status(fiber.StatusCreated).JSON(tx)
	}
}

// PUT /api/transactions/:id
// Yalnızca tip ve not düzenlenebilir; miktar ve müşteri/ürün bağları
// oluşturulduktan sonra değişmez.
func UpdateTransactionHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		tx, err := st.UpdateTransaction(c.Params("id"), models.TransactionType(body.Type), body.Notes)
		if err != nil {
			if errors.Is(err, state.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "İşlem bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem güncellenemedi")
		}

		q.Enqueue(models.SyncUpdate, models.SyncEntityTransaction, tx)
		return c.JSON(tx)
	}
}

// DELETE /api/transactions/:id
// Silme stok deltasını geri almaz; hareket kayıtları denetim izi olarak kalır.
func DeleteTransactionHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := st.DeleteTransaction(id); err != nil {
			if errors.Is(err, state.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "İşlem bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem silinemedi")
		}

		q.Enqueue(models.SyncDelete, models.SyncEntityTransaction, fiber.Map{"id": id})
		return c.SendStatus(fiber.StatusNoContent)
	}
}
