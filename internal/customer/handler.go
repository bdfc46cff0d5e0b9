package customer

import (
	"errors"

	"kartela-backend/internal/models"
	"kartela-backend/internal/state"
	"kartela-backend/internal/syncqueue"
	"kartela-backend/internal/validate"
	"kartela-backend/internal/views"

	"github.com/gofiber/fiber/v2"
)

type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Notes   string `json:"notes"`
}

// GET /api/customers
func ListCustomersHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Snapshot().Customers)
	}
}

// GET /api/customers/:id
func GetCustomerHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer, ok := st.GetCustomer(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}
		return c.JSON(customer)
	}
}

// POST /api/customers
func CreateCustomerHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri adı gerekli")
		}

		customer, err := st.AddCustomer(models.Customer{
			Name:    body.Name,
			Company: body.Company,
			Phone:   body.Phone,
			Email:   body.Email,
			Address: body.Address,
			City:    body.City,
			Notes:   body.Notes,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri kaydedilemedi")
		}

		q.Enqueue(models.SyncCreate, models.SyncEntityCustomer, customer)
		return c.Status(fiber.StatusCreated).JSON(customer)
	}
}

// PUT /api/customers/:id
func UpdateCustomerHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		existing, ok := st.GetCustomer(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		var body CustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri adı gerekli")
		}

		existing.Name = body.Name
		existing.Company = body.Company
		existing.Phone = body.Phone
		existing.Email = body.Email
		existing.Address = body.Address
		existing.City = body.City
		existing.Notes = body.Notes

		customer, err := st.UpdateCustomer(existing)
		if err != nil {
			if errors.Is(err, state.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri güncellenemedi")
		}

		q.Enqueue(models.SyncUpdate, models.SyncEntityCustomer, customer)
		return c.JSON(customer)
	}
}

// DELETE /api/customers/:id
// Müşteri silinir, işlemleri kalır; görünümler sahipsiz işlemleri eler.
func DeleteCustomerHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := st.DeleteCustomer(id); err != nil {
			if errors.Is(err, state.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri silinemedi")
		}

		q.Enqueue(models.SyncDelete, models.SyncEntityCustomer, fiber.Map{"id": id})
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/customers/:id/transactions
func CustomerTransactionsHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(views.CustomerTransactions(st.Snapshot(), c.Params("id")))
	}
}
