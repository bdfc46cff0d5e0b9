package admin

import (
	"kartela-backend/internal/models"
	"kartela-backend/internal/state"
	"kartela-backend/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SettingsRequest struct {
	CompanyName    string `json:"companyName" validate:"required"`
	Theme          string `json:"theme" validate:"required,oneof=light dark"`
	Language       string `json:"language" validate:"required,oneof=tr en"`
	AutoBackup     bool   `json:"autoBackup"`
	BackupInterval int    `json:"backupInterval" validate:"gt=0"`
}

// GET /api/settings
func GetSettingsHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.Settings())
	}
}

// PUT /api/settings
// lastBackup istemciden gelmez; yalnızca yedek indirme ucu günceller.
func UpdateSettingsHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SettingsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		current := st.Settings()
		next := models.AppSettings{
			CompanyName:    body.CompanyName,
			Theme:          body.Theme,
			Language:       body.Language,
			AutoBackup:     body.AutoBackup,
			BackupInterval: body.BackupInterval,
			LastBackup:     current.LastBackup,
		}
		if err := st.UpdateSettings(next); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar kaydedilemedi")
		}
		return c.JSON(next)
	}
}
