package admin

import (
	"encoding/json"
	"fmt"
	"time"

	"kartela-backend/internal/models"
	"kartela-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GET /api/backup
// Tüm koleksiyonları tek JSON zarfı olarak indirir ve ayarlardaki son yedek
// tarihini günceller.
func DownloadBackupHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backup, err := st.CreateBackup()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yedek oluşturulamadı")
		}

		content, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yedek oluşturulamadı")
		}

		now := time.Now()
		if err := st.MarkBackupDone(now); err != nil {
			logrus.WithError(err).Warn("Son yedek tarihi kaydedilemedi")
		}

		filename := fmt.Sprintf("kartela-backup-%s.json", now.Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(content)
	}
}

// POST /api/backup/restore
// Zarf çözülemezse mevcut veri olduğu gibi kalır. Zarfta bulunan alanlar
// mevcut koleksiyonların yerini alır, bulunmayanlar dokunulmadan korunur.
func RestoreBackupHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var backup models.BackupData
		if err := json.Unmarshal(c.Body(), &backup); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Yedek dosyası çözümlenemedi")
		}

		if err := st.RestoreBackup(backup); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yedek geri yüklenemedi")
		}

		logrus.WithField("version", backup.Version).Info("Yedek geri yüklendi")
		return c.JSON(fiber.Map{"message": "Yedek başarıyla geri yüklendi"})
	}
}

// DELETE /api/data
// Altı koleksiyonu da boşaltır ve ayarları varsayılana döndürür; bekleyen
// senkron kuyruğu silinmez.
func ClearDataHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.ClearAll(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Veriler silinemedi")
		}

		logrus.Warn("Tüm veriler temizlendi")
		return c.JSON(fiber.Map{"message": "Tüm veriler silindi"})
	}
}
