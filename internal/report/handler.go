package report

import (
	"fmt"
	"time"

	"kartela-backend/internal/state"
	"kartela-backend/internal/views"

	"github.com/gofiber/fiber/v2"
)

// parseRange: from/to sorgu parametrelerini çözer (YYYY-MM-DD). Boş
// parametre o ucu açık bırakır; to günün sonuna taşınır ki aralık o günü
// de kapsasın.
func parseRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if raw := c.Query("from"); raw != "" {
		t, perr := time.ParseInLocation("2006-01-02", raw, time.Local)
		if perr != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Geçersiz başlangıç tarihi")
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, perr := time.ParseInLocation("2006-01-02", raw, time.Local)
		if perr != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Geçersiz bitiş tarihi")
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	return from, to, nil
}

// GET /api/reports?from=YYYY-MM-DD&to=YYYY-MM-DD
func ReportHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseRange(c)
		if err != nil {
			return err
		}
		return c.JSON(views.Report(st.Snapshot(), from, to))
	}
}

// GET /api/reports/export?from=YYYY-MM-DD&to=YYYY-MM-DD
func ExportHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseRange(c)
		if err != nil {
			return err
		}

		data := views.Report(st.Snapshot(), from, to)
		content, err := BuildWorkbook(data)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor dosyası oluşturulamadı")
		}

		filename := fmt.Sprintf("kartela-raporu-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(content)
	}
}
