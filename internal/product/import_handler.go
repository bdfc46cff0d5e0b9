package product

import (
	"fmt"
	"strings"
	"time"

	"kartela-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GET /api/products/export/csv
func ExportCSVHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content := ExportCSV(st.Snapshot().Products)

		filename := fmt.Sprintf("kartelalar-%s.csv", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(content)
	}
}

// POST /api/products/import/csv (multipart, alan adı: file)
func ImportCSVHandler(st *state.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "CSV dosyası gerekli")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya açılamadı")
		}
		defer file.Close()

		result := ParseCSV(file)
		if len(result.Data) > 0 {
			if err := st.ImportProducts(result.Data); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Kartelalar kaydedilemedi")
			}
		}
		return c.JSON(result)
	}
}

// GET /api/products/template/csv
func TemplateCSVHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="kartela-sablonu.csv"`)
		return c.Send(TemplateCSV())
	}
}

type BulkAddRequest struct {
	Names string `json:"names"` // satır başına bir kartela adı
}

// POST /api/products/bulk
// Adlar Türkçe alfabetik sıraya dizilir; her kartelaya mevcut en büyük
// ORM-**** kodundan devam eden otomatik bir kod atanır.
func BulkAddHandler(st *state.Container) fiber.Handler {
	collator := collate.New(language.Turkish)

	return func(c *fiber.Ctx) error {
		var body BulkAddRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		names := splitLines(body.Names)
		if len(names) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "En az bir kartela adı girmelisiniz")
		}
		collator.SortStrings(names)

		added, err := st.BulkAddProducts(names)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kartelalar kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"added": added})
	}
}

func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
