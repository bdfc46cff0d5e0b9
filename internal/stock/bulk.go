package stock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"kartela-backend/internal/models"
	"kartela-backend/internal/state"
	"kartela-backend/internal/syncqueue"

	"github.com/gofiber/fiber/v2"
)

type BulkAddRequest struct {
	Data string `json:"data"` // satır başına: ad | miktar | konum | not?
}

type BulkAddResult struct {
	Added  int      `json:"added"`
	Errors []string `json:"errors"`
}

var lineSep = regexp.MustCompile(`[|,]`)

// parseBulkLines: "ad | miktar | konum | not?" satırlarını çözer. Ayraç
// olarak | ya da virgül kabul edilir. Hatalı satırlar atlanır, hataları
// satır numarasıyla döner.
func parseBulkLines(data string) ([]models.StockItem, []string) {
	items := []models.StockItem{}
	errs := []string{}

	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := lineSep.Split(line, -1)
		if len(parts) < 3 {
			errs = append(errs, fmt.Sprintf("Satır %d: Format hatalı. Örnek: \"Atlantis | 200 | Depo-1\"", i+1))
			continue
		}

		name := strings.TrimSpace(parts[0])
		location := strings.TrimSpace(parts[2])
		if name == "" || location == "" {
			errs = append(errs, fmt.Sprintf("Satır %d: Kartela adı ve konum gerekli", i+1))
			continue
		}

		quantity, _ := strconv.Atoi(strings.TrimSpace(parts[1]))

		notes := ""
		if len(parts) > 3 {
			notes = strings.TrimSpace(strings.Join(parts[3:], " "))
		}

		items = append(items, models.StockItem{
			Name:     name,
			Quantity: quantity,
			Location: location,
			Notes:    notes,
		})
	}
	return items, errs
}

// POST /api/stock/items/bulk
func BulkAddStockItemsHandler(st *state.Container, q *syncqueue.Queue) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BulkAddRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		parsed, errs := parseBulkLines(body.Data)
		if len(parsed) == 0 && len(errs) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "En az bir stok satırı girmelisiniz")
		}

		result := BulkAddResult{Errors: errs}
		for _, data := range parsed {
			item, err := st.AddStockItem(data)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Stok kayıtları kaydedilemedi")
			}
			q.Enqueue(models.SyncCreate, models.SyncEntityStockItem, item)
			result.Added++
		}

		return c.Status(fiber.StatusCreated).JSON(result)
	}
}
