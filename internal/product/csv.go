package product

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"kartela-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ImportResult struct {
	Success bool             `json:"success"`
	Data    []models.Product `json:"data"`
	Errors  []string         `json:"errors"`
	Skipped int              `json:"skipped"`
}

var exportHeaders = []string{"Ad", "Kod", "Kategori", "Açıklama", "Birim", "Fiyat", "Stok Miktarı", "Min. Stok", "Oluşturma Tarihi"}

func ExportCSV(products []models.Product) []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	_ = w.Write(exportHeaders)
	for _, p := range products {
		price := ""
		if p.Price != nil {
			price = p.Price.String()
		}
		_ = w.Write([]string{
			p.Name,
			p.Code,
			p.Category,
			p.Description,
			p.Unit,
			price,
			strconv.Itoa(p.StockQuantity),
			strconv.Itoa(p.MinStockLevel),
			p.CreatedAt.Format("02.01.2006"),
		})
	}
	w.Flush()
	return buf.Bytes()
}

func headerIndex(header []string, names ...string) int {
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		for _, name := range names {
			if strings.EqualFold(h, name) {
				return i
			}
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// ParseCSV: kartela CSV'sini çözer. Ad ve kod zorunlu; sayısal alanlar
// çözülemezse sıfır kabul edilir, satır bu yüzden reddedilmez.
func ParseCSV(r io.Reader) ImportResult {
	result := ImportResult{Data: []models.Product{}, Errors: []string{}}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("CSV okuma hatası: %v", err))
		return result
	}

	nameIdx := headerIndex(header, "Ad", "Name")
	codeIdx := headerIndex(header, "Kod", "Code")
	categoryIdx := headerIndex(header, "Kategori", "Category")
	descriptionIdx := headerIndex(header, "Açıklama", "Description")
	unitIdx := headerIndex(header, "Birim", "Unit")
	priceIdx := headerIndex(header, "Fiyat", "Price")
	stockIdx := headerIndex(header, "Stok Miktarı", "Stock")
	minStockIdx := headerIndex(header, "Min. Stok", "MinStock")

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Satır %d: %v", row, err))
			result.Skipped++
			continue
		}

		name := field(record, nameIdx)
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Satır %d: Ürün adı gerekli", row))
			result.Skipped++
			continue
		}
		code := field(record, codeIdx)
		if code == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Satır %d: Ürün kodu gerekli", row))
			result.Skipped++
			continue
		}

		var price *decimal.Decimal
		if raw := field(record, priceIdx); raw != "" {
			if d, err := decimal.NewFromString(raw); err == nil {
				price = &d
			}
		}

		stock, _ := strconv.Atoi(field(record, stockIdx))
		minStock, _ := strconv.Atoi(field(record, minStockIdx))

		now := time.Now()
		result.Data = append(result.Data, models.Product{
			ID:            uuid.NewString(),
			Name:          name,
			Code:          code,
			Category:      field(record, categoryIdx),
			Description:   field(record, descriptionIdx),
			Unit:          field(record, unitIdx),
			Price:         price,
			StockQuantity: stock,
			MinStockLevel: minStock,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	result.Success = len(result.Errors) == 0
	return result
}

func TemplateCSV() []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Ad", "Kod", "Kategori", "Açıklama", "Birim", "Fiyat", "Stok Miktarı", "Min. Stok"})
	_ = w.Write([]string{"Kartela A1", "KRT-A1-001", "Standart Kartela", "Standart boyut kartela", "Adet", "25.50", "100", "10"})
	_ = w.Write([]string{"Kartela B2", "KRT-B2-002", "Büyük Kartela", "Büyük boyut kartela", "Adet", "45.00", "50", "5"})
	w.Flush()
	return buf.Bytes()
}
