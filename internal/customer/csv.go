package customer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"kartela-backend/internal/models"

	"github.com/google/uuid"
)

// ImportResult: satır bazlı hataları toplayan kısmi başarı sonucu. Hatalı
// satırlar atlanır, geçerli satırlar yine de içeri alınır.
type ImportResult struct {
	Success bool              `json:"success"`
	Data    []models.Customer `json:"data"`
	Errors  []string          `json:"errors"`
	Skipped int               `json:"skipped"`
}

var exportHeaders = []string{"Ad", "Şirket", "Telefon", "E-posta", "Adres", "Şehir", "Notlar", "Oluşturma Tarihi"}

// ExportCSV: UTF-8 BOM ile başlayan, Türkçe başlıklı müşteri dökümü.
func ExportCSV(customers []models.Customer) []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	_ = w.Write(exportHeaders)
	for _, c := range customers {
		_ = w.Write([]string{
			c.Name,
			c.Company,
			c.Phone,
			c.Email,
			c.Address,
			c.City,
			c.Notes,
			c.CreatedAt.Format("02.01.2006"),
		})
	}
	w.Flush()
	return buf.Bytes()
}

// headerIndex: Türkçe başlık ve kabul edilen İngilizce alternatifleri için
// kolon indeksi bulur; hiçbiri yoksa -1.
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

// ParseCSV: başlık satırlı müşteri CSV'sini çözer. Ad zorunlu; eksik olan
// satırlar hata listesine satır numarasıyla eklenir ve atlanır.
func ParseCSV(r io.Reader) ImportResult {
	result := ImportResult{Data: []models.Customer{}, Errors: []string{}}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("CSV okuma hatası: %v", err))
		return result
	}

	nameIdx := headerIndex(header, "Ad", "Name")
	companyIdx := headerIndex(header, "Şirket", "Company")
	phoneIdx := headerIndex(header, "Telefon", "Phone")
	emailIdx := headerIndex(header, "E-posta", "Email")
	addressIdx := headerIndex(header, "Adres", "Address")
	cityIdx := headerIndex(header, "Şehir", "City")
	notesIdx := headerIndex(header, "Notlar", "Notes")

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
			result.Errors = append(result.Errors, fmt.Sprintf("Satır %d: Müşteri adı gerekli", row))
			result.Skipped++
			continue
		}

		now := time.Now()
		result.Data = append(result.Data, models.Customer{
			ID:        uuid.NewString(),
			Name:      name,
			Company:   field(record, companyIdx),
			Phone:     field(record, phoneIdx),
			Email:     field(record, emailIdx),
			Address:   field(record, addressIdx),
			City:      field(record, cityIdx),
			Notes:     field(record, notesIdx),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	result.Success = len(result.Errors) == 0
	return result
}

// TemplateCSV: içe aktarma formatını gösteren örnek dosya.
func TemplateCSV() []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Ad", "Şirket", "Telefon", "E-posta", "Adres", "Şehir", "Notlar"})
	_ = w.Write([]string{"Örnek Müşteri 1", "ABC Ltd. Şti.", "0532 123 45 67", "musteri1@example.com", "Örnek Mahallesi, Örnek Sokak No:1", "İstanbul", "VIP müşteri"})
	_ = w.Write([]string{"Örnek Müşteri 2", "XYZ A.Ş.", "0533 987 65 43", "musteri2@example.com", "Test Mahallesi, Test Caddesi No:5", "Ankara", "Aylık müşteri"})
	w.Flush()
	return buf.Bytes()
}
