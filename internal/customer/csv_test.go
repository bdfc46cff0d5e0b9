package customer

import (
	"strings"
	"testing"
	"time"

	"kartela-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVTurkishHeaders(t *testing.T) {
	input := "Ad,Şirket,Telefon,E-posta,Adres,Şehir,Notlar\n" +
		"Deniz Tekstil,Deniz Ltd.,0532 111 22 33,deniz@example.com,Merkez Mah.,Bursa,VIP\n"

	result := ParseCSV(strings.NewReader(input))
	require.True(t, result.Success)
	require.Len(t, result.Data, 1)

	c := result.Data[0]
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Deniz Tekstil", c.Name)
	assert.Equal(t, "Deniz Ltd.", c.Company)
	assert.Equal(t, "Bursa", c.City)
	assert.Equal(t, "VIP", c.Notes)
}

func TestParseCSVEnglishHeadersAndBOM(t *testing.T) {
	input := "\uFEFFName,Company,Phone,Email,Address,City,Notes\n" +
		"Mert Kumaş,Mert A.Ş.,,,,İstanbul,\n"

	result := ParseCSV(strings.NewReader(input))
	require.True(t, result.Success)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Mert Kumaş", result.Data[0].Name)
	assert.Equal(t, "İstanbul", result.Data[0].City)
}

func TestParseCSVMissingNameIsRowError(t *testing.T) {
	input := "Ad,Şirket\n" +
		",Adsız Ltd.\n" +
		"Deniz Tekstil,Deniz Ltd.\n"

	result := ParseCSV(strings.NewReader(input))
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Satır 1: Müşteri adı gerekli", result.Errors[0])
	// Hatalı satır geçerli satırı bloklamaz.
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Deniz Tekstil", result.Data[0].Name)
}

func TestParseCSVEmptyInput(t *testing.T) {
	result := ParseCSV(strings.NewReader(""))
	assert.False(t, result.Success)
	assert.Empty(t, result.Data)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "CSV okuma hatası")
}

func TestExportCSVStartsWithBOM(t *testing.T) {
	content := ExportCSV([]models.Customer{
		{Name: "Deniz Tekstil", Company: "Deniz Ltd.", City: "Bursa", CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	})

	text := string(content)
	assert.True(t, strings.HasPrefix(text, "\uFEFF"))
	assert.Contains(t, text, "Ad,Şirket,Telefon,E-posta,Adres,Şehir,Notlar,Oluşturma Tarihi")
	assert.Contains(t, text, "Deniz Tekstil,Deniz Ltd.,,,,Bursa,,01.03.2026")
}

func TestExportImportRoundTrip(t *testing.T) {
	customers := []models.Customer{
		{Name: "Deniz Tekstil", Company: "Deniz Ltd.", Phone: "0532 111 22 33", City: "Bursa"},
		{Name: "Mert Kumaş", Email: "mert@example.com", City: "İstanbul"},
	}

	result := ParseCSV(strings.NewReader(string(ExportCSV(customers))))
	require.True(t, result.Success)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Deniz Tekstil", result.Data[0].Name)
	assert.Equal(t, "mert@example.com", result.Data[1].Email)
}

func TestTemplateCSVParses(t *testing.T) {
	result := ParseCSV(strings.NewReader(string(TemplateCSV())))
	require.True(t, result.Success)
	assert.Len(t, result.Data, 2)
}

func TestSplitLinesTrimsAndDropsEmpty(t *testing.T) {
	lines := splitLines("  Deniz Tekstil  \n\n\tMert Kumaş\n   \n")
	assert.Equal(t, []string{"Deniz Tekstil", "Mert Kumaş"}, lines)
}
