package product

import (
	"strings"
	"testing"

	"kartela-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVFullRow(t *testing.T) {
	input := "Ad,Kod,Kategori,Açıklama,Birim,Fiyat,Stok Miktarı,Min. Stok\n" +
		"Atlantis,ORM-0001,Döşemelik,Kadife serisi,Adet,125.50,40,5\n"

	result := ParseCSV(strings.NewReader(input))
	require.True(t, result.Success)
	require.Len(t, result.Data, 1)

	p := result.Data[0]
	assert.Equal(t, "Atlantis", p.Name)
	assert.Equal(t, "ORM-0001", p.Code)
	assert.Equal(t, "Döşemelik", p.Category)
	require.NotNil(t, p.Price)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("125.50")))
	assert.Equal(t, 40, p.StockQuantity)
	assert.Equal(t, 5, p.MinStockLevel)
}

func TestParseCSVMissingNameAndCode(t *testing.T) {
	input := "Ad,Kod\n" +
		",ORM-0001\n" +
		"Atlantis,\n" +
		"Bergama,ORM-0002\n"

	result := ParseCSV(strings.NewReader(input))
	assert.False(t, result.Success)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "Satır 1: Ürün adı gerekli", result.Errors[0])
	assert.Equal(t, "Satır 2: Ürün kodu gerekli", result.Errors[1])
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Bergama", result.Data[0].Name)
}

func TestParseCSVBadNumbersDefaultToZero(t *testing.T) {
	input := "Ad,Kod,Fiyat,Stok Miktarı,Min. Stok\n" +
		"Atlantis,ORM-0001,fiyat-yok,bozuk,\n"

	result := ParseCSV(strings.NewReader(input))
	require.True(t, result.Success, "sayısal alan hataları satırı düşürmez")
	require.Len(t, result.Data, 1)

	p := result.Data[0]
	assert.Nil(t, p.Price)
	assert.Equal(t, 0, p.StockQuantity)
	assert.Equal(t, 0, p.MinStockLevel)
}

func TestParseCSVEnglishHeaders(t *testing.T) {
	input := "Name,Code,Category,Price,Stock,MinStock\n" +
		"Atlantis,ORM-0001,Upholstery,99,10,2\n"

	result := ParseCSV(strings.NewReader(input))
	require.True(t, result.Success)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Upholstery", result.Data[0].Category)
	assert.Equal(t, 10, result.Data[0].StockQuantity)
}

func TestExportImportRoundTrip(t *testing.T) {
	price := decimal.RequireFromString("45.00")
	products := []models.Product{
		{Name: "Atlantis", Code: "ORM-0001", Category: "Döşemelik", Unit: "Adet", Price: &price, StockQuantity: 40, MinStockLevel: 5},
		{Name: "Bergama", Code: "ORM-0002"},
	}

	result := ParseCSV(strings.NewReader(string(ExportCSV(products))))
	require.True(t, result.Success)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "ORM-0001", result.Data[0].Code)
	require.NotNil(t, result.Data[0].Price)
	assert.True(t, result.Data[0].Price.Equal(price))
	assert.Nil(t, result.Data[1].Price)
}

func TestTemplateCSVParses(t *testing.T) {
	result := ParseCSV(strings.NewReader(string(TemplateCSV())))
	require.True(t, result.Success)
	assert.Len(t, result.Data, 2)
}
