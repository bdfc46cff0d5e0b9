package report

import (
	"kartela-backend/internal/views"

	"github.com/xuri/excelize/v2"
)

// BuildWorkbook: rapor verisini beş sayfalık bir xlsx dosyasına yazar.
// Sayfa sırası rapor ekranındaki sekme sırasıyla aynıdır.
func BuildWorkbook(data views.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, data.Summary); err != nil {
		return nil, err
	}
	if err := writeCustomerSheet(f, data.CustomerStats); err != nil {
		return nil, err
	}
	if err := writeProductSheet(f, data.ProductStats); err != nil {
		return nil, err
	}
	if err := writeDailySheet(f, data.DailyActivity); err != nil {
		return nil, err
	}
	if err := writeCategorySheet(f, data.CategoryStats); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeSummarySheet(f *excelize.File, s views.ReportSummary) error {
	const sheet = "Özet"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Toplam İşlem", s.TotalTransactions},
		{"Toplam Miktar", s.TotalQuantity},
		{"Aktif Müşteri", s.ActiveCustomers},
		{"Aktif Kartela", s.ActiveProducts},
		{"Düşük Stok", s.LowStockProducts},
	}
	for i, row := range rows {
		if err := writeRow(f, sheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCustomerSheet(f *excelize.File, stats []views.CustomerStat) error {
	const sheet = "Müşteriler"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := writeRow(f, sheet, 1, []interface{}{"Müşteri", "Şirket", "İşlem Sayısı", "Toplam Miktar", "Verilen", "İade", "Satılan", "Son İşlem"}); err != nil {
		return err
	}
	for i, s := range stats {
		last := ""
		if s.LastTransaction != nil {
			last = s.LastTransaction.Format("02.01.2006")
		}
		row := []interface{}{s.Customer.Name, s.Customer.Company, s.TransactionCount, s.TotalQuantity, s.GivenCount, s.ReturnedCount, s.SoldCount, last}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeProductSheet(f *excelize.File, stats []views.ProductStat) error {
	const sheet = "Kartelalar"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := writeRow(f, sheet, 1, []interface{}{"Kartela", "Kod", "Kategori", "İşlem Sayısı", "Toplam Miktar", "Verilen", "İade", "Satılan", "Mevcut Stok", "Min. Stok", "Stok Durumu"}); err != nil {
		return err
	}
	for i, s := range stats {
		status := "Normal"
		if s.StockStatus == "low" {
			status = "Düşük"
		}
		row := []interface{}{s.Product.Name, s.Product.Code, s.Product.Category, s.TransactionCount, s.TotalQuantity, s.GivenQuantity, s.ReturnedQuantity, s.SoldQuantity, s.CurrentStock, s.MinStock, status}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeDailySheet(f *excelize.File, days []views.DailyActivity) error {
	const sheet = "Günlük Aktivite"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := writeRow(f, sheet, 1, []interface{}{"Tarih", "İşlem Sayısı", "Toplam Miktar", "Verilen", "İade", "Satılan"}); err != nil {
		return err
	}
	for i, d := range days {
		row := []interface{}{d.Date, d.Count, d.TotalQuantity, d.GivenCount, d.ReturnedCount, d.SoldCount}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCategorySheet(f *excelize.File, stats []views.CategoryStat) error {
	const sheet = "Kategoriler"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := writeRow(f, sheet, 1, []interface{}{"Kategori", "Kartela Sayısı", "İşlem Sayısı", "Toplam Miktar", "Toplam Stok"}); err != nil {
		return err
	}
	for i, s := range stats {
		row := []interface{}{s.Category, s.ProductCount, s.TransactionCount, s.TotalQuantity, s.TotalStock}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}
