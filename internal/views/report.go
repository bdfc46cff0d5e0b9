package views

import (
	"sort"
	"time"

	"kartela-backend/internal/models"
	"kartela-backend/internal/state"
)

type CustomerStat struct {
	Customer         models.Customer `json:"customer"`
	TransactionCount int             `json:"transactionCount"`
	TotalQuantity    int             `json:"totalQuantity"`
	LastTransaction  *time.Time      `json:"lastTransaction,omitempty"`
	GivenCount       int             `json:"givenCount"`
	ReturnedCount    int             `json:"returnedCount"`
	SoldCount        int             `json:"soldCount"`
}

type ProductStat struct {
	Product          models.Product `json:"product"`
	TransactionCount int            `json:"transactionCount"`
	TotalQuantity    int            `json:"totalQuantity"`
	StockStatus      string         `json:"stockStatus"` // low / ok
	CurrentStock     int            `json:"currentStock"`
	MinStock         int            `json:"minStock"`
	GivenQuantity    int            `json:"givenQuantity"`
	ReturnedQuantity int            `json:"returnedQuantity"`
	SoldQuantity     int            `json:"soldQuantity"`
}

type DailyActivity struct {
	Date          string `json:"date"` // YYYY-MM-DD
	Count         int    `json:"count"`
	TotalQuantity int    `json:"totalQuantity"`
	GivenCount    int    `json:"givenCount"`
	ReturnedCount int    `json:"returnedCount"`
	SoldCount     int    `json:"soldCount"`
}

type CategoryStat struct {
	Category         string `json:"category"`
	ProductCount     int    `json:"productCount"`
	TransactionCount int    `json:"transactionCount"`
	TotalQuantity    int    `json:"totalQuantity"`
	TotalStock       int    `json:"totalStock"`
}

type ReportSummary struct {
	TotalTransactions int `json:"totalTransactions"`
	TotalQuantity     int `json:"totalQuantity"`
	ActiveCustomers   int `json:"activeCustomers"`
	ActiveProducts    int `json:"activeProducts"`
	LowStockProducts  int `json:"lowStockProducts"`
}

type ReportData struct {
	CustomerStats []CustomerStat  `json:"customerStats"`
	ProductStats  []ProductStat   `json:"productStats"`
	DailyActivity []DailyActivity `json:"dailyActivity"`
	CategoryStats []CategoryStat  `json:"categoryStats"`
	Summary       ReportSummary   `json:"summary"`
}

// Report: tarih aralığına göre süzülmüş işlem görünümünden müşteri, ürün,
// gün ve kategori bazlı dökümleri hesaplar. from/to nil ise o uç açık kalır.
func Report(snap state.Snapshot, from, to *time.Time) ReportData {
	filtered := make([]models.TransactionWithDetails, 0)
	for _, t := range TransactionsWithDetails(snap) {
		if from != nil && t.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && t.CreatedAt.After(*to) {
			continue
		}
		filtered = append(filtered, t)
	}

	customerStats := make([]CustomerStat, 0, len(snap.Customers))
	for _, customer := range snap.Customers {
		stat := CustomerStat{Customer: customer}
		for _, t := range filtered {
			if t.CustomerID != customer.ID {
				continue
			}
			stat.TransactionCount++
			stat.TotalQuantity += t.Quantity
			if stat.LastTransaction == nil || t.CreatedAt.After(*stat.LastTransaction) {
				created := t.CreatedAt
				stat.LastTransaction = &created
			}
			switch t.Type {
			case models.TransactionGiven:
				stat.GivenCount++
			case models.TransactionReturned:
				stat.ReturnedCount++
			case models.TransactionSold:
				stat.SoldCount++
			}
		}
		customerStats = append(customerStats, stat)
	}
	sort.SliceStable(customerStats, func(i, j int) bool {
		return customerStats[i].TransactionCount > customerStats[j].TransactionCount
	})

	productStats := make([]ProductStat, 0, len(snap.Products))
	for _, product := range snap.Products {
		stat := ProductStat{
			Product:      product,
			StockStatus:  "ok",
			CurrentStock: product.StockQuantity,
			MinStock:     product.MinStockLevel,
		}
		if product.StockQuantity <= product.MinStockLevel {
			stat.StockStatus = "low"
		}
		for _, t := range filtered {
			if t.ProductID != product.ID {
				continue
			}
			stat.TransactionCount++
			stat.TotalQuantity += t.Quantity
			switch t.Type {
			case models.TransactionGiven:
				stat.GivenQuantity += t.Quantity
			case models.TransactionReturned:
				stat.ReturnedQuantity += t.Quantity
			case models.TransactionSold:
				stat.SoldQuantity += t.Quantity
			}
		}
		productStats = append(productStats, stat)
	}
	sort.SliceStable(productStats, func(i, j int) bool {
		return productStats[i].TransactionCount > productStats[j].TransactionCount
	})

	daily := map[string]*DailyActivity{}
	for _, t := range filtered {
		date := t.CreatedAt.Format("2006-01-02")
		day, ok := daily[date]
		if !ok {
			day = &DailyActivity{Date: date}
			daily[date] = day
		}
		day.Count++
		day.TotalQuantity += t.Quantity
		switch t.Type {
		case models.TransactionGiven:
			day.GivenCount++
		case models.TransactionReturned:
			day.ReturnedCount++
		case models.TransactionSold:
			day.SoldCount++
		}
	}
	dailyActivity := make([]DailyActivity, 0, len(daily))
	for _, day := range daily {
		dailyActivity = append(dailyActivity, *day)
	}
	sort.Slice(dailyActivity, func(i, j int) bool {
		return dailyActivity[i].Date < dailyActivity[j].Date
	})

	categories := map[string]*CategoryStat{}
	categoryOfProduct := make(map[string]string, len(snap.Products))
	for _, product := range snap.Products {
		category := product.Category
		if category == "" {
			category = "Kategorisiz"
		}
		categoryOfProduct[product.ID] = category
		stat, ok := categories[category]
		if !ok {
			stat = &CategoryStat{Category: category}
			categories[category] = stat
		}
		stat.ProductCount++
		stat.TotalStock += product.StockQuantity
	}
	for _, t := range filtered {
		if category, ok := categoryOfProduct[t.ProductID]; ok {
			categories[category].TransactionCount++
			categories[category].TotalQuantity += t.Quantity
		}
	}
	categoryStats := make([]CategoryStat, 0, len(categories))
	for _, stat := range categories {
		categoryStats = append(categoryStats, *stat)
	}
	sort.SliceStable(categoryStats, func(i, j int) bool {
		if categoryStats[i].TransactionCount != categoryStats[j].TransactionCount {
			return categoryStats[i].TransactionCount > categoryStats[j].TransactionCount
		}
		return categoryStats[i].Category < categoryStats[j].Category
	})

	summary := ReportSummary{
		TotalTransactions: len(filtered),
	}
	for _, t := range filtered {
		summary.TotalQuantity += t.Quantity
	}
	for _, stat := range customerStats {
		if stat.TransactionCount > 0 {
			summary.ActiveCustomers++
		}
	}
	for _, stat := range productStats {
		if stat.TransactionCount > 0 {
			summary.ActiveProducts++
		}
		if stat.StockStatus == "low" {
			summary.LowStockProducts++
		}
	}

	return ReportData{
		CustomerStats: customerStats,
		ProductStats:  productStats,
		DailyActivity: dailyActivity,
		CategoryStats: categoryStats,
		Summary:       summary,
	}
}
