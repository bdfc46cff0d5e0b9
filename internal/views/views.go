// Package views: container anlık görüntüsü üzerinde çalışan saf sorgu
// fonksiyonları. Cache yoktur; her çağrı ilgili koleksiyonlar üzerinde
// baştan hesaplar.
package views

import (
	"sort"
	"time"

	"kartela-backend/internal/models"
	"kartela-backend/internal/state"
)

// TransactionsWithDetails: her işlemi müşterisi ve ürünüyle eşler. Müşterisi
// veya ürünü artık var olmayan işlemler hata üretmeden sonuçtan düşer.
func TransactionsWithDetails(snap state.Snapshot) []models.TransactionWithDetails {
	customers := make(map[string]models.Customer, len(snap.Customers))
	for _, c := range snap.Customers {
		customers[c.ID] = c
	}
	products := make(map[string]models.Product, len(snap.Products))
	for _, p := range snap.Products {
		products[p.ID] = p
	}

	out := make([]models.TransactionWithDetails, 0, len(snap.Transactions))
	for _, t := range snap.Transactions {
		customer, okC := customers[t.CustomerID]
		product, okP := products[t.ProductID]
		if !okC || !okP {
			continue
		}
		out = append(out, models.TransactionWithDetails{
			Transaction: t,
			Customer:    customer,
			Product:     product,
		})
	}
	return out
}

func CustomerTransactions(snap state.Snapshot, customerID string) []models.TransactionWithDetails {
	all := TransactionsWithDetails(snap)
	out := make([]models.TransactionWithDetails, 0, len(all))
	for _, t := range all {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out
}

func ProductTransactions(snap state.Snapshot, productID string) []models.TransactionWithDetails {
	all := TransactionsWithDetails(snap)
	out := make([]models.TransactionWithDetails, 0, len(all))
	for _, t := range all {
		if t.ProductID == productID {
			out = append(out, t)
		}
	}
	return out
}

type TopCustomer struct {
	Customer         models.Customer `json:"customer"`
	TransactionCount int             `json:"transactionCount"`
	LastTransaction  time.Time       `json:"lastTransaction"`
}

type TopProduct struct {
	Product          models.Product `json:"product"`
	TransactionCount int            `json:"transactionCount"`
	TotalQuantity    int            `json:"totalQuantity"`
}

type DashboardStats struct {
	TotalCustomers     int                             `json:"totalCustomers"`
	TotalProducts      int                             `json:"totalProducts"`
	TotalTransactions  int                             `json:"totalTransactions"`
	LowStockProducts   int                             `json:"lowStockProducts"`
	RecentTransactions []models.TransactionWithDetails `json:"recentTransactions"`
	TopCustomers       []TopCustomer                   `json:"topCustomers"`
	TopProducts        []TopProduct                    `json:"topProducts"`
}

// Dashboard: sayaçlar, düşük stok sayısı (stok <= min stok), son 5 işlem ve
// işlem sayısına göre ilk 5 müşteri/ürün. Eşitlikte koleksiyon sırası korunur.
func Dashboard(snap state.Snapshot) DashboardStats {
	joined := TransactionsWithDetails(snap)

	lowStock := 0
	for _, p := range snap.Products {
		if p.StockQuantity <= p.MinStockLevel {
			lowStock++
		}
	}

	recent := append([]models.TransactionWithDetails(nil), joined...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	topCustomers := make([]TopCustomer, 0, len(snap.Customers))
	for _, customer := range snap.Customers {
		entry := TopCustomer{Customer: customer}
		for _, t := range joined {
			if t.CustomerID != customer.ID {
				continue
			}
			entry.TransactionCount++
			if t.CreatedAt.After(entry.LastTransaction) {
				entry.LastTransaction = t.CreatedAt
			}
		}
		topCustomers = append(topCustomers, entry)
	}
	sort.SliceStable(topCustomers, func(i, j int) bool {
		return topCustomers[i].TransactionCount > topCustomers[j].TransactionCount
	})
	if len(topCustomers) > 5 {
		topCustomers = topCustomers[:5]
	}

	topProducts := make([]TopProduct, 0, len(snap.Products))
	for _, product := range snap.Products {
		entry := TopProduct{Product: product}
		for _, t := range joined {
			if t.ProductID != product.ID {
				continue
			}
			entry.TransactionCount++
			entry.TotalQuantity += t.Quantity
		}
		topProducts = append(topProducts, entry)
	}
	sort.SliceStable(topProducts, func(i, j int) bool {
		return topProducts[i].TransactionCount > topProducts[j].TransactionCount
	})
	if len(topProducts) > 5 {
		topProducts = topProducts[:5]
	}

	return DashboardStats{
		TotalCustomers:     len(snap.Customers),
		TotalProducts:      len(snap.Products),
		TotalTransactions:  len(snap.Transactions),
		LowStockProducts:   lowStock,
		RecentTransactions: recent,
		TopCustomers:       topCustomers,
		TopProducts:        topProducts,
	}
}
