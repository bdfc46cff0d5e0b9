package state

import (
	"testing"
	"time"

	"kartela-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore: testler için bellek içi doküman deposu.
type fakeStore struct {
	customers      []models.Customer
	products       []models.Product
	transactions   []models.Transaction
	stockMovements []models.StockMovement
	stockItems     []models.StockItem
	settings       models.AppSettings
	hasSettings    bool

	saveCalls map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{saveCalls: map[string]int{}}
}

func (f *fakeStore) GetCustomers() ([]models.Customer, error) {
	return append([]models.Customer{}, f.customers...), nil
}

func (f *fakeStore) SaveCustomers(customers []models.Customer) error {
	f.saveCalls["customers"]++
	f.customers = append([]models.Customer{}, customers...)
	return nil
}

func (f *fakeStore) GetProducts() ([]models.Product, error) {
	return append([]models.Product{}, f.products...), nil
}

func (f *fakeStore) SaveProducts(products []models.Product) error {
	f.saveCalls["products"]++
	f.products = append([]models.Product{}, products...)
	return nil
}

func (f *fakeStore) GetTransactions() ([]models.Transaction, error) {
	return append([]models.Transaction{}, f.transactions...), nil
}

func (f *fakeStore) SaveTransactions(transactions []models.Transaction) error {
	f.saveCalls["transactions"]++
	f.transactions = append([]models.Transaction{}, transactions...)
	return nil
}

func (f *fakeStore) GetStockMovements() ([]models.StockMovement, error) {
	return append([]models.StockMovement{}, f.stockMovements...), nil
}

func (f *fakeStore) SaveStockMovements(movements []models.StockMovement) error {
	f.saveCalls["stockMovements"]++
	f.stockMovements = append([]models.StockMovement{}, movements...)
	return nil
}

func (f *fakeStore) GetStockItems() ([]models.StockItem, error) {
	return append([]models.StockItem{}, f.stockItems...), nil
}

func (f *fakeStore) SaveStockItems(items []models.StockItem) error {
	f.saveCalls["stockItems"]++
	f.stockItems = append([]models.StockItem{}, items...)
	return nil
}

func (f *fakeStore) GetSettings() (models.AppSettings, error) {
	if !f.hasSettings {
		return models.DefaultSettings(), nil
	}
	return f.settings, nil
}

func (f *fakeStore) SaveSettings(settings models.AppSettings) error {
	f.saveCalls["settings"]++
	f.settings = settings
	f.hasSettings = true
	return nil
}

func (f *fakeStore) CreateBackup() (models.BackupData, error) {
	settings, _ := f.GetSettings()
	return models.BackupData{
		Customers:      f.customers,
		Products:       f.products,
		Transactions:   f.transactions,
		StockMovements: f.stockMovements,
		StockItems:     f.stockItems,
		Settings:       &settings,
		ExportDate:     time.Now(),
		Version:        models.BackupVersion,
	}, nil
}

func (f *fakeStore) RestoreFromBackup(backup models.BackupData) error {
	if backup.Customers != nil {
		f.customers = backup.Customers
	}
	if backup.Products != nil {
		f.products = backup.Products
	}
	if backup.Transactions != nil {
		f.transactions = backup.Transactions
	}
	if backup.StockMovements != nil {
		f.stockMovements = backup.StockMovements
	}
	if backup.StockItems != nil {
		f.stockItems = backup.StockItems
	}
	if backup.Settings != nil {
		f.settings = *backup.Settings
		f.hasSettings = true
	}
	return nil
}

func (f *fakeStore) ClearAllData() error {
	f.customers = nil
	f.products = nil
	f.transactions = nil
	f.stockMovements = nil
	f.stockItems = nil
	f.hasSettings = false
	return nil
}

func newTestContainer(t *testing.T) (*Container, *fakeStore) {
	t.Helper()
	fs := newFakeStore()
	c := NewContainer(fs)
	c.Load()
	require.NoError(t, c.LoadError())
	return c, fs
}

func TestAddCustomerAssignsIDAndPersists(t *testing.T) {
	c, fs := newTestContainer(t)

	created, err := c.AddCustomer(models.Customer{Name: "Atlantis Tekstil"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	require.Len(t, fs.customers, 1)
	assert.Equal(t, "Atlantis Tekstil", fs.customers[0].Name)
}

func TestUpdateCustomerKeepsCreatedAt(t *testing.T) {
	c, _ := newTestContainer(t)

	created, err := c.AddCustomer(models.Customer{Name: "Mert Kumaş"})
	require.NoError(t, err)

	created.Name = "Mert Kumaşçılık"
	updated, err := c.UpdateCustomer(created)
	require.NoError(t, err)

	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Mert Kumaşçılık", updated.Name)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := c.UpdateCustomer(models.Customer{ID: "yok", Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCustomerLeavesTransactions(t *testing.T) {
	c, _ := newTestContainer(t)

	customer, err := c.AddCustomer(models.Customer{Name: "Deniz Tekstil"})
	require.NoError(t, err)
	product, err := c.AddProduct(models.Product{Name: "Kartela A", Code: "ORM-0001", StockQuantity: 5})
	require.NoError(t, err)

	_, err = c.AddTransaction(models.Transaction{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Type:       models.TransactionGiven,
		Quantity:   2,
	})
	require.NoError(t, err)

	require.NoError(t, c.DeleteCustomer(customer.ID))

	snap := c.Snapshot()
	assert.Empty(t, snap.Customers)
	assert.Len(t, snap.Transactions, 1, "işlem kaydı müşteriyle birlikte silinmemeli")
}

func TestAdjustStockIn(t *testing.T) {
	c, _ := newTestContainer(t)

	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 10})
	require.NoError(t, err)

	require.NoError(t, c.AdjustStock(product.ID, 5, models.MovementIn, "sayım"))

	got, ok := c.GetProduct(product.ID)
	require.True(t, ok)
	assert.Equal(t, 15, got.StockQuantity)

	movements := c.Snapshot().StockMovements
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementIn, movements[0].Type)
	assert.Equal(t, 5, movements[0].Quantity)
	assert.Equal(t, "sayım", movements[0].Reason)
}

func TestAdjustStockOutClampsAtZero(t *testing.T) {
	c, _ := newTestContainer(t)

	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 3})
	require.NoError(t, err)

	require.NoError(t, c.AdjustStock(product.ID, 10, models.MovementOut, ""))

	got, _ := c.GetProduct(product.ID)
	assert.Equal(t, 0, got.StockQuantity)

	// Hareket kaydı gerçek düşüşü değil istenen miktarı taşır.
	movements := c.Snapshot().StockMovements
	require.Len(t, movements, 1)
	assert.Equal(t, 10, movements[0].Quantity)
}

func TestAdjustStockNegativeQuantityUsesAbsoluteValue(t *testing.T) {
	c, _ := newTestContainer(t)

	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 10})
	require.NoError(t, err)

	require.NoError(t, c.AdjustStock(product.ID, -4, models.MovementIn, ""))

	got, _ := c.GetProduct(product.ID)
	assert.Equal(t, 14, got.StockQuantity)
}

func TestAdjustStockAdjustmentReplacesQuantity(t *testing.T) {
	c, _ := newTestContainer(t)

	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 10})
	require.NoError(t, err)

	require.NoError(t, c.AdjustStock(product.ID, 42, models.MovementAdjustment, "sayım düzeltmesi"))

	got, _ := c.GetProduct(product.ID)
	assert.Equal(t, 42, got.StockQuantity)
}

func TestAdjustStockNegativeAdjustmentClampsAtZero(t *testing.T) {
	c, _ := newTestContainer(t)

	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 10})
	require.NoError(t, err)

	require.NoError(t, c.AdjustStock(product.ID, -7, models.MovementAdjustment, ""))

	got, _ := c.GetProduct(product.ID)
	assert.Equal(t, 0, got.StockQuantity)

	movements := c.Snapshot().StockMovements
	require.Len(t, movements, 1)
	assert.Equal(t, 7, movements[0].Quantity)
}

func TestAdjustStockMissingProductIsSilentlySkipped(t *testing.T) {
	c, _ := newTestContainer(t)

	require.NoError(t, c.AdjustStock("silinmis-urun", 5, models.MovementIn, ""))
	assert.Empty(t, c.Snapshot().StockMovements)
}

func TestAddTransactionGivenDecreasesStock(t *testing.T) {
	c, _ := newTestContainer(t)

	customer, err := c.AddCustomer(models.Customer{Name: "Deniz Tekstil"})
	require.NoError(t, err)
	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 10})
	require.NoError(t, err)

	tx, err := c.AddTransaction(models.Transaction{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Type:       models.TransactionGiven,
		Quantity:   3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)

	got, _ := c.GetProduct(product.ID)
	assert.Equal(t, 7, got.StockQuantity)

	movements := c.Snapshot().StockMovements
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementOut, movements[0].Type)
	assert.Equal(t, 3, movements[0].Quantity)
	assert.Equal(t, "given - Deniz Tekstil", movements[0].Reason)
}

func TestAddTransactionReturnedIncreasesStock(t *testing.T) {
	c, _ := newTestContainer(t)

	customer, err := c.AddCustomer(models.Customer{Name: "Mert Kumaş"})
	require.NoError(t, err)
	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 10})
	require.NoError(t, err)

	_, err = c.AddTransaction(models.Transaction{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Type:       models.TransactionReturned,
		Quantity:   4,
	})
	require.NoError(t, err)

	got, _ := c.GetProduct(product.ID)
	assert.Equal(t, 14, got.StockQuantity)

	movements := c.Snapshot().StockMovements
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementIn, movements[0].Type)
}

func TestAddTransactionUnknownProductSkipsStock(t *testing.T) {
	c, _ := newTestContainer(t)

	tx, err := c.AddTransaction(models.Transaction{
		CustomerID: "musteri",
		ProductID:  "silinmis-urun",
		Type:       models.TransactionSold,
		Quantity:   2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)

	snap := c.Snapshot()
	assert.Len(t, snap.Transactions, 1)
	assert.Empty(t, snap.StockMovements)
}

func TestAddTransactionUnknownCustomerStillMoves(t *testing.T) {
	c, _ := newTestContainer(t)

	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 10})
	require.NoError(t, err)

	_, err = c.AddTransaction(models.Transaction{
		CustomerID: "silinmis-musteri",
		ProductID:  product.ID,
		Type:       models.TransactionGiven,
		Quantity:   1,
	})
	require.NoError(t, err)

	movements := c.Snapshot().StockMovements
	require.Len(t, movements, 1)
	assert.Equal(t, "given - ", movements[0].Reason)
}

func TestUpdateTransactionOnlyTypeAndNotes(t *testing.T) {
	c, _ := newTestContainer(t)

	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 10})
	require.NoError(t, err)

	tx, err := c.AddTransaction(models.Transaction{
		CustomerID: "m1",
		ProductID:  product.ID,
		Type:       models.TransactionGiven,
		Quantity:   3,
	})
	require.NoError(t, err)

	updated, err := c.UpdateTransaction(tx.ID, models.TransactionReturned, "iade alındı")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionReturned, updated.Type)
	assert.Equal(t, "iade alındı", updated.Notes)
	assert.Equal(t, 3, updated.Quantity)

	// Tip değişikliği stoğu yeniden hesaplamaz.
	got, _ := c.GetProduct(product.ID)
	assert.Equal(t, 7, got.StockQuantity)
	assert.Len(t, c.Snapshot().StockMovements, 1)
}

func TestDeleteTransactionKeepsMovements(t *testing.T) {
	c, _ := newTestContainer(t)

	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 10})
	require.NoError(t, err)

	tx, err := c.AddTransaction(models.Transaction{
		CustomerID: "m1",
		ProductID:  product.ID,
		Type:       models.TransactionSold,
		Quantity:   2,
	})
	require.NoError(t, err)

	require.NoError(t, c.DeleteTransaction(tx.ID))

	snap := c.Snapshot()
	assert.Empty(t, snap.Transactions)
	assert.Len(t, snap.StockMovements, 1)
	got, _ := c.GetProduct(product.ID)
	assert.Equal(t, 8, got.StockQuantity, "silme stok deltasını geri almaz")
}

func TestBulkAddProductsContinuesCodeSequence(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := c.AddProduct(models.Product{Name: "Atlantis", Code: "ORM-0007"})
	require.NoError(t, err)
	// ORM dışı ve bozuk kodlar numara sayımına girmez.
	_, err = c.AddProduct(models.Product{Name: "Bergama", Code: "KRT-0099"})
	require.NoError(t, err)

	added, err := c.BulkAddProducts([]string{"Carmen", "Doruk"})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	products := c.Snapshot().Products
	require.Len(t, products, 4)
	assert.Equal(t, "ORM-0008", products[2].Code)
	assert.Equal(t, "Carmen", products[2].Name)
	assert.Equal(t, "Genel", products[2].Category)
	assert.Equal(t, "ORM-0009", products[3].Code)
}

func TestBulkAddProductsEmptyCollectionStartsAtOne(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := c.BulkAddProducts([]string{"Atlantis"})
	require.NoError(t, err)

	products := c.Snapshot().Products
	require.Len(t, products, 1)
	assert.Equal(t, "ORM-0001", products[0].Code)
}

func TestProductCodePattern(t *testing.T) {
	m := productCodeRe.FindStringSubmatch("ORM-0042")
	require.NotNil(t, m)
	assert.Equal(t, "0042", m[1])

	assert.Nil(t, productCodeRe.FindStringSubmatch("KRT-0042"))
	assert.Nil(t, productCodeRe.FindStringSubmatch("ORM-0042-X"))
}

func TestImportCustomersAppendsWithoutDedup(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := c.AddCustomer(models.Customer{Name: "Deniz Tekstil"})
	require.NoError(t, err)

	err = c.ImportCustomers([]models.Customer{
		{ID: "i1", Name: "Deniz Tekstil"},
		{ID: "i2", Name: "Mert Kumaş"},
	})
	require.NoError(t, err)

	assert.Len(t, c.Snapshot().Customers, 3)
}

func TestSettingsRoundTrip(t *testing.T) {
	c, fs := newTestContainer(t)

	assert.Equal(t, models.DefaultSettings(), c.Settings())

	next := c.Settings()
	next.CompanyName = "ORMEN Tekstil"
	next.Theme = "dark"
	require.NoError(t, c.UpdateSettings(next))

	assert.Equal(t, "ORMEN Tekstil", c.Settings().CompanyName)
	assert.Equal(t, "ORMEN Tekstil", fs.settings.CompanyName)
}

func TestMarkBackupDone(t *testing.T) {
	c, _ := newTestContainer(t)

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, c.MarkBackupDone(at))

	settings := c.Settings()
	require.NotNil(t, settings.LastBackup)
	assert.Equal(t, at, *settings.LastBackup)
}

func TestRestoreBackupReplacesPresentFields(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := c.AddCustomer(models.Customer{Name: "Eski Müşteri"})
	require.NoError(t, err)
	_, err = c.AddProduct(models.Product{Name: "Eski Kartela", Code: "ORM-0001"})
	require.NoError(t, err)

	err = c.RestoreBackup(models.BackupData{
		Customers: []models.Customer{{ID: "y1", Name: "Yeni Müşteri"}},
		Version:   models.BackupVersion,
	})
	require.NoError(t, err)

	snap := c.Snapshot()
	require.Len(t, snap.Customers, 1)
	assert.Equal(t, "Yeni Müşteri", snap.Customers[0].Name)
	// Zarfta olmayan koleksiyonlar korunur.
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Eski Kartela", snap.Products[0].Name)
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	c, _ := newTestContainer(t)

	customer, err := c.AddCustomer(models.Customer{Name: "Deniz Tekstil"})
	require.NoError(t, err)
	product, err := c.AddProduct(models.Product{Name: "Kartela", Code: "ORM-0001", StockQuantity: 10})
	require.NoError(t, err)
	_, err = c.AddTransaction(models.Transaction{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Type:       models.TransactionGiven,
		Quantity:   3,
	})
	require.NoError(t, err)

	backup, err := c.CreateBackup()
	require.NoError(t, err)
	before := c.Snapshot()

	require.NoError(t, c.RestoreBackup(backup))
	after := c.Snapshot()

	assert.Equal(t, before.Customers, after.Customers)
	assert.Equal(t, before.Products, after.Products)
	assert.Equal(t, before.Transactions, after.Transactions)
	assert.Equal(t, before.StockMovements, after.StockMovements)
}

func TestClearAllResetsStateAndSettings(t *testing.T) {
	c, fs := newTestContainer(t)

	_, err := c.AddCustomer(models.Customer{Name: "Deniz Tekstil"})
	require.NoError(t, err)
	next := c.Settings()
	next.CompanyName = "ORMEN Tekstil"
	require.NoError(t, c.UpdateSettings(next))

	require.NoError(t, c.ClearAll())

	snap := c.Snapshot()
	assert.Empty(t, snap.Customers)
	assert.Equal(t, models.DefaultSettings(), snap.Settings)
	assert.Empty(t, fs.customers)
}

func TestSnapshotIsACopy(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := c.AddCustomer(models.Customer{Name: "Deniz Tekstil"})
	require.NoError(t, err)

	snap := c.Snapshot()
	snap.Customers[0].Name = "Değişti"

	assert.Equal(t, "Deniz Tekstil", c.Snapshot().Customers[0].Name)
}
