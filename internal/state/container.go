package state

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"kartela-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("kayıt bulunamadı")

// Store: container'ın altındaki kalıcı doküman deposu. Çalışma zamanında
// pasif bir aynadır; açılışta bir kez okunur, her değişiklikte üstüne yazılır.
type Store interface {
	GetCustomers() ([]models.Customer, error)
	SaveCustomers([]models.Customer) error
	GetProducts() ([]models.Product, error)
	SaveProducts([]models.Product) error
	GetTransactions() ([]models.Transaction, error)
	SaveTransactions([]models.Transaction) error
	GetStockMovements() ([]models.StockMovement, error)
	SaveStockMovements([]models.StockMovement) error
	GetStockItems() ([]models.StockItem, error)
	SaveStockItems([]models.StockItem) error
	GetSettings() (models.AppSettings, error)
	SaveSettings(models.AppSettings) error
	CreateBackup() (models.BackupData, error)
	RestoreFromBackup(models.BackupData) error
	ClearAllData() error
}

// Container: altı koleksiyonun bellekteki tek sahibi. Tüm komutlar mutex
// üzerinden tek tek uygulanır; aynı anda ikinci bir yazıcı yoktur.
type Container struct {
	mu    sync.Mutex
	store Store

	customers      []models.Customer
	products       []models.Product
	transactions   []models.Transaction
	stockMovements []models.StockMovement
	stockItems     []models.StockItem
	settings       models.AppSettings

	loadErr error
}

func NewContainer(store Store) *Container {
	return &Container{
		store:    store,
		settings: models.DefaultSettings(),
	}
}

// Load: açılışta koleksiyonları store'dan bir kez okur. Okuma başarısız
// olursa hata bayrağı kalkar, koleksiyonlar boş kalır; uygulama çökmez.
func (c *Container) Load() {
	c.mu.Lock()
	defer c.mu.Unlock()

	load := func() error {
		var err error
		if c.customers, err = c.store.GetCustomers(); err != nil {
			return err
		}
		if c.products, err = c.store.GetProducts(); err != nil {
			return err
		}
		if c.transactions, err = c.store.GetTransactions(); err != nil {
			return err
		}
		if c.stockMovements, err = c.store.GetStockMovements(); err != nil {
			return err
		}
		if c.stockItems, err = c.store.GetStockItems(); err != nil {
			return err
		}
		if c.settings, err = c.store.GetSettings(); err != nil {
			return err
		}
		return nil
	}

	if err := load(); err != nil {
		logrus.Errorf("Veri yüklenirken hata oluştu: %v", err)
		c.loadErr = err
		c.customers = []models.Customer{}
		c.products = []models.Product{}
		c.transactions = []models.Transaction{}
		c.stockMovements = []models.StockMovement{}
		c.stockItems = []models.StockItem{}
		c.settings = models.DefaultSettings()
	}
}

// LoadError: açılış yüklemesi başarısızsa nedeni, değilse nil.
func (c *Container) LoadError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// Snapshot: türetilmiş görünümler için o anki durumun kopyası.
type Snapshot struct {
	Customers      []models.Customer
	Products       []models.Product
	Transactions   []models.Transaction
	StockMovements []models.StockMovement
	StockItems     []models.StockItem
	Settings       models.AppSettings
}

func (c *Container) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Customers:      append([]models.Customer(nil), c.customers...),
		Products:       append([]models.Product(nil), c.products...),
		Transactions:   append([]models.Transaction(nil), c.transactions...),
		StockMovements: append([]models.StockMovement(nil), c.stockMovements...),
		StockItems:     append([]models.StockItem(nil), c.stockItems...),
		Settings:       c.settings,
	}
}

// --- Müşteri komutları ---

func (c *Container) AddCustomer(data models.Customer) (models.Customer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	data.ID = uuid.NewString()
	data.CreatedAt = now
	data.UpdatedAt = now

	c.customers = append(c.customers, data)
	return data, c.store.SaveCustomers(c.customers)
}

func (c *Container) UpdateCustomer(customer models.Customer) (models.Customer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.customers {
		if c.customers[i].ID == customer.ID {
			customer.CreatedAt = c.customers[i].CreatedAt
			customer.UpdatedAt = time.Now()
			c.customers[i] = customer
			return customer, c.store.SaveCustomers(c.customers)
		}
	}
	return models.Customer{}, ErrNotFound
}

// DeleteCustomer: hard delete; müşterinin işlemlerine dokunulmaz, görünümler
// sahipsiz kalan işlemleri sessizce eler.
func (c *Container) DeleteCustomer(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.customers {
		if c.customers[i].ID == id {
			c.customers = append(c.customers[:i], c.customers[i+1:]...)
			return c.store.SaveCustomers(c.customers)
		}
	}
	return ErrNotFound
}

func (c *Container) GetCustomer(id string) (models.Customer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findCustomer(id)
}

func (c *Container) findCustomer(id string) (models.Customer, bool) {
	for _, cu := range c.customers {
		if cu.ID == id {
			return cu, true
		}
	}
	return models.Customer{}, false
}

// ImportCustomers: hazır kayıtları mevcut koleksiyona ekler (dedup yok).
func (c *Container) ImportCustomers(customers []models.Customer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.customers = append(c.customers, customers...)
	return c.store.SaveCustomers(c.customers)
}

// --- Ürün komutları ---

func (c *Container) AddProduct(data models.Product) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addProductLocked(data)
}

func (c *Container) addProductLocked(data models.Product) (models.Product, error) {
	now := time.Now()
	data.ID = uuid.NewString()
	data.CreatedAt = now
	data.UpdatedAt = now

	c.products = append(c.products, data)
	return data, c.store.SaveProducts(c.products)
}

func (c *Container) UpdateProduct(product models.Product) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateProductLocked(product)
}

func (c *Container) updateProductLocked(product models.Product) (models.Product, error) {
	for i := range c.products {
		if c.products[i].ID == product.ID {
			product.CreatedAt = c.products[i].CreatedAt
			product.UpdatedAt = time.Now()
			c.products[i] = product
			return product, c.store.SaveProducts(c.products)
		}
	}
	return models.Product{}, ErrNotFound
}

func (c *Container) DeleteProduct(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return c.store.SaveProducts(c.products)
		}
	}
	return ErrNotFound
}

func (c *Container) GetProduct(id string) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findProduct(id)
}

func (c *Container) findProduct(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Container) ImportProducts(products []models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = append(c.products, products...)
	return c.store.SaveProducts(c.products)
}

var productCodeRe = regexp.MustCompile(`^ORM-(\d+)$`)

// BulkAddProducts: adları tek komutta ekler. Kodlar mevcut en büyük ORM-%04d
// kodundan devam eder; numara ve ekleme aynı kilit altında olduğundan eş
// zamanlı toplu eklemeler çakışan kod üretmez.
func (c *Container) BulkAddProducts(names []string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	nextNumber := 1
	for _, p := range c.products {
		if m := productCodeRe.FindStringSubmatch(p.Code); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= nextNumber {
				nextNumber = n + 1
			}
		}
	}

	added := 0
	for _, name := range names {
		if _, err := c.addProductLocked(models.Product{
			Name:     name,
			Code:     fmt.Sprintf("ORM-%04d", nextNumber),
			Category: "Genel",
		}); err != nil {
			return added, err
		}
		nextNumber++
		added++
	}
	return added, nil
}

// --- İşlem komutları ---

// AddTransaction: işlemi ekler ve ürün stoğunu tek stok rutini üzerinden
// günceller. given/sold stoğu düşürür, returned artırır. Ürün silinmişse
// stok adımı sessizce atlanır; işlem yine de kaydedilir.
func (c *Container) AddTransaction(data models.Transaction) (models.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data.ID = uuid.NewString()
	data.CreatedAt = time.Now()

	c.transactions = append(c.transactions, data)
	if err := c.store.SaveTransactions(c.transactions); err != nil {
		return data, err
	}

	if _, ok := c.findProduct(data.ProductID); ok {
		stockChange := -data.Quantity
		if data.Type == models.TransactionReturned {
			stockChange = data.Quantity
		}

		kind := models.MovementOut
		if stockChange > 0 {
			kind = models.MovementIn
		}

		customerName := ""
		if customer, ok := c.findCustomer(data.CustomerID); ok {
			customerName = customer.Name
		}

		if err := c.adjustStockLocked(data.ProductID, stockChange, kind, string(data.Type)+" - "+customerName); err != nil {
			return data, err
		}
	}

	return data, nil
}

// UpdateTransaction: yalnızca tip ve not değişebilir; miktar ve müşteri/ürün
// bağları oluşturulduktan sonra sabittir. Tip değişikliği stok deltasını
// yeniden çalıştırmaz (kaynak davranış, bkz. DESIGN.md).
func (c *Container) UpdateTransaction(id string, txType models.TransactionType, notes string) (models.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.transactions {
		if c.transactions[i].ID == id {
			c.transactions[i].Type = txType
			c.transactions[i].Notes = notes
			return c.transactions[i], c.store.SaveTransactions(c.transactions)
		}
	}
	return models.Transaction{}, ErrNotFound
}

func (c *Container) DeleteTransaction(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.transactions {
		if c.transactions[i].ID == id {
			c.transactions = append(c.transactions[:i], c.transactions[i+1:]...)
			return c.store.SaveTransactions(c.transactions)
		}
	}
	return ErrNotFound
}

// --- Stok kartı komutları ---

func (c *Container) AddStockItem(data models.StockItem) (models.StockItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	data.ID = uuid.NewString()
	data.CreatedAt = now
	data.UpdatedAt = now

	c.stockItems = append(c.stockItems, data)
	return data, c.store.SaveStockItems(c.stockItems)
}

func (c *Container) UpdateStockItem(item models.StockItem) (models.StockItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.stockItems {
		if c.stockItems[i].ID == item.ID {
			item.CreatedAt = c.stockItems[i].CreatedAt
			item.UpdatedAt = time.Now()
			c.stockItems[i] = item
			return item, c.store.SaveStockItems(c.stockItems)
		}
	}
	return models.StockItem{}, ErrNotFound
}

func (c *Container) DeleteStockItem(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.stockItems {
		if c.stockItems[i].ID == id {
			c.stockItems = append(c.stockItems[:i], c.stockItems[i+1:]...)
			return c.store.SaveStockItems(c.stockItems)
		}
	}
	return ErrNotFound
}

func (c *Container) GetStockItem(id string) (models.StockItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.stockItems {
		if s.ID == id {
			return s, true
		}
	}
	return models.StockItem{}, false
}

// --- Ayarlar ---

func (c *Container) Settings() models.AppSettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

func (c *Container) UpdateSettings(settings models.AppSettings) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.settings = settings
	return c.store.SaveSettings(c.settings)
}

// MarkBackupDone: başarılı yedek indirmesinden sonra lastBackup damgalanır.
func (c *Container) MarkBackupDone(at time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.settings.LastBackup = &at
	return c.store.SaveSettings(c.settings)
}
