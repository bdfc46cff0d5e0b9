package state

import "kartela-backend/internal/models"

// CreateBackup: zarf store aynasından üretilir; bellekteki durumla store her
// değişiklikte eşitlendiği için ikisi aynı kabul edilir.
func (c *Container) CreateBackup() (models.BackupData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.CreateBackup()
}

// RestoreBackup: zarfı store'a yazar, sonra bellekteki koleksiyonları
// store'dan yeniden yükler. Yazma öncesi parse edilemeyen zarf buraya hiç
// gelmez, mevcut veri bozulmaz.
func (c *Container) RestoreBackup(backup models.BackupData) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.RestoreFromBackup(backup); err != nil {
		return err
	}
	return c.reloadLocked()
}

// ClearAll: store'daki altı anahtarı siler ve belleği varsayılanlara döndürür.
func (c *Container) ClearAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.ClearAllData(); err != nil {
		return err
	}
	c.customers = []models.Customer{}
	c.products = []models.Product{}
	c.transactions = []models.Transaction{}
	c.stockMovements = []models.StockMovement{}
	c.stockItems = []models.StockItem{}
	c.settings = models.DefaultSettings()
	return nil
}

func (c *Container) reloadLocked() error {
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
