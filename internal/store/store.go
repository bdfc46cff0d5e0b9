package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kartela-backend/internal/config"
	"kartela-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Koleksiyon başına tek JSON dokümanı tutan sabit anahtarlar.
const (
	KeyCustomers      = "kartela_customers"
	KeyProducts       = "kartela_products"
	KeyTransactions   = "kartela_transactions"
	KeyStockMovements = "kartela_stock_movements"
	KeyStockItems     = "kartela_stock_items"
	KeySettings       = "kartela_settings"
	KeySyncQueue      = "ormen_sync_queue"
)

// Document: documents tablosu. Her koleksiyon tek satırda, JSON olarak durur.
// Store pasif bir aynadır; çalışma zamanındaki gerçek veri state container'da.
type Document struct {
	Key       string `gorm:"primaryKey;size:64"`
	Data      string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

func Open(cfg *config.Config) (*Store, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate hatası: %w", err)
	}

	return &Store{db: db}, nil
}

// New: hazır bir gorm bağlantısı üzerinden store oluşturur (testler için).
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// load: anahtarın JSON dokümanını out'a çözer. Kayıt yoksa out'a dokunmaz.
// Parse hatası okuma hatası sayılmaz; loglanıp varsayılan değer korunur.
func (s *Store) load(key string, out any) error {
	var doc Document
	if err := s.db.First(&doc, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("%s okunamadı: %w", key, err)
	}

	if err := json.Unmarshal([]byte(doc.Data), out); err != nil {
		logrus.WithField("key", key).Warnf("Bozuk doküman, varsayılan değer kullanılıyor: %v", err)
	}
	return nil
}

func (s *Store) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s serileştirilemedi: %w", key, err)
	}

	doc := Document{Key: key, Data: string(data), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("%s kaydedilemedi: %w", key, err)
	}
	return nil
}

func (s *Store) GetCustomers() ([]models.Customer, error) {
	out := []models.Customer{}
	err := s.load(KeyCustomers, &out)
	return out, err
}

func (s *Store) SaveCustomers(customers []models.Customer) error {
	return s.save(KeyCustomers, customers)
}

func (s *Store) GetProducts() ([]models.Product, error) {
	out := []models.Product{}
	err := s.load(KeyProducts, &out)
	return out, err
}

func (s *Store) SaveProducts(products []models.Product) error {
	return s.save(KeyProducts, products)
}

func (s *Store) GetTransactions() ([]models.Transaction, error) {
	out := []models.Transaction{}
	err := s.load(KeyTransactions, &out)
	return out, err
}

func (s *Store) SaveTransactions(transactions []models.Transaction) error {
	return s.save(KeyTransactions, transactions)
}

func (s *Store) GetStockMovements() ([]models.StockMovement, error) {
	out := []models.StockMovement{}
	err := s.load(KeyStockMovements, &out)
	return out, err
}

func (s *Store) SaveStockMovements(movements []models.StockMovement) error {
	return s.save(KeyStockMovements, movements)
}

func (s *Store) GetStockItems() ([]models.StockItem, error) {
	out := []models.StockItem{}
	err := s.load(KeyStockItems, &out)
	return out, err
}

func (s *Store) SaveStockItems(items []models.StockItem) error {
	return s.save(KeyStockItems, items)
}

func (s *Store) GetSettings() (models.AppSettings, error) {
	out := models.DefaultSettings()
	err := s.load(KeySettings, &out)
	return out, err
}

func (s *Store) SaveSettings(settings models.AppSettings) error {
	return s.save(KeySettings, settings)
}

func (s *Store) GetSyncItems() ([]models.SyncItem, error) {
	out := []models.SyncItem{}
	err := s.load(KeySyncQueue, &out)
	return out, err
}

func (s *Store) SaveSyncItems(items []models.SyncItem) error {
	return s.save(KeySyncQueue, items)
}

// CreateBackup: altı koleksiyonun o anki store halinden tek zarf üretir.
func (s *Store) CreateBackup() (models.BackupData, error) {
	customers, err := s.GetCustomers()
	if err != nil {
		return models.BackupData{}, err
	}
	products, err := s.GetProducts()
	if err != nil {
		return models.BackupData{}, err
	}
	transactions, err := s.GetTransactions()
	if err != nil {
		return models.BackupData{}, err
	}
	movements, err := s.GetStockMovements()
	if err != nil {
		return models.BackupData{}, err
	}
	items, err := s.GetStockItems()
	if err != nil {
		return models.BackupData{}, err
	}
	settings, err := s.GetSettings()
	if err != nil {
		return models.BackupData{}, err
	}

	return models.BackupData{
		Customers:      customers,
		Products:       products,
		Transactions:   transactions,
		StockMovements: movements,
		StockItems:     items,
		Settings:       &settings,
		ExportDate:     time.Now(),
		Version:        models.BackupVersion,
	}, nil
}

// RestoreFromBackup: zarfta bulunan alanları üstüne yazar, olmayanlara
// dokunmaz. Sürüm etiketi ve çapraz referanslar doğrulanmaz.
func (s *Store) RestoreFromBackup(backup models.BackupData) error {
	if backup.Customers != nil {
		if err := s.SaveCustomers(backup.Customers); err != nil {
			return err
		}
	}
	if backup.Products != nil {
		if err := s.SaveProducts(backup.Products); err != nil {
			return err
		}
	}
	if backup.Transactions != nil {
		if err := s.SaveTransactions(backup.Transactions); err != nil {
			return err
		}
	}
	if backup.StockMovements != nil {
		if err := s.SaveStockMovements(backup.StockMovements); err != nil {
			return err
		}
	}
	if backup.StockItems != nil {
		if err := s.SaveStockItems(backup.StockItems); err != nil {
			return err
		}
	}
	if backup.Settings != nil {
		if err := s.SaveSettings(*backup.Settings); err != nil {
			return err
		}
	}
	return nil
}

// ClearAllData: altı koleksiyon anahtarını siler. Sync kuyruğu ayrı yaşar.
func (s *Store) ClearAllData() error {
	keys := []string{
		KeyCustomers, KeyProducts, KeyTransactions,
		KeyStockMovements, KeyStockItems, KeySettings,
	}
	if err := s.db.Delete(&Document{}, "key IN ?", keys).Error; err != nil {
		return fmt.Errorf("veriler silinemedi: %w", err)
	}
	return nil
}
