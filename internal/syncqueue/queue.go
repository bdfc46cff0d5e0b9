// Package syncqueue: çevrimdışı değişiklik kuyruğu. Kayıtlar sırayla ve
// sabit bir simüle gecikmeyle gönderilir; tam başarıda gönderilen kayıtlar
// kuyruktan düşer, tek bir kayıt bile başarısız olursa kuyruğun tamamı
// sonraki denemeye kalır.
package syncqueue

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"kartela-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrSyncInProgress = errors.New("senkronizasyon zaten devam ediyor")

// Storage: kuyruğun kalıcı hali; store'daki kendi anahtarının altında durur.
type Storage interface {
	GetSyncItems() ([]models.SyncItem, error)
	SaveSyncItems([]models.SyncItem) error
}

// Sender: kuyruk kayıtlarını karşıya taşıyan uç. Gerçek bir API entegre
// edilene kadar LogSender kullanılır.
type Sender interface {
	Send(item models.SyncItem) error
}

// LogSender: her kaydı sabit gecikmeyle loglayan simüle gönderici.
type LogSender struct {
	Delay time.Duration
}

func (s LogSender) Send(item models.SyncItem) error {
	time.Sleep(s.Delay)
	logrus.WithFields(logrus.Fields{
		"entity": item.Entity,
		"type":   item.Type,
		"id":     item.ID,
	}).Info("Senkronize ediliyor")
	return nil
}

type Queue struct {
	mu      sync.Mutex
	storage Storage
	sender  Sender
	items   []models.SyncItem
	syncing bool
}

func New(storage Storage, sender Sender) *Queue {
	q := &Queue{storage: storage, sender: sender}

	items, err := storage.GetSyncItems()
	if err != nil {
		logrus.Warnf("Sync kuyruğu yüklenemedi, boş kuyrukla devam ediliyor: %v", err)
		items = []models.SyncItem{}
	}
	q.items = items
	return q
}

// Enqueue: değişikliği kuyruğa ekler. Kuyruk kalıcılaştırılamazsa değişiklik
// bellekte kalır ve sadece loglanır; ana kayıt akışını engellemez.
func (q *Queue) Enqueue(action models.SyncAction, entity models.SyncEntity, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		logrus.Warnf("Sync kaydı serileştirilemedi: %v", err)
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, models.SyncItem{
		ID:        uuid.NewString(),
		Type:      action,
		Entity:    entity,
		Data:      payload,
		Timestamp: time.Now().UnixMilli(),
	})
	if err := q.storage.SaveSyncItems(q.items); err != nil {
		logrus.Warnf("Sync kuyruğu kaydedilemedi: %v", err)
	}
}

// Drain: kuyruktaki kayıtları ekleme sırasıyla gönderir. Hata halinde kuyruk
// olduğu gibi bırakılır; zaten gönderilmiş kayıtlar ayrıca işaretlenmez, bir
// sonraki deneme hepsini yeniden gönderir. Başarıda yalnızca gönderilen
// kayıtlar düşer; gönderim sürerken eklenen yeni kayıtlar kuyrukta kalır.
func (q *Queue) Drain() (int, error) {
	q.mu.Lock()
	if q.syncing {
		q.mu.Unlock()
		return 0, ErrSyncInProgress
	}
	q.syncing = true
	pending := append([]models.SyncItem(nil), q.items...)
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.syncing = false
		q.mu.Unlock()
	}()

	if len(pending) == 0 {
		return 0, nil
	}

	for _, item := range pending {
		if err := q.sender.Send(item); err != nil {
			return 0, fmt.Errorf("senkronizasyon başarısız: %w", err)
		}
	}

	// Enqueue yalnızca sona ekler ve ikinci bir drain syncing bayrağıyla
	// engellidir; kuyruğun ilk len(pending) kaydı gönderilenlerle aynıdır.
	q.mu.Lock()
	q.items = append([]models.SyncItem{}, q.items[len(pending):]...)
	err := q.storage.SaveSyncItems(q.items)
	q.mu.Unlock()
	if err != nil {
		logrus.Warnf("Sync kuyruğu temizlenemedi: %v", err)
	}

	logrus.Infof("%d değişiklik senkronize edildi", len(pending))
	return len(pending), nil
}

func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) Items() []models.SyncItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]models.SyncItem(nil), q.items...)
}

// Clear: kuyruğu göndermeden boşaltır.
func (q *Queue) Clear() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = []models.SyncItem{}
	return q.storage.SaveSyncItems(q.items)
}
