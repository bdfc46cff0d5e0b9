package state

import (
	"time"

	"kartela-backend/internal/models"

	"github.com/google/uuid"
)

// AdjustStock: hem manuel stok düzeltmelerinin hem işlem kaynaklı stok
// değişikliklerinin geçtiği tek nokta. "in" mutlak miktarı ekler, "out"
// düşer, "adjustment" stoğu doğrudan verilen değere çeker. Sonuç hiçbir
// zaman sıfırın altına inmez ve her çağrı tam bir hareket kaydı ekler.
func (c *Container) AdjustStock(productID string, quantity int, kind models.MovementType, reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.adjustStockLocked(productID, quantity, kind, reason)
}

func (c *Container) adjustStockLocked(productID string, quantity int, kind models.MovementType, reason string) error {
	product, ok := c.findProduct(productID)
	if !ok {
		// Ürün silinmiş olabilir; stok adımı sessizce atlanır.
		return nil
	}

	newQuantity := product.StockQuantity
	switch kind {
	case models.MovementIn:
		newQuantity += abs(quantity)
	case models.MovementOut:
		newQuantity -= abs(quantity)
	default: // adjustment: delta değil, doğrudan yeni değer
		newQuantity = quantity
	}
	if newQuantity < 0 {
		newQuantity = 0
	}

	product.StockQuantity = newQuantity
	if _, err := c.updateProductLocked(product); err != nil {
		return err
	}

	movement := models.StockMovement{
		ID:        uuid.NewString(),
		ProductID: productID,
		Type:      kind,
		Quantity:  abs(quantity),
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	c.stockMovements = append(c.stockMovements, movement)
	return c.store.SaveStockMovements(c.stockMovements)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
