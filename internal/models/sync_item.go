package models

import "encoding/json"

type SyncAction string

const (
	SyncCreate SyncAction = "create"
	SyncUpdate SyncAction = "update"
	SyncDelete SyncAction = "delete"
)

type SyncEntity string

const (
	SyncEntityCustomer    SyncEntity = "customer"
	SyncEntityProduct     SyncEntity = "product"
	SyncEntityTransaction SyncEntity = "transaction"
	SyncEntityStockItem   SyncEntity = "stockItem"
)

// SyncItem: çevrimdışı değişiklik kuyruğu kaydı. Data, değişen kaydın
// o anki JSON hali (payload tipi entity'ye göre değişir).
type SyncItem struct {
	ID        string          `json:"id"`
	Type      SyncAction      `json:"type"`
	Entity    SyncEntity      `json:"entity"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // unix millis
}
