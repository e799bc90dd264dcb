package domain

import (
	"encoding/json"
	"time"
)

// HistoryRecord is the persisted trace of one calculator run.
type HistoryRecord struct {
	ID         string          `json:"id"`
	Calculator string          `json:"calculator"`
	Input      json.RawMessage `json:"input"`
	Result     json.RawMessage `json:"result,omitempty"`
	Status     string          `json:"status"`
	Reason     string          `json:"reason,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
