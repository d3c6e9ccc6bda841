package store

import (
	"encoding/json"
	"time"
)

// Result is one extracted record as persisted. Payload keeps the record's
// canonical JSON shape untouched; result_type plus source_id identify it
// across runs, so a re-crawl updates in place.
type Result struct {
	ID         int64           `json:"id" db:"id"`
	ResultType string          `json:"result_type" db:"result_type"`
	SourceID   string          `json:"source_id" db:"source_id"`
	Payload    json.RawMessage `json:"payload" db:"payload"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}
