package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PerformanceEntry is one point of a member's monthly performance series.
type PerformanceEntry struct {
	Month string `json:"month"`
	Score int    `json:"score"`
}

// PerformanceHistory is an ordered monthly score series. It is persisted as
// a single JSON document column, so the store stays a plain key/value row
// per member. Month labels are not unique; entries keep insertion order.
type PerformanceHistory []PerformanceEntry

// Value implements driver.Valuer, serializing the series to JSON.
func (h PerformanceHistory) Value() (driver.Value, error) {
	if h == nil {
		h = PerformanceHistory{}
	}
	data, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("marshal performance history: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner, deserializing the JSON document column.
func (h *PerformanceHistory) Scan(value interface{}) error {
	if value == nil {
		*h = PerformanceHistory{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported performance history column type %T", value)
	}

	if len(data) == 0 {
		*h = PerformanceHistory{}
		return nil
	}

	if err := json.Unmarshal(data, h); err != nil {
		return fmt.Errorf("unmarshal performance history: %w", err)
	}
	return nil
}
