package entity

import "encoding/json"

// SearchResult is the backing search service's answer. Result keeps the raw entity body.
type SearchResult struct {
	Type   string          `json:"type"` // transaction, block, address, batch or name
	Result json.RawMessage `json:"result"`
}
