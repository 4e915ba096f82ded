package entity

import "time"

// NameInfo is a name-service record.
type NameInfo struct {
	Name          string `json:"name"`
	Owner         string `json:"owner"`
	Resolver      string `json:"resolver"`
	ExpiresAt     int64  `json:"expiresAt"` // unix seconds
	IsPrimary     bool   `json:"isPrimary"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	PhoneVerified bool   `json:"phoneVerified"`
}

// IsExpired reports whether the registration lapsed before now.
func (n NameInfo) IsExpired(now time.Time) bool {
	return n.ExpiresAt > 0 && now.Unix() >= n.ExpiresAt
}
