package config

import (
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Config lendpool config
type Config struct {
	App    App       `json:"app"`
	DB     db.Config `json:"db"`
	Worker Worker    `json:"worker"`
	// Admins identities allowed to set the price
	Admins []string `json:"admins"`
}

// App app config
type App struct {
	// AssetID the sole supported asset
	AssetID string `json:"asset_id"`
	Symbol  string `json:"symbol"`
	// PriceEndPoint optional external price feed; empty disables pricesync
	PriceEndPoint string `json:"price_end_point"`
}

// Worker worker intervals
type Worker struct {
	AuditInterval     time.Duration `json:"audit_interval"`
	PriceSyncInterval time.Duration `json:"price_sync_interval"`
}

// IsAdmin check if the user is admin
func (c *Config) IsAdmin(userID string) bool {
	for _, a := range c.Admins {
		if a == userID {
			return true
		}
	}

	return false
}
