package repository

import (
	"github.com/diillson/sales-analytics-go/internal/shared/types"
)

// ConfigRepository defines the interface for configuration file loading.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
