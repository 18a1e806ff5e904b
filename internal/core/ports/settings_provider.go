package ports

import "github.com/AntonioJCosta/hsh/internal/core/domain/settings"

// SettingsProvider defines the interface for sourcing interpreter settings.
type SettingsProvider interface {
	// GetSettings loads settings, with defaults applied to unset fields.
	GetSettings() (settings.Settings, error)
}
