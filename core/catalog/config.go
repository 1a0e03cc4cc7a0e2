package catalog

// Config holds configuration for the data catalog.
type Config struct {
	// Mode selects the loading strategy (static, network).
	Mode string `mapstructure:"mode" default:"static"`
	// Origin overrides server.base_url as the network mode fetch origin.
	Origin string `mapstructure:"origin" default:""`
	// Source selects where /data/json assets are served from (embedded, storage).
	Source string `mapstructure:"source" default:"embedded"`
	// TimeoutSeconds bounds connection setup and response headers of dataset fetches.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	ModeStatic  = "static"
	ModeNetwork = "network"

	SourceEmbedded = "embedded"
	SourceStorage  = "storage"
)

// IsValidMode checks if the configured mode is supported.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeStatic, ModeNetwork:
		return true
	default:
		return false
	}
}

// IsValidSource checks if the configured asset source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceEmbedded, SourceStorage:
		return true
	default:
		return false
	}
}
