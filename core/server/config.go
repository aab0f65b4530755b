package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Mode selects the runtime mode (development, production). Development
	// enables the tree cache fast path on refresh.
	Mode string `mapstructure:"mode" default:"production"`
	// RefreshIntervalSeconds triggers a periodic tree refresh when > 0.
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds" default:"0"`
}

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// IsValidMode checks if the configured mode is valid.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeDevelopment, ModeProduction:
		return true
	default:
		return false
	}
}

// IsDevelopment reports whether the server runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Mode == ModeDevelopment
}
