package driven

// ConfigStore provides persistent key/value configuration.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns the empty string for missing keys or wrong types.
	GetString(key string) string

	// GetStringSlice retrieves a string slice configuration value.
	GetStringSlice(key string) []string

	// Set stores a configuration value and persists it.
	Set(key string, value any) error

	// Load reads configuration from the backing store.
	Load() error
}
