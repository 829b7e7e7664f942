package config

// Config represents the entire user configuration file.
type Config struct {
	Version int    `yaml:"version"`
	Entry   *Entry `yaml:"entry,omitempty"`
	Sim     *Sim   `yaml:"sim,omitempty"`
	// LogLevel mirrors the PINPAD_LOG_LEVEL environment variable; the
	// env var wins when both are set. Empty means silent.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Entry holds PIN-entry front-end preferences.
type Entry struct {
	// Prompt is the header text shown over the PIN line.
	Prompt string `yaml:"prompt"`
	// LongPressMS is the hold duration in milliseconds after which the
	// middle button emits a long-press.
	LongPressMS int `yaml:"long_press_ms"`
}

// Sim holds simulator server preferences.
type Sim struct {
	// ListenAddr is the host:port the WebSocket server binds to.
	ListenAddr string `yaml:"listen_addr"`
	// Announce enables mDNS advertisement of the simulator.
	Announce bool `yaml:"announce"`
}

// Default values for a fresh configuration.
const (
	DefaultPrompt      = "Enter PIN"
	DefaultLongPressMS = 1000
	DefaultListenAddr  = "127.0.0.1:9350"
)

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Entry: &Entry{
			Prompt:      DefaultPrompt,
			LongPressMS: DefaultLongPressMS,
		},
		Sim: &Sim{
			ListenAddr: DefaultListenAddr,
			Announce:   true,
		},
	}
}
