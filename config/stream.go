package config

// StreamCfg shapes the rate-limited value stream of the randtool CLI.
type StreamCfg struct {
	// Rate is the number of values emitted per second.
	Rate int `yaml:"rate"`

	// Count is how many values to emit before stopping; 0 means
	// unbounded.
	Count int `yaml:"count"`

	// Format selects the emitted value kind.
	// Supported values:
	//   - "u64":   raw 64-bit draws
	//   - "float": uniform doubles in [0,1)
	Format string `yaml:"format"`
}

func (cfg *StreamCfg) Enabled() bool {
	return cfg != nil
}
