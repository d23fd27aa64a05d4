package audio

// Config holds audio settings resolved by the config layer
type Config struct {
	Enabled    bool
	Volume     float64 // Master volume 0.0-1.0
	SampleRate int
}

// DefaultConfig returns audio enabled at 48kHz, half volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 48000,
	}
}

// Normalized clamps volume and fills a missing sample rate
func (c Config) Normalized() Config {
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultConfig().SampleRate
	}
	return c
}
