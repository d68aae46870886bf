package model

import "fmt"

// Config holds the hyperparameters of a model.
type Config struct {
	Size      int     // embedding dimension
	Window    int     // context window radius
	MinCount  int     // words seen at most this often are dropped
	Alpha     float32 // initial learning rate
	MinAlpha  float32 // learning rate floor
	BatchSize int     // sentences per job
	Seed      uint64  // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		Size:      100,
		Window:    5,
		MinCount:  5,
		Alpha:     0.025,
		MinAlpha:  0.0001,
		BatchSize: 800,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("model: size must be positive, got %d", c.Size)
	case c.Window <= 0:
		return fmt.Errorf("model: window must be positive, got %d", c.Window)
	case c.BatchSize <= 0:
		return fmt.Errorf("model: batch size must be positive, got %d", c.BatchSize)
	case c.Alpha < 0 || c.MinAlpha < 0:
		return fmt.Errorf("model: negative learning rate %g/%g", c.Alpha, c.MinAlpha)
	}
	return nil
}
