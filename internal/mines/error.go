package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError describes game parameters a board cannot be built from.
type ConfigError struct {
	Width, Height, MineCount int
}

// [ConfigError] implements [error]
func (e *ConfigError) Error() string {
	switch {
	case e.Width < 1:
		return fmt.Sprintf("invalid configuration: width must be positive (width = %d)", e.Width)
	case e.Height < 1:
		return fmt.Sprintf("invalid configuration: height must be positive (height = %d)", e.Height)
	case e.MineCount < 0:
		return fmt.Sprintf("invalid configuration: negative mine count (mine_count = %d)", e.MineCount)
	default:
		return fmt.Sprintf(
			"invalid configuration: not enough room for %d mines on a %dx%d board",
			e.MineCount, e.Width, e.Height,
		)
	}
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
