package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

var (
	Beginner     = GameParams{Width: 9, Height: 9, MineCount: 10}
	Intermediate = GameParams{Width: 16, Height: 16, MineCount: 40}
	Expert       = GameParams{Width: 30, Height: 16, MineCount: 99}
)

// ParseDifficulty maps a preset name to its parameters.
func ParseDifficulty(name string) (GameParams, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "beginner", "easy":
		return Beginner, true
	case "intermediate", "medium":
		return Intermediate, true
	case "expert", "hard":
		return Expert, true
	}
	return GameParams{}, false
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Width * p.Height
}

// Validate reports a *ConfigError unless the board has at least one cell and
// at least one cell is left free of mines.
func (p GameParams) Validate() error {
	if p.Width < 1 || p.Height < 1 || p.MineCount < 0 || p.MineCount >= p.Cells() {
		return &ConfigError{Width: p.Width, Height: p.Height, MineCount: p.MineCount}
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

// ParseSeed reads the W:H:M form written by [GameParams.Seed]. Anything
// but three integers is rejected, and so are parameters Validate refuses.
func ParseSeed(seed string) (*GameParams, error) {
	parts := strings.Split(strings.TrimSpace(seed), ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid game params seed %q: want W:H:M", seed)
	}
	var values [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid game params seed %q: %w", seed, err)
		}
		values[i] = v
	}
	p := &GameParams{Width: values[0], Height: values[1], MineCount: values[2]}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MaxCustomSide bounds the width and height of boards a player types in.
const MaxCustomSide = 256

// ValidateCustom is [GameParams.Validate] with both sides capped at
// MaxCustomSide.
func (p GameParams) ValidateCustom() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Width > MaxCustomSide || p.Height > MaxCustomSide {
		return fmt.Errorf(
			"%w: %dx%d board is larger than %dx%d",
			ErrInvalidConfiguration, p.Width, p.Height, MaxCustomSide, MaxCustomSide,
		)
	}
	return nil
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func (p GameParams) PointInBounds(row, col int) bool {
	return 0 <= row && row < p.Height && 0 <= col && col < p.Width
}
