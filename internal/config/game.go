package config

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Game struct {
	Difficulty string
	Params     mines.GameParams
	seed       *[2]uint64
}

func lookupInt(key string) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return 0, fmt.Errorf("no %s env variable set", key)
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

func loadCustomParams() (params mines.GameParams, err error) {
	if params.Width, err = lookupInt("MINES_WIDTH"); err != nil {
		return
	}
	if params.Height, err = lookupInt("MINES_HEIGHT"); err != nil {
		return
	}
	if params.MineCount, err = lookupInt("MINES_MINE_COUNT"); err != nil {
		return
	}
	return params, params.ValidateCustom()
}

func parseSeed(s string) (*[2]uint64, error) {
	hiStr, loStr, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		loStr = "0"
	}
	hi, err := strconv.ParseUint(hiStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MINES_SEED: %w", err)
	}
	lo, err := strconv.ParseUint(loStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MINES_SEED: %w", err)
	}
	return &[2]uint64{hi, lo}, nil
}

// NewGame reads the starting game setup. MINES_DIFFICULTY defaults to
// beginner; "custom" takes MINES_WIDTH, MINES_HEIGHT and MINES_MINE_COUNT,
// each side at most mines.MaxCustomSide.
func NewGame() (*Game, error) {
	difficulty, ok := os.LookupEnv("MINES_DIFFICULTY")
	if !ok || strings.TrimSpace(difficulty) == "" {
		difficulty = "beginner"
	}
	difficulty = strings.ToLower(strings.TrimSpace(difficulty))

	cfg := &Game{Difficulty: difficulty}

	if difficulty == "custom" {
		params, err := loadCustomParams()
		if err != nil {
			return nil, fmt.Errorf("unable to load custom game params: %w", err)
		}
		cfg.Params = params
	} else {
		params, ok := mines.ParseDifficulty(difficulty)
		if !ok {
			return nil, fmt.Errorf("unknown MINES_DIFFICULTY %q", difficulty)
		}
		cfg.Params = params
	}

	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := parseSeed(seedStr)
		if err != nil {
			return nil, err
		}
		cfg.seed = seed
	}

	return cfg, nil
}

func (g Game) Seeded() bool {
	return g.seed != nil
}

// Rand returns a generator seeded from MINES_SEED, or a random one.
func (g Game) Rand() *rand.Rand {
	if g.seed != nil {
		return rand.New(rand.NewPCG(g.seed[0], g.seed[1]))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
