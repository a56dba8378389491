package console

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	ErrQuit           = errors.New("quit")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid arguments")
)

// Maps known commands to number of arguments, -1 for optional
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"c": 2,
	"n": -1,
	"g": 0,
	"r": 0,
	"q": 0,
	"h": 0,
}

const helpText = `commands:
  o ROW COL   open a cell
  f ROW COL   toggle a flag
  c ROW COL   open the neighbours of a satisfied number
  n [PRESET]  new game: beginner, intermediate, expert
  n W:H:M     new custom game
  n width=W&height=H&mine_count=M
              same, spelled out
  g           print the board
  r           give up and show the mines
  q           quit
  h           show this help
`

type NewGameDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func decodeNewGame(src map[string][]string) (NewGameDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto NewGameDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto NewGameDTO) Params() mines.GameParams {
	return mines.GameParams{
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
	}
}

// parseNewGame resolves the argument of the n command: a preset name, a W:H:M
// seed or a width=..&height=..&mine_count=.. query. An empty argument repeats
// the current setup. Typed in sizes are capped at mines.MaxCustomSide.
func parseNewGame(arg string, current mines.GameParams) (mines.GameParams, error) {
	if arg == "" {
		return current, nil
	}
	if params, ok := mines.ParseDifficulty(arg); ok {
		return params, nil
	}
	if strings.Contains(arg, ":") {
		params, err := mines.ParseSeed(arg)
		if err != nil {
			if errors.Is(err, mines.ErrInvalidConfiguration) {
				return mines.GameParams{}, err
			}
			return mines.GameParams{}, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
		if err := params.ValidateCustom(); err != nil {
			return mines.GameParams{}, err
		}
		return *params, nil
	}
	if !strings.Contains(arg, "=") {
		return mines.GameParams{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidArgs, arg)
	}
	query, err := url.ParseQuery(arg)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	dto, err := decodeNewGame(query)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	params := dto.Params()
	if err := params.ValidateCustom(); err != nil {
		return mines.GameParams{}, err
	}
	return params, nil
}

func parsePoint(twoStrings []string) (p mines.Point, err error) {
	if p.Row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("%w: row must be an int", ErrInvalidArgs)
		return
	}
	if p.Col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("%w: column must be an int", ErrInvalidArgs)
		return
	}
	return
}

type command struct {
	name string
	args []string
}

func parseCommand(line string) (command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return command{}, ErrUnknownCommand
	}
	name := strings.ToLower(parts[0])
	nargs, ok := commandNargs[name]
	if !ok {
		return command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	args := parts[1:]
	if nargs >= 0 && nargs != len(args) || nargs < 0 && len(args) > 1 {
		return command{}, fmt.Errorf("%w: %s takes %d", ErrInvalidArgs, name, max(nargs, 1))
	}
	return command{name: name, args: args}, nil
}
