package console

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

type fakeTimer struct {
	running bool
	elapsed int
}

func (t *fakeTimer) Start()       { t.running = true }
func (t *fakeTimer) Stop()        { t.running = false }
func (t *fakeTimer) Reset()       { t.running, t.elapsed = false, 0 }
func (t *fakeTimer) Elapsed() int { return t.elapsed }

type testSession struct {
	*Session
	out   *bytes.Buffer
	timer *fakeTimer
}

func newTestSession(t *testing.T, params mines.GameParams) *testSession {
	t.Helper()
	ts := &testSession{out: &bytes.Buffer{}, timer: &fakeTimer{}}
	s, err := NewSession(params, ts.out,
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithTimer(ts.timer),
	)
	require.NoError(t, err)
	ts.Session = s
	return ts
}

func TestNewSessionInvalid(t *testing.T) {
	t.Parallel()

	_, err := NewSession(mines.GameParams{Width: 3, Height: 3, MineCount: 9}, &bytes.Buffer{})
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

func TestExecuteOpen(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, mines.Beginner)
	require.NoError(t, s.Execute("o 4 4"))

	status := s.Game().Status()
	assert.Contains(t, []mines.Status{mines.Running, mines.Won}, status)
	assert.Positive(t, s.Game().Opened())
	assert.Contains(t, s.out.String(), mines.Beginner.String())
}

func TestExecuteFlag(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, mines.Beginner)
	require.NoError(t, s.Execute("f 0 0"))

	assert.Equal(t, 9, s.Game().FlagsRemaining())
	assert.Equal(t, mines.Ready, s.Game().Status())
	assert.True(t, strings.HasPrefix(s.out.String(), "009  ready  000  9x9(10)\nF "))

	s.out.Reset()
	require.NoError(t, s.Execute("f 0 0"))
	assert.Equal(t, 10, s.Game().FlagsRemaining())
	assert.True(t, strings.HasPrefix(s.out.String(), "010  ready  000  9x9(10)\n. "))
}

func TestExecuteChord(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, mines.Beginner)
	require.NoError(t, s.Execute("c 4 4"))
	assert.Equal(t, mines.Ready, s.Game().Status())
}

func TestExecuteErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		line string
		err  error
	}{
		{"o 9 0", ErrInvalidSquare},
		{"f -1 0", ErrInvalidSquare},
		{"c 0 9", ErrInvalidSquare},
		{"o a 0", ErrInvalidArgs},
		{"o 1", ErrInvalidArgs},
		{"boom", ErrUnknownCommand},
		{"n width=1&height=1&mine_count=1", mines.ErrInvalidConfiguration},
		{"q", ErrQuit},
	}

	s := newTestSession(t, mines.Beginner)
	for _, test := range testCases {
		s.out.Reset()
		assert.ErrorIs(t, s.Execute(test.line), test.err, test.line)
		assert.Empty(t, s.out.String(), test.line)
	}
	assert.Equal(t, mines.Ready, s.Game().Status())
}

func TestExecuteBlank(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, mines.Beginner)
	require.NoError(t, s.Execute("   "))
	assert.Empty(t, s.out.String())
}

func TestExecuteNewGame(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, mines.Beginner)
	first := s.Game()
	require.NoError(t, s.Execute("o 4 4"))
	s.timer.elapsed = 42

	require.NoError(t, s.Execute("n"))
	assert.NotEqual(t, first.ID(), s.Game().ID())
	assert.Equal(t, mines.Beginner, s.Game().Params())
	assert.Equal(t, mines.Ready, s.Game().Status())
	assert.False(t, s.timer.running)
	assert.Zero(t, s.Game().Elapsed(), "the clock is reset for the next game")
	assert.Contains(t, s.out.String(), "010  ready  000")

	require.NoError(t, s.Execute("n expert"))
	assert.Equal(t, mines.Expert, s.Game().Params())

	require.NoError(t, s.Execute("n width=6&height=4&mine_count=5"))
	assert.Equal(t, mines.GameParams{Width: 6, Height: 4, MineCount: 5}, s.Game().Params())

	require.NoError(t, s.Execute("n 6:4:5"))
	assert.Equal(t, mines.GameParams{Width: 6, Height: 4, MineCount: 5}, s.Game().Params())

	current := s.Game()
	assert.ErrorIs(t, s.Execute("n 100000:100000:1"), mines.ErrInvalidConfiguration)
	assert.Same(t, current, s.Game(), "a rejected setup keeps the game in play")

	// a bare n repeats the last setup
	require.NoError(t, s.Execute("n"))
	assert.Equal(t, mines.GameParams{Width: 6, Height: 4, MineCount: 5}, s.Game().Params())
}

func TestExecuteForfeit(t *testing.T) {
	t.Parallel()

	// 15 mines fill the ring around the clear 3x3 in the middle but one cell,
	// so opening the centre never wins
	s := newTestSession(t, mines.GameParams{Width: 5, Height: 5, MineCount: 15})

	require.NoError(t, s.Execute("r"))
	assert.Equal(t, mines.Ready, s.Game().Status(), "nothing to give up before the first move")
	assert.Zero(t, strings.Count(s.out.String(), "*"))

	require.NoError(t, s.Execute("o 2 2"))
	require.Equal(t, mines.Running, s.Game().Status())
	assert.Equal(t, 9, s.Game().Opened())

	s.out.Reset()
	require.NoError(t, s.Execute("r"))
	assert.Equal(t, mines.Lost, s.Game().Status())
	assert.False(t, s.timer.running)
	assert.Contains(t, s.out.String(), "game over")
	assert.Equal(t, 15, strings.Count(s.out.String(), "*"))

	s.out.Reset()
	require.NoError(t, s.Execute("o 0 0"))
	assert.Equal(t, mines.Lost, s.Game().Status())
}

func TestExecuteHelp(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, mines.Beginner)
	require.NoError(t, s.Execute("h"))
	assert.Equal(t, helpText, s.out.String())
}

func TestServe(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, mines.Beginner)
	lines := make(chan string, 3)
	lines <- "f 0 0\nf 0 1"
	lines <- "bogus"
	lines <- "q"

	err := s.Serve(context.Background(), lines)
	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, 8, s.Game().FlagsRemaining())
	assert.Contains(t, s.out.String(), `error: unknown command "bogus"`)
	assert.True(t, strings.HasPrefix(s.out.String(), "010  ready  000"))
}

func TestServeClosedInput(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, mines.Beginner)
	lines := make(chan string)
	close(lines)
	assert.NoError(t, s.Serve(context.Background(), lines))
}

func TestServeCanceled(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, mines.Beginner)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Serve(ctx, make(chan string)), context.Canceled)
}

func TestSessionClose(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, mines.Beginner)
	require.NoError(t, s.Execute("o 4 4"))
	require.NoError(t, s.Close())
	assert.False(t, s.timer.running)
}
