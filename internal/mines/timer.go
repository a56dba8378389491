package mines

import (
	"sync"
	"time"
)

// Timer counts whole seconds of play. The game starts it on the first reveal
// and stops it on every terminal transition; Stop must not return while a tick
// can still land. Reset stops the clock and zeroes it so the next game can
// reuse it.
type Timer interface {
	Start()
	Stop()
	Reset()
	Elapsed() int
}

// Stopwatch is a [Timer] driven by a background ticker.
type Stopwatch struct {
	mu       sync.Mutex
	interval time.Duration
	elapsed  int
	gen      uint64
	stop     chan struct{}
	done     chan struct{}
}

func NewStopwatch() *Stopwatch {
	return newStopwatch(time.Second)
}

func newStopwatch(interval time.Duration) *Stopwatch {
	return &Stopwatch{interval: interval}
}

// Start is a no-op while the stopwatch is already running.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		return
	}
	s.gen++
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.gen, s.stop, s.done)
}

func (s *Stopwatch) run(gen uint64, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick(gen)
		}
	}
}

func (s *Stopwatch) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a tick racing with Stop belongs to a finished run
	if gen == s.gen && s.stop != nil {
		s.elapsed++
	}
}

// Stop blocks until the ticker goroutine has exited. Calling it on a stopped
// stopwatch does nothing.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.gen++
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (s *Stopwatch) Reset() {
	s.Stop()

	s.mu.Lock()
	s.elapsed = 0
	s.mu.Unlock()
}

func (s *Stopwatch) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

func (s *Stopwatch) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}
