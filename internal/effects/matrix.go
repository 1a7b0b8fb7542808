package effects

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Archemasachika7/Algorythm-auth/internal/logger"
)

// Frame is one rendered tick of the matrix rain: a row-major glyph grid.
type Frame struct {
	Tick uint64   `json:"tick"`
	Rows []string `json:"rows"`
}

var glyphs = []rune("アイウエオカキクケコサシスセソタチツテトナニヌネノ0123456789")

// Engine generates matrix-rain frames on a fixed interval and fans them out
// to subscribers. It carries no state from the auth flow; the only coupling
// is lifecycle: started once the server is up, stopped on shutdown.
type Engine struct {
	width    int
	height   int
	interval time.Duration

	mu      sync.Mutex
	subs    map[int]chan Frame
	nextSub int
	drops   []int
	tick    uint64
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewEngine creates a matrix rain generator for a width x height glyph grid.
// Non-positive dimensions and intervals are clamped to usable minimums.
func NewEngine(width, height int, interval time.Duration) *Engine {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	e := &Engine{
		width:    width,
		height:   height,
		interval: interval,
		subs:     make(map[int]chan Frame),
		drops:    make([]int, width),
	}
	for i := range e.drops {
		e.drops[i] = rand.Intn(height)
	}
	return e
}

// Start launches the frame loop. It returns an error if already running.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return errors.New("effects engine already running")
	}
	e.running = true
	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	e.mu.Unlock()

	go e.run(ctx)
	return nil
}

// Stop halts the frame loop and closes all subscriber channels.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	close(e.stop)
	done := e.done
	e.mu.Unlock()

	<-done
}

// Subscribe registers a frame receiver. The returned func unsubscribes;
// the channel is closed when the engine stops or on unsubscribe.
func (e *Engine) Subscribe() (<-chan Frame, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextSub
	e.nextSub++
	ch := make(chan Frame, 4)
	e.subs[id] = ch

	return ch, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if sub, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(sub)
		}
	}
}

func (e *Engine) run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	logger.Log.Debugw("matrix effect started", "width", e.width, "height", e.height)
	for {
		select {
		case <-ticker.C:
			e.broadcast(e.step())
		case <-e.stop:
			e.teardown()
			return
		case <-ctx.Done():
			e.teardown()
			return
		}
	}
}

// step advances every column's drop and renders the grid.
func (e *Engine) step() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tick++
	for c := range e.drops {
		e.drops[c]++
		if e.drops[c] >= e.height && rand.Intn(4) == 0 {
			e.drops[c] = 0
		}
	}

	rows := make([]string, e.height)
	for r := 0; r < e.height; r++ {
		line := make([]rune, e.width)
		for c := 0; c < e.width; c++ {
			if e.drops[c] == r {
				line[c] = glyphs[rand.Intn(len(glyphs))]
			} else {
				line[c] = ' '
			}
		}
		rows[r] = string(line)
	}

	return Frame{Tick: e.tick, Rows: rows}
}

func (e *Engine) broadcast(f Frame) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ch := range e.subs {
		select {
		case ch <- f:
		default: // slow subscriber, skip the frame
		}
	}
}

func (e *Engine) teardown() {
	e.mu.Lock()
	for id, ch := range e.subs {
		delete(e.subs, id)
		close(ch)
	}
	e.running = false
	close(e.done)
	e.mu.Unlock()
	logger.Log.Debugw("matrix effect stopped")
}
