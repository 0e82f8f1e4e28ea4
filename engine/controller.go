package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JPricey/santorini-ai/common"
	"github.com/JPricey/santorini-ai/gods"
)

// ComputeRequest asks the controller to search position for up to
// duration (zero meaning unbounded, stopped only by an explicit Stop).
type ComputeRequest struct {
	State    *gods.GameState
	Duration time.Duration // 0 means unbounded
}

// Controller is the background worker owning one Searcher lifetime,
// grounded on the reference engine's channel-driven worker
// (pkg/engine/engine.go) and on original_source/src/engine.rs's
// Compute/End message pair. PV updates are delivered on Updates.
type Controller struct {
	searcher *Searcher
	maxDepth int

	compute chan ComputeRequest
	stopCh  chan struct{}
	quit    chan struct{}

	Updates chan PVInfo

	stopFlag atomic.Bool
	group    errgroup.Group

	mu       sync.Mutex
	lastBest common.Move
}

func NewController(searcher *Searcher, maxDepth int) *Controller {
	c := &Controller{
		searcher: searcher,
		maxDepth: maxDepth,
		compute:  make(chan ComputeRequest, 1),
		stopCh:   make(chan struct{}, 1),
		quit:     make(chan struct{}),
		Updates:  make(chan PVInfo, 16),
	}
	c.group.Go(c.run)
	return c
}

// Compute supersedes any in-flight search: it cancels and drains the
// current one before starting the new one, per spec section 5's
// ordering guarantee.
func (c *Controller) Compute(req ComputeRequest) {
	c.Stop()
	select {
	case c.compute <- req:
	case <-c.quit:
	}
}

// Stop sets the cancellation flag; the running search (if any) returns
// its best-so-far move. A final stop_flag PV is emitted only when the
// search sees the flag during a depth's search; one seen between depths
// ends the search without it (see Searcher.Search).
func (c *Controller) Stop() {
	c.stopFlag.Store(true)
}

// End shuts the controller down, waiting for its worker goroutine to
// exit via the errgroup. The worker loop always returns nil, so End
// returns nil; a panic inside a search is not recovered here.
func (c *Controller) End() error {
	close(c.quit)
	return c.group.Wait()
}

func (c *Controller) BestMove() common.Move {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastBest
}

func (c *Controller) run() error {
	for {
		select {
		case req := <-c.compute:
			c.runOne(req)
		case <-c.quit:
			return nil
		}
	}
}

func (c *Controller) runOne(req ComputeRequest) {
	c.stopFlag.Store(false)

	var term Terminator = NewAtomicTerminator(&c.stopFlag)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if req.Duration > 0 {
		term = OrTerminator{A: term, B: NewDeadlineTerminator(req.Duration)}
		go func() {
			t := time.NewTimer(req.Duration)
			defer t.Stop()
			select {
			case <-t.C:
				c.stopFlag.Store(true)
			case <-ctx.Done():
			}
		}()
	}

	best := c.searcher.Search(req.State, c.maxDepth, term, func(pv PVInfo) {
		c.mu.Lock()
		c.lastBest = pv.Move
		c.mu.Unlock()
		select {
		case c.Updates <- pv:
		case <-c.quit:
		}
	})
	c.mu.Lock()
	c.lastBest = best
	c.mu.Unlock()
}

// ValidateTerminalPosition reports the degenerate "already won" case
// from spec section 7: set_position on a terminal state yields a
// best_move with a no_moves action rather than starting a search.
func ValidateTerminalPosition(state *gods.GameState) (won bool, winner common.Player) {
	w, ok := state.Board.GetWinner()
	return ok, w
}
