package engine

import (
	"time"

	"github.com/JPricey/santorini-ai/common"
)

// Trigger identifies why a PVInfo was emitted, per spec section 4.H/6.2.
type Trigger string

const (
	TriggerSaved       Trigger = "saved"
	TriggerStopFlag    Trigger = "stop_flag"
	TriggerImprovement Trigger = "improvement"
	TriggerEndOfLine   Trigger = "end_of_line"
)

// PVInfo is one reported principal-variation update.
type PVInfo struct {
	Move    common.Move
	Score   common.Heuristic
	Depth   int
	Nodes   int64
	Elapsed time.Duration
	Trigger Trigger
}

// search tuning constants, exposed so self-play tuning can adjust them
// without touching search.go's control flow (spec section 9 open
// question 3 — these are seeded from the teacher's chess constants and
// explicitly unvalidated for Santorini's branching factor).
const (
	aspirationInitialDelta = 25
	nullMoveMinDepth       = 3
	nullMoveReduction      = 2
	reverseFutilityMaxDepth = 6
	reverseFutilityMargin   = 80 // per ply, multiplied by depth
	lmrMinDepth             = 3
	lmrMinMoveIndex         = 3

	maxPly = 64
)

const (
	mateScore       = common.Heuristic(29_000)
	mateScoreBuffer = common.Heuristic(9_000)
)

func isMateScore(h common.Heuristic) bool {
	if h < 0 {
		h = -h
	}
	return h > mateScoreBuffer
}
