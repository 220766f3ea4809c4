package engine

import (
	"time"

	"github.com/AKAA-2025/Chess-AI-Engine/internal/board"
)

// Limits carries the constraints of a single "go" command.
type Limits struct {
	Depth     int              // maximum depth, 0 = no limit
	Nodes     uint64           // maximum nodes, 0 = no limit
	MoveTime  time.Duration    // fixed time per move, overrides the clock
	Infinite  bool             // search until stopped
	Time      [2]time.Duration // wtime, btime
	Inc       [2]time.Duration // winc, binc
	MovesToGo int
}

// defaultMovesToGo is assumed when the clock gives no move count.
const defaultMovesToGo = 30

// minSearchTime keeps the allocation from rounding down to nothing on
// a nearly exhausted clock.
const minSearchTime = 10 * time.Millisecond

// AllocateTime turns the limits into a wall-clock budget for the side
// to move. A fixed movetime overrides everything; infinite disables
// the clock; otherwise the mover gets remaining/movesToGo plus three
// quarters of the increment, capped at a quarter of the remaining
// time.
func AllocateTime(limits Limits, us board.Color) time.Duration {
	if limits.MoveTime > 0 {
		return limits.MoveTime
	}
	if limits.Infinite {
		return 0
	}

	remaining := limits.Time[us]
	if remaining <= 0 {
		return 0
	}
	inc := limits.Inc[us]

	movesToGo := limits.MovesToGo
	if movesToGo <= 0 {
		movesToGo = defaultMovesToGo
	}

	alloc := remaining/time.Duration(movesToGo) + inc*3/4
	if hardCap := remaining / 4; alloc > hardCap {
		alloc = hardCap
	}
	if alloc < minSearchTime {
		alloc = minSearchTime
	}

	return alloc
}
