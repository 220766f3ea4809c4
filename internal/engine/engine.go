package engine

import (
	"time"

	"github.com/AKAA-2025/Chess-AI-Engine/internal/board"
)

// SearchInfo is one iteration's report for the protocol layer.
type SearchInfo struct {
	Depth     int
	SelDepth  int
	Score     int
	Mate      int // full moves to mate; valid when MateFound
	MateFound bool
	Nodes     uint64
	Time      time.Duration
	PV        []board.Move
}

// Result is the outcome of a completed search.
type Result struct {
	BestMove board.Move
	Score    int
	Depth    int
}

// Engine drives iterative deepening over a Searcher.
type Engine struct {
	searcher *Searcher

	// OnInfo, when set, receives a report after every completed
	// iteration, and after a depth-1 iteration cut short by a stop.
	OnInfo func(SearchInfo)
}

// New creates an engine.
func New() *Engine {
	return &Engine{}
}

// Stop cancels the running search, if any.
func (e *Engine) Stop() {
	if s := e.searcher; s != nil {
		s.Stop()
	}
}

// Stats exposes the running search's counters, zero when idle.
func (e *Engine) Stats() Stats {
	if s := e.searcher; s != nil {
		return s.Stats()
	}
	return Stats{}
}

// Search runs iterative deepening on a copy-free position until the
// depth, node, or time limit trips or Stop is called. The position's
// undo stack is balanced on return.
func (e *Engine) Search(pos *board.Position, limits Limits) Result {
	allocated := AllocateTime(limits, pos.SideToMove)

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	s := NewSearcher(pos)
	e.searcher = s
	s.prepare(allocated, limits.Nodes)

	result := Result{BestMove: board.NoMove, Score: -Infinity}

	// Safety fallback: answer with the first legal move even when
	// stopped before depth 1 completes.
	rootMoves := pos.GenerateLegalMoves()
	if rootMoves.Len() == 0 {
		return Result{BestMove: board.NoMove, Score: 0}
	}
	result.BestMove = rootMoves.Get(0)

	for depth := 1; depth <= maxDepth; depth++ {
		score := s.alphaBeta(depth, -Infinity, Infinity, 0, true)

		// A partial iteration is discarded; the previous depth's
		// answer stands.
		if s.Stopped() && depth > 1 {
			break
		}

		pv := s.PV()
		if len(pv) > 0 {
			result.BestMove = pv[0]
			result.Score = score
			result.Depth = depth
		}
		s.stats.Depth = depth

		if e.OnInfo != nil {
			info := SearchInfo{
				Depth:    depth,
				SelDepth: s.stats.SelDepth,
				Score:    score,
				Nodes:    s.stats.Nodes,
				Time:     time.Since(s.startTime),
				PV:       pv,
			}
			if IsMateScore(score) {
				info.MateFound = true
				info.Mate = MateDistance(score)
			}
			e.OnInfo(info)
		}

		if s.Stopped() {
			break
		}

		// A found mate will not improve.
		if IsMateScore(score) {
			break
		}

		// The next iteration typically costs more than what is left
		// once half the budget is gone.
		if allocated > 0 && time.Since(s.startTime) > allocated/2 {
			break
		}
	}

	return result
}
