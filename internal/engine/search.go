package engine

import (
	"sync/atomic"
	"time"

	"github.com/AKAA-2025/Chess-AI-Engine/internal/board"
)

// Search constants. Mate scores sit just below Infinity so that
// "mate in N" always beats any static evaluation, and MateThreshold
// separates the two ranges.
const (
	Infinity      = 100000
	MateScore     = 99000
	MateThreshold = 98000
	MaxPly        = 64
)

// nodeCheckMask throttles the clock and node-limit checks to every
// 1024 nodes.
const nodeCheckMask = 1023

// Stats carries the per-search counters the controller may read for
// progress reports. Writes happen only on the search goroutine.
type Stats struct {
	Nodes    uint64
	QNodes   uint64
	Depth    int
	SelDepth int
}

// Searcher runs a single alpha-beta search over one position. The
// killer, history, and PV tables belong to it and are cleared at the
// start of every search.
type Searcher struct {
	pos *board.Position

	stopFlag atomic.Bool
	stats    Stats

	startTime     time.Time
	allocatedTime time.Duration // zero means no wall-clock limit
	maxNodes      uint64        // zero means no node limit

	killers  [MaxPly][2]board.Move
	history  [64][64]int
	pvTable  [MaxPly][MaxPly]board.Move
	pvLength [MaxPly]int

	scoreBuf [MaxPly][256]int
}

// NewSearcher creates a searcher bound to the given position.
func NewSearcher(pos *board.Position) *Searcher {
	return &Searcher{pos: pos}
}

// Stop requests cooperative cancellation. Safe to call from another
// goroutine; the search polls the flag and unwinds.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// Stopped reports whether the search has been cancelled.
func (s *Searcher) Stopped() bool {
	return s.stopFlag.Load()
}

// Stats returns a copy of the current counters.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// prepare resets all hot state for a new search.
func (s *Searcher) prepare(allocated time.Duration, maxNodes uint64) {
	s.stopFlag.Store(false)
	s.stats = Stats{}
	s.startTime = time.Now()
	s.allocatedTime = allocated
	s.maxNodes = maxNodes

	s.killers = [MaxPly][2]board.Move{}
	s.history = [64][64]int{}
	s.pvLength = [MaxPly]int{}
}

// checkLimits polls the wall clock and node budget every 1024 nodes.
// A hit sets the stop flag; a timeout is not distinguished from an
// external stop.
func (s *Searcher) checkLimits() {
	if s.stats.Nodes&nodeCheckMask != 0 {
		return
	}
	if s.allocatedTime > 0 && time.Since(s.startTime) >= s.allocatedTime {
		s.stopFlag.Store(true)
	}
	if s.maxNodes > 0 && s.stats.Nodes >= s.maxNodes {
		s.stopFlag.Store(true)
	}
}

// PV returns the principal variation recorded at the root.
func (s *Searcher) PV() []board.Move {
	pv := make([]board.Move, s.pvLength[0])
	copy(pv, s.pvTable[0][:s.pvLength[0]])
	return pv
}

// storePV records the move at ply and pulls up the child's variation.
func (s *Searcher) storePV(m board.Move, ply int) {
	s.pvTable[ply][ply] = m
	for i := ply + 1; i < s.pvLength[ply+1]; i++ {
		s.pvTable[ply][i] = s.pvTable[ply+1][i]
	}
	s.pvLength[ply] = s.pvLength[ply+1]
}

// alphaBeta is the negamax search. Scores are from the point of view
// of the side to move at this node; callers negate. Returns a
// meaningless 0 once the stop flag is set; the driver discards such
// results.
func (s *Searcher) alphaBeta(depth, alpha, beta, ply int, isPV bool) int {
	s.stats.Nodes++
	s.checkLimits()
	if s.Stopped() {
		return 0
	}

	if ply > s.stats.SelDepth {
		s.stats.SelDepth = ply
	}
	s.pvLength[ply] = ply

	if depth <= 0 {
		return s.quiescence(alpha, beta, ply)
	}

	inCheck := s.pos.InCheck()
	if inCheck && ply+depth < MaxPly-1 {
		depth++
	}

	moves := s.pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return 0
	}

	var hashMove board.Move
	if isPV && ply < s.pvLength[0] {
		hashMove = s.pvTable[0][ply]
	}
	scores := s.scoreMoves(s.pos, moves, ply, hashMove)

	best := -Infinity

	for i := 0; i < moves.Len(); i++ {
		pickMove(moves, scores, i)
		m := moves.Get(i)

		isCapture := m.IsCapture(s.pos)
		s.pos.MakeMove(m)

		var score int
		if i == 0 {
			score = -s.alphaBeta(depth-1, -beta, -alpha, ply+1, isPV)
		} else {
			score = -s.alphaBeta(depth-1, -alpha-1, -alpha, ply+1, false)
			if score > alpha && score < beta && !s.Stopped() {
				score = -s.alphaBeta(depth-1, -beta, -alpha, ply+1, isPV)
			}
		}

		s.pos.UnmakeMove()

		if s.Stopped() {
			return 0
		}

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
			s.storePV(m, ply)
		}
		if score >= beta {
			if !isCapture {
				s.updateKillers(m, ply)
				s.updateHistory(m, depth)
			}
			return beta
		}
	}

	return best
}

// quiescence extends the search through captures until the position is
// quiet, bounded only by the ply ceiling.
func (s *Searcher) quiescence(alpha, beta, ply int) int {
	s.stats.Nodes++
	s.stats.QNodes++
	s.checkLimits()
	if s.Stopped() {
		return 0
	}

	if ply > s.stats.SelDepth {
		s.stats.SelDepth = ply
	}

	standPat := Evaluate(s.pos)
	if ply >= MaxPly-1 {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := s.pos.GenerateLegalCaptures()
	scores := s.scoreMoves(s.pos, moves, ply, board.NoMove)

	for i := 0; i < moves.Len(); i++ {
		pickMove(moves, scores, i)
		m := moves.Get(i)

		s.pos.MakeMove(m)
		score := -s.quiescence(-beta, -alpha, ply+1)
		s.pos.UnmakeMove()

		if s.Stopped() {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// IsMateScore reports whether a score encodes a forced mate.
func IsMateScore(score int) bool {
	if score < 0 {
		score = -score
	}
	return score >= MateThreshold
}

// MateDistance converts a mate score into full moves, positive when
// the side to move mates.
func MateDistance(score int) int {
	if score > 0 {
		return (MateScore - score + 1) / 2
	}
	return -(MateScore + score) / 2
}
