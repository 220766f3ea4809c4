package engine

import "github.com/AKAA-2025/Chess-AI-Engine/internal/board"

// Move ordering scores, highest searched first.
const (
	hashMoveScore  = 100000
	captureScore   = 50000
	killerScore1   = 40000
	killerScore2   = 39000
	historyCeiling = 30000
)

// mvvLva orders captures by victim value times ten minus attacker
// value, indexed [victim][attacker].
var mvvLva = [6][6]int{
	//       P   N   B   R   Q   K   (attacker)
	/* P */ {9, 7, 7, 5, 1, 0},
	/* N */ {31, 29, 29, 27, 23, 12},
	/* B */ {32, 30, 30, 28, 24, 13},
	/* R */ {49, 47, 47, 45, 41, 30},
	/* Q */ {89, 87, 87, 85, 81, 70},
	/* K */ {0, 0, 0, 0, 0, 0},
}

// scoreMove ranks a move for search order: the hash move first, then
// captures by MVV-LVA, then the two killers at this ply, then the
// butterfly history score.
func (s *Searcher) scoreMove(pos *board.Position, m board.Move, ply int, hashMove board.Move) int {
	if hashMove != board.NoMove && m == hashMove {
		return hashMoveScore
	}

	if m.IsCapture(pos) {
		attacker := pos.PieceAt(m.From()).Type()
		victim := board.Pawn
		if !m.IsEnPassant() {
			victim = pos.PieceAt(m.To()).Type()
		}
		if victim >= board.King || attacker > board.King {
			return captureScore
		}
		return captureScore + mvvLva[victim][attacker]*100
	}

	if m == s.killers[ply][0] {
		return killerScore1
	}
	if m == s.killers[ply][1] {
		return killerScore2
	}

	return s.history[m.From()][m.To()]
}

// scoreMoves fills the score slice for a move list.
func (s *Searcher) scoreMoves(pos *board.Position, moves *board.MoveList, ply int, hashMove board.Move) []int {
	scores := s.scoreBuf[ply][:moves.Len()]
	for i := 0; i < moves.Len(); i++ {
		scores[i] = s.scoreMove(pos, moves.Get(i), ply, hashMove)
	}
	return scores
}

// pickMove moves the best remaining move to position index so sorting
// happens lazily, one pick per move actually searched.
func pickMove(moves *board.MoveList, scores []int, index int) {
	best := index
	for j := index + 1; j < moves.Len(); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != index {
		moves.Swap(index, best)
		scores[index], scores[best] = scores[best], scores[index]
	}
}

// updateKillers shifts the killer slots at the given ply. Re-storing
// the current first killer is a no-op.
func (s *Searcher) updateKillers(m board.Move, ply int) {
	if ply >= MaxPly {
		return
	}
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// updateHistory bumps the butterfly table by depth squared, halving
// every entry when any of them saturates.
func (s *Searcher) updateHistory(m board.Move, depth int) {
	s.history[m.From()][m.To()] += depth * depth
	if s.history[m.From()][m.To()] > historyCeiling {
		for i := range s.history {
			for j := range s.history[i] {
				s.history[i][j] /= 2
			}
		}
	}
}
