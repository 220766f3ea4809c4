package board

import "strings"

// ToSAN renders the move in Standard Algebraic Notation against the
// given position. The string is for logs and diagnostics; nothing in
// the engine parses it.
func (m Move) ToSAN(pos *Position) string {
	if m == NoMove {
		return "-"
	}

	from := m.From()
	to := m.To()
	piece := pos.PieceAt(from)

	if piece == NoPiece {
		return m.String()
	}

	if m.IsCastle() {
		if to > from {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder
	pt := piece.Type()

	if pt != Pawn {
		sb.WriteByte("PNBRQK"[pt])
		sb.WriteString(disambiguation(pos, m, pt))
	}

	if m.IsCapture(pos) {
		if pt == Pawn {
			sb.WriteByte('a' + byte(from.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte("PNBRQK"[m.PromotionPiece()])
	}

	// Check and mate suffixes, probed on a copy.
	probe := pos.Copy()
	if probe.MakeMove(m) {
		if probe.IsCheckmate() {
			sb.WriteByte('#')
		} else if probe.InCheck() {
			sb.WriteByte('+')
		}
	}

	return sb.String()
}

// disambiguation returns the file and/or rank prefix needed when
// another piece of the same type can reach the same destination.
func disambiguation(pos *Position, m Move, pt PieceType) string {
	from := m.From()
	to := m.To()
	us := pos.SideToMove

	var sameFile, sameRank, any bool
	pieces := pos.Pieces[us][pt]

	legal := pos.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		other := legal.Get(i)
		if other.To() != to || other.From() == from {
			continue
		}
		if !pieces.IsSet(other.From()) {
			continue
		}
		any = true
		if other.From().File() == from.File() {
			sameFile = true
		}
		if other.From().Rank() == from.Rank() {
			sameRank = true
		}
	}

	if !any {
		return ""
	}

	switch {
	case !sameFile:
		return string(byte('a' + from.File()))
	case !sameRank:
		return string(byte('1' + from.Rank()))
	default:
		return from.String()
	}
}
