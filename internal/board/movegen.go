package board

// GenerateLegalMoves generates all legal moves for the side to move.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := NewMoveList()
	p.generateMoves(ml, false)
	return p.FilterLegal(ml)
}

// GeneratePseudoLegalMoves generates all pseudo-legal moves; some may
// leave the mover's king in check.
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := NewMoveList()
	p.generateMoves(ml, false)
	return ml
}

// GenerateLegalCaptures generates legal captures and promotions, for
// quiescence search.
func (p *Position) GenerateLegalCaptures() *MoveList {
	ml := NewMoveList()
	p.generateMoves(ml, true)
	return p.FilterLegal(ml)
}

// generateMoves enumerates pseudo-legal moves in a fixed order: pawns,
// knights, bishops, rooks, queens, king, castling; within each piece
// kind by from-square ascending. Knight, bishop, rook, queen, and king
// targets follow in to-square ascending order; a pawn's targets follow
// the fixed order of generatePawnMoves, which is not to-square order.
// The order is deterministic so tied scores reproduce the same
// principal variation.
func (p *Position) generateMoves(ml *MoveList, capturesOnly bool) {
	us := p.SideToMove

	p.generatePawnMoves(ml, us, capturesOnly)
	p.generateLeaperMoves(ml, us, Knight, capturesOnly)
	p.generateSliderMoves(ml, us, Bishop, capturesOnly)
	p.generateSliderMoves(ml, us, Rook, capturesOnly)
	p.generateSliderMoves(ml, us, Queen, capturesOnly)
	p.generateLeaperMoves(ml, us, King, capturesOnly)
	if !capturesOnly {
		p.generateCastlingMoves(ml, us)
	}
}

// generatePawnMoves walks each pawn from-square and emits its targets
// in this order: diagonal captures (ascending), en passant, the single
// push, the double push. The targets are therefore not sorted by
// destination square. In captures-only mode the quiet push survives
// only as a promotion, which is as forcing as a capture.
func (p *Position) generatePawnMoves(ml *MoveList, us Color, capturesOnly bool) {
	enemies := p.Occupied[us.Other()]
	empty := ^p.AllOccupied

	var forward, promoRank, startRank int
	if us == White {
		forward = 8
		promoRank = 7
		startRank = 1
	} else {
		forward = -8
		promoRank = 0
		startRank = 6
	}

	for pawns := p.Pieces[us][Pawn]; pawns != 0; {
		from := pawns.PopLSB()

		addPawnTarget := func(to Square, kind MoveKind) {
			if to.Rank() == promoRank {
				ml.Add(NewPromotion(from, to, Queen))
				ml.Add(NewPromotion(from, to, Rook))
				ml.Add(NewPromotion(from, to, Bishop))
				ml.Add(NewPromotion(from, to, Knight))
			} else {
				ml.Add(NewMove(from, to, kind))
			}
		}

		captures := PawnAttacks(from, us)

		for caps := captures & enemies; caps != 0; {
			addPawnTarget(caps.PopLSB(), Capture)
		}

		if p.EnPassant != NoSquare && captures.IsSet(p.EnPassant) {
			ml.Add(NewMove(from, p.EnPassant, EnPassantCapture))
		}

		push := Square(int(from) + forward)
		if empty.IsSet(push) {
			if !capturesOnly {
				addPawnTarget(push, Quiet)
			} else if push.Rank() == promoRank {
				addPawnTarget(push, Quiet)
			}

			if !capturesOnly && from.Rank() == startRank {
				double := Square(int(from) + 2*forward)
				if empty.IsSet(double) {
					ml.Add(NewMove(from, double, Quiet))
				}
			}
		}
	}
}

// generateLeaperMoves emits knight or king moves from the attack
// tables.
func (p *Position) generateLeaperMoves(ml *MoveList, us Color, pt PieceType, capturesOnly bool) {
	enemies := p.Occupied[us.Other()]

	for pieces := p.Pieces[us][pt]; pieces != 0; {
		from := pieces.PopLSB()

		var attacks Bitboard
		if pt == Knight {
			attacks = KnightAttacks(from)
		} else {
			attacks = KingAttacks(from)
		}
		attacks &= ^p.Occupied[us]
		if capturesOnly {
			attacks &= enemies
		}

		for attacks != 0 {
			to := attacks.PopLSB()
			if enemies.IsSet(to) {
				ml.Add(NewMove(from, to, Capture))
			} else {
				ml.Add(NewMove(from, to, Quiet))
			}
		}
	}
}

// generateSliderMoves emits bishop, rook, or queen moves from the
// on-demand ray attacks.
func (p *Position) generateSliderMoves(ml *MoveList, us Color, pt PieceType, capturesOnly bool) {
	enemies := p.Occupied[us.Other()]
	occupied := p.AllOccupied

	for pieces := p.Pieces[us][pt]; pieces != 0; {
		from := pieces.PopLSB()

		var attacks Bitboard
		switch pt {
		case Bishop:
			attacks = BishopAttacks(from, occupied)
		case Rook:
			attacks = RookAttacks(from, occupied)
		default:
			attacks = QueenAttacks(from, occupied)
		}
		attacks &= ^p.Occupied[us]
		if capturesOnly {
			attacks &= enemies
		}

		for attacks != 0 {
			to := attacks.PopLSB()
			if enemies.IsSet(to) {
				ml.Add(NewMove(from, to, Capture))
			} else {
				ml.Add(NewMove(from, to, Quiet))
			}
		}
	}
}

// generateCastlingMoves emits castling when the right is held, the
// squares between king and rook are empty, and the king's start,
// pass-through, and destination squares are all unattacked.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()

	if us == White {
		if p.CastlingRights&WhiteKingSideCastle != 0 &&
			p.AllOccupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(F1, them) && !p.IsSquareAttacked(G1, them) {
			ml.Add(NewMove(E1, G1, Castle))
		}
		if p.CastlingRights&WhiteQueenSideCastle != 0 &&
			p.AllOccupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!p.IsSquareAttacked(E1, them) && !p.IsSquareAttacked(D1, them) && !p.IsSquareAttacked(C1, them) {
			ml.Add(NewMove(E1, C1, Castle))
		}
	} else {
		if p.CastlingRights&BlackKingSideCastle != 0 &&
			p.AllOccupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
			!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(F8, them) && !p.IsSquareAttacked(G8, them) {
			ml.Add(NewMove(E8, G8, Castle))
		}
		if p.CastlingRights&BlackQueenSideCastle != 0 &&
			p.AllOccupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
			!p.IsSquareAttacked(E8, them) && !p.IsSquareAttacked(D8, them) && !p.IsSquareAttacked(C8, them) {
			ml.Add(NewMove(E8, C8, Castle))
		}
	}
}

// FilterLegal keeps the moves that do not leave the mover's king in
// check, tested by making each move and inspecting the resulting
// position.
func (p *Position) FilterLegal(ml *MoveList) *MoveList {
	result := NewMoveList()
	us := p.SideToMove

	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if !p.MakeMove(m) {
			continue
		}
		ksq := p.KingSquare(us)
		legal := !p.IsSquareAttacked(ksq, us.Other())
		p.UnmakeMove()
		if legal {
			result.Add(m)
		}
	}

	return result
}

// HasLegalMoves returns true if the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	ml := p.GeneratePseudoLegalMoves()
	us := p.SideToMove

	for i := 0; i < ml.Len(); i++ {
		if !p.MakeMove(ml.Get(i)) {
			continue
		}
		ksq := p.KingSquare(us)
		legal := !p.IsSquareAttacked(ksq, us.Other())
		p.UnmakeMove()
		if legal {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the side to move is mated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move has no legal move but is
// not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
