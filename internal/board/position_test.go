package board

import "testing"

// checkOccupancy verifies that the cached occupancy bitboards are the
// OR-union of the piece bitboards.
func checkOccupancy(t *testing.T, p *Position) {
	t.Helper()

	var white, black Bitboard
	for pt := Pawn; pt <= King; pt++ {
		white |= p.Pieces[White][pt]
		black |= p.Pieces[Black][pt]
	}

	if p.Occupied[White] != white {
		t.Errorf("white occupancy out of sync: got %x, want %x", uint64(p.Occupied[White]), uint64(white))
	}
	if p.Occupied[Black] != black {
		t.Errorf("black occupancy out of sync: got %x, want %x", uint64(p.Occupied[Black]), uint64(black))
	}
	if p.AllOccupied != white|black {
		t.Errorf("all occupancy out of sync: got %x, want %x", uint64(p.AllOccupied), uint64(white|black))
	}
}

func samePosition(a, b *Position) bool {
	return a.Pieces == b.Pieces &&
		a.SideToMove == b.SideToMove &&
		a.CastlingRights == b.CastlingRights &&
		a.EnPassant == b.EnPassant &&
		a.HalfMoveClock == b.HalfMoveClock &&
		a.FullMoveNumber == b.FullMoveNumber
}

// TestMakeUnmakeIdentity walks the legal move tree to a bounded depth
// and verifies that unmake restores the exact prior state and that the
// occupancy invariant holds in every visited position.
func TestMakeUnmakeIdentity(t *testing.T) {
	positions := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
	}

	for _, fen := range positions {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		walkMakeUnmake(t, pos, 3)
	}
}

func walkMakeUnmake(t *testing.T, p *Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}

	checkOccupancy(t, p)
	before := p.Copy()
	moves := p.GenerateLegalMoves()

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !p.MakeMove(m) {
			t.Fatalf("MakeMove rejected generated move %v in %s", m, before.ToFEN())
		}
		checkOccupancy(t, p)
		walkMakeUnmake(t, p, depth-1)
		p.UnmakeMove()

		if !samePosition(p, before) {
			t.Fatalf("make/unmake of %v did not restore %s (got %s)", m, before.ToFEN(), p.ToFEN())
		}
	}
}

// TestMakeMoveRejectsMalformed checks the safety net for moves the
// generator never produces.
func TestMakeMoveRejectsMalformed(t *testing.T) {
	pos := NewPosition()
	before := pos.Copy()

	// Empty source square.
	if pos.MakeMove(NewMove(E4, E5, Quiet)) {
		t.Error("MakeMove accepted a move from an empty square")
	}
	// Opponent's piece at the source.
	if pos.MakeMove(NewMove(E7, E5, Quiet)) {
		t.Error("MakeMove accepted a move of the opponent's piece")
	}

	if !samePosition(pos, before) {
		t.Error("rejected moves must leave the position unchanged")
	}
	if pos.UndoDepth() != 0 {
		t.Errorf("rejected moves must not grow the undo stack, depth=%d", pos.UndoDepth())
	}
}

// TestUnmakeOnEmptyStack verifies the documented no-op.
func TestUnmakeOnEmptyStack(t *testing.T) {
	pos := NewPosition()
	before := pos.Copy()
	pos.UnmakeMove()
	if !samePosition(pos, before) {
		t.Error("UnmakeMove on an empty stack must be a no-op")
	}
}

// TestCastlingRightsBySquareTouch verifies that rook moves and rook
// captures clear rights and that unmake restores them only through the
// undo record.
func TestCastlingRightsBySquareTouch(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	// Rook leaves h1: White loses O-O only.
	if !pos.MakeMove(NewMove(H1, H8, Capture)) {
		t.Fatal("rook capture h1xh8 rejected")
	}
	if pos.CastlingRights.CanCastle(White, true) {
		t.Error("White kingside right should be gone after the h1 rook moved")
	}
	if !pos.CastlingRights.CanCastle(White, false) {
		t.Error("White queenside right should remain")
	}
	// h8 was captured: Black loses O-O too.
	if pos.CastlingRights.CanCastle(Black, true) {
		t.Error("Black kingside right should be gone after h8 was captured")
	}

	pos.UnmakeMove()
	if pos.CastlingRights != AllCastling {
		t.Errorf("unmake must restore castling rights, got %s", pos.CastlingRights)
	}
}

// TestEnPassantTarget checks that the target appears after a double
// push, sits behind the pawn, and is cleared by the next move.
func TestEnPassantTarget(t *testing.T) {
	pos := NewPosition()

	pos.MakeMove(NewMove(E2, E4, Quiet))
	if pos.EnPassant != E3 {
		t.Errorf("en passant target after e2e4 = %s, want e3", pos.EnPassant)
	}

	pos.MakeMove(NewMove(G8, F6, Quiet))
	if pos.EnPassant != NoSquare {
		t.Errorf("en passant target should clear after a non-push, got %s", pos.EnPassant)
	}
}

// TestEnPassantCaptureRemovesPawn verifies the captured-pawn square
// differs from the destination.
func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatal(err)
	}

	if !pos.MakeMove(NewMove(E5, F6, EnPassantCapture)) {
		t.Fatal("en passant capture rejected")
	}
	if pos.Pieces[Black][Pawn].IsSet(F5) {
		t.Error("captured pawn should be removed from f5")
	}
	if !pos.Pieces[White][Pawn].IsSet(F6) {
		t.Error("capturing pawn should stand on f6")
	}

	pos.UnmakeMove()
	if !pos.Pieces[Black][Pawn].IsSet(F5) {
		t.Error("unmake should restore the captured pawn on f5")
	}
}

// TestHalfMoveClock checks the reset-on-pawn-or-capture rule.
func TestHalfMoveClock(t *testing.T) {
	pos := NewPosition()

	pos.MakeMove(NewMove(G1, F3, Quiet))
	if pos.HalfMoveClock != 1 {
		t.Errorf("halfmove clock after a knight move = %d, want 1", pos.HalfMoveClock)
	}

	pos.MakeMove(NewMove(E7, E5, Quiet))
	if pos.HalfMoveClock != 0 {
		t.Errorf("halfmove clock after a pawn move = %d, want 0", pos.HalfMoveClock)
	}
}

// TestPromotionMakeUnmake checks that the pawn is replaced by the
// promotion piece and restored by unmake.
func TestPromotionMakeUnmake(t *testing.T) {
	pos, err := ParseFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if !pos.MakeMove(NewPromotion(A7, A8, Queen)) {
		t.Fatal("promotion rejected")
	}
	if !pos.Pieces[White][Queen].IsSet(A8) {
		t.Error("promoted queen missing from a8")
	}
	if pos.Pieces[White][Pawn] != 0 {
		t.Error("pawn should be gone after promotion")
	}

	pos.UnmakeMove()
	if !pos.Pieces[White][Pawn].IsSet(A7) {
		t.Error("unmake should restore the pawn on a7")
	}
	if pos.Pieces[White][Queen] != 0 {
		t.Error("unmake should remove the promoted queen")
	}
}

// TestSnapshotRestore exercises the whole-state save used by tests and
// tools.
func TestSnapshotRestore(t *testing.T) {
	pos := NewPosition()
	snap := pos.TakeSnapshot()

	pos.MakeMove(NewMove(E2, E4, Quiet))
	pos.MakeMove(NewMove(E7, E5, Quiet))

	pos.RestoreSnapshot(snap)
	fresh := NewPosition()
	if !samePosition(pos, fresh) {
		t.Error("RestoreSnapshot did not reproduce the saved state")
	}
	if pos.UndoDepth() != 0 {
		t.Error("RestoreSnapshot must clear the undo stack")
	}
}
