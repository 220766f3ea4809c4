package board

import "testing"

// TestLegalEqualsFilteredPseudoLegal cross-checks the legality filter:
// the legal list must equal the pseudo-legal list minus the moves that
// leave the mover's king in check.
func TestLegalEqualsFilteredPseudoLegal(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		pseudo := pos.GeneratePseudoLegalMoves()
		legal := pos.GenerateLegalMoves()
		us := pos.SideToMove

		var want []Move
		for i := 0; i < pseudo.Len(); i++ {
			m := pseudo.Get(i)
			if !pos.MakeMove(m) {
				t.Fatalf("generator produced unmakeable move %v in %s", m, fen)
			}
			inCheck := pos.IsSquareAttacked(pos.KingSquare(us), us.Other())
			pos.UnmakeMove()
			if !inCheck {
				want = append(want, m)
			}
		}

		if legal.Len() != len(want) {
			t.Errorf("%s: legal count = %d, filtered pseudo-legal = %d", fen, legal.Len(), len(want))
			continue
		}
		for i, m := range want {
			if legal.Get(i) != m {
				t.Errorf("%s: legal[%d] = %v, want %v", fen, i, legal.Get(i), m)
			}
		}
	}
}

// TestInCheckAgreesWithKingCapture verifies the in-check predicate
// against "the opponent could capture the king on the next ply".
func TestInCheckAgreesWithKingCapture(t *testing.T) {
	fens := []string{
		StartFEN,
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", // Qh4+ vs bare king path
		"7k/6R1/6K1/8/8/8/8/8 b - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		ksq := pos.KingSquare(pos.SideToMove)

		// Hand the move to the opponent and see whether any pseudo-legal
		// reply lands on our king square.
		probe := pos.Copy()
		probe.SideToMove = probe.SideToMove.Other()
		probe.EnPassant = NoSquare
		replies := probe.GeneratePseudoLegalMoves()

		canCapture := false
		for i := 0; i < replies.Len(); i++ {
			if replies.Get(i).To() == ksq {
				canCapture = true
				break
			}
		}

		if pos.InCheck() != canCapture {
			t.Errorf("%s: InCheck()=%v but king-capture reachability=%v", fen, pos.InCheck(), canCapture)
		}
	}
}

// TestPromotionGeneratesFourMoves checks the queen, rook, bishop,
// knight quadruple for both push and capture promotions.
func TestPromotionGeneratesFourMoves(t *testing.T) {
	// White pawn on b7, black rook on a8: one push and one capture
	// promotion square.
	pos, err := ParseFEN("r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := pos.GenerateLegalMoves()

	byTarget := map[Square][]PieceType{}
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.IsPromotion() {
			byTarget[m.To()] = append(byTarget[m.To()], m.PromotionPiece())
		}
	}

	wantOrder := []PieceType{Queen, Rook, Bishop, Knight}
	for _, target := range []Square{A8, B8} {
		got := byTarget[target]
		if len(got) != 4 {
			t.Fatalf("promotions to %s: got %d moves, want 4", target, len(got))
		}
		for i, pt := range wantOrder {
			if got[i] != pt {
				t.Errorf("promotions to %s: slot %d = %v, want %v", target, i, got[i], pt)
			}
		}
	}
}

// TestStalematePosition verifies the S6 scenario: no legal moves, not
// in check.
func TestStalematePosition(t *testing.T) {
	pos, err := ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := pos.GenerateLegalMoves()
	if moves.Len() != 0 {
		t.Errorf("stalemate position has %d legal moves, want 0", moves.Len())
	}
	if pos.InCheck() {
		t.Error("stalemate position must not be check")
	}
	if !pos.IsStalemate() {
		t.Error("IsStalemate() should be true")
	}
	if pos.IsCheckmate() {
		t.Error("IsCheckmate() should be false")
	}
}

// TestCastlingGeneration checks that castling appears only when the
// path is empty and unattacked.
func TestCastlingGeneration(t *testing.T) {
	tests := []struct {
		fen       string
		kingSide  bool
		queenSide bool
	}{
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		// Black rook on e8 gives check: no castling out of check.
		{"4r3/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, false},
		// Black rook on f8 attacks the pass-through square f1.
		{"5r2/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		// Blocked queenside.
		{"8/8/8/8/8/8/8/RN2K2R w KQ - 0 1", true, false},
	}

	for _, tc := range tests {
		pos, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
		}

		moves := pos.GenerateLegalMoves()
		gotKing := moves.Contains(NewMove(E1, G1, Castle))
		gotQueen := moves.Contains(NewMove(E1, C1, Castle))

		if gotKing != tc.kingSide {
			t.Errorf("%s: kingside castle generated=%v, want %v", tc.fen, gotKing, tc.kingSide)
		}
		if gotQueen != tc.queenSide {
			t.Errorf("%s: queenside castle generated=%v, want %v", tc.fen, gotQueen, tc.queenSide)
		}
	}
}

// TestCaptureGeneration verifies captures-only mode against the full
// list.
func TestCaptureGeneration(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatal(err)
	}

	captures := pos.GenerateLegalCaptures()
	all := pos.GenerateLegalMoves()

	for i := 0; i < captures.Len(); i++ {
		m := captures.Get(i)
		if !m.IsCapture(pos) && !m.IsPromotion() {
			t.Errorf("captures-only list contains quiet move %v", m)
		}
		if !all.Contains(m) {
			t.Errorf("capture %v missing from the full legal list", m)
		}
	}

	for i := 0; i < all.Len(); i++ {
		m := all.Get(i)
		if m.IsCapture(pos) && !captures.Contains(m) {
			t.Errorf("capture %v missing from the captures-only list", m)
		}
	}
}

// TestSANRendering spot-checks the notation contract: captures carry
// an 'x', castling is O-O/O-O-O, promotions end in =Q style suffixes.
func TestSANRendering(t *testing.T) {
	pos, err := ParseFEN("r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	san := NewPromotion(B7, A8, Queen).ToSAN(pos)
	if san != "bxa8=Q+" && san != "bxa8=Q" && san != "bxa8=Q#" {
		t.Errorf("capture promotion SAN = %q, want bxa8=Q with optional check suffix", san)
	}

	castlePos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := NewMove(E1, G1, Castle).ToSAN(castlePos); got != "O-O" {
		t.Errorf("kingside castle SAN = %q, want O-O", got)
	}
	if got := NewMove(E1, C1, Castle).ToSAN(castlePos); got != "O-O-O" {
		t.Errorf("queenside castle SAN = %q, want O-O-O", got)
	}
}
