package engine

import "github.com/AKAA-2025/Chess-AI-Engine/internal/board"

// Piece-square tables in centipawns from White's perspective, index 0 =
// a1. Black lookups mirror the square vertically and subtract.

var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddlePST = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEndPST = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

var piecePST = [5]*[64]int{&pawnPST, &knightPST, &bishopPST, &rookPST, &queenPST}

// endgameMaterialThreshold switches the king table once the combined
// non-pawn, non-king material drops below it.
const endgameMaterialThreshold = 2720

// Evaluate returns a static score in centipawns from the side to
// move's point of view: positive is good for the mover.
func Evaluate(pos *board.Position) int {
	score := 0

	for pt := board.Pawn; pt <= board.Queen; pt++ {
		value := board.PieceValue[pt]
		table := piecePST[pt]

		for bb := pos.Pieces[board.White][pt]; bb != 0; {
			sq := bb.PopLSB()
			score += value + table[sq]
		}
		for bb := pos.Pieces[board.Black][pt]; bb != 0; {
			sq := bb.PopLSB()
			score -= value + table[sq.Mirror()]
		}
	}

	kingTable := &kingMiddlePST
	if nonPawnMaterial(pos) < endgameMaterialThreshold {
		kingTable = &kingEndPST
	}

	if wk := pos.KingSquare(board.White); wk != board.NoSquare {
		score += kingTable[wk]
	}
	if bk := pos.KingSquare(board.Black); bk != board.NoSquare {
		score -= kingTable[bk.Mirror()]
	}

	if pos.SideToMove == board.Black {
		return -score
	}
	return score
}

// nonPawnMaterial sums both sides' knight, bishop, rook, and queen
// material.
func nonPawnMaterial(pos *board.Position) int {
	total := 0
	for pt := board.Knight; pt <= board.Queen; pt++ {
		count := pos.Pieces[board.White][pt].PopCount() + pos.Pieces[board.Black][pt].PopCount()
		total += count * board.PieceValue[pt]
	}
	return total
}
