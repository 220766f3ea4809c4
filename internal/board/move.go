package board

import "fmt"

// MoveKind classifies a move.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	EnPassantCapture
	Castle
	Promotion
)

// Move encodes a chess move in 32 bits:
// bits 0-5:   from square
// bits 6-11:  to square
// bits 12-13: promotion piece (0=Knight, 1=Bishop, 2=Rook, 3=Queen)
// bits 14-16: move kind
type Move uint32

// NoMove is the invalid/null move.
const NoMove Move = 0

// NewMove creates a quiet or capturing move.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(from) | Move(to)<<6 | Move(kind)<<14
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promo-Knight)<<12 | Move(Promotion)<<14
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Kind returns the move kind.
func (m Move) Kind() MoveKind {
	return MoveKind((m >> 14) & 7)
}

// PromotionPiece returns the promotion piece type. Only meaningful when
// Kind() is Promotion.
func (m Move) PromotionPiece() PieceType {
	return PieceType((m>>12)&3) + Knight
}

// IsPromotion returns true for promotion moves.
func (m Move) IsPromotion() bool {
	return m.Kind() == Promotion
}

// IsCastle returns true for castling moves.
func (m Move) IsCastle() bool {
	return m.Kind() == Castle
}

// IsEnPassant returns true for en passant captures.
func (m Move) IsEnPassant() bool {
	return m.Kind() == EnPassantCapture
}

// IsCapture returns true if the move takes a piece in the given
// position. Promotion captures are detected from the destination square.
func (m Move) IsCapture(pos *Position) bool {
	if m.Kind() == EnPassantCapture {
		return true
	}
	return !pos.IsEmpty(m.To())
}

// String returns the UCI format of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		promoChars := []byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[m.PromotionPiece()-Knight])
	}

	return s
}

// ParseMove parses a UCI move string against the given position,
// classifying castling and en passant from the board.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}

	pt := piece.Type()

	if pt == King && abs(int(to)-int(from)) == 2 {
		return NewMove(from, to, Castle), nil
	}

	if pt == Pawn && to == pos.EnPassant {
		return NewMove(from, to, EnPassantCapture), nil
	}

	if pos.IsEmpty(to) {
		return NewMove(from, to, Quiet), nil
	}
	return NewMove(from, to, Capture), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice backed by the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
