package checkers

// Color represents the color of a piece or the side to move.
type Color int8

const (
	// NoColor represents no color.
	NoColor Color = iota
	// White moves first and starts on the three rows nearest row 7.
	White
	// Black starts on the three rows nearest row 0.
	Black
)

// Other returns the opposite color.  NoColor returns NoColor.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface and returns
// the color's PDN letter.
func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Black:
		return "B"
	}
	return "-"
}

// Name returns a display name for the color.
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "No Color"
}

// forward is the row delta a man of this color moves by.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// promotionRow is the opponent's back row for men of this color.
func (c Color) promotionRow() int {
	if c == White {
		return 0
	}
	return numRows - 1
}

// PieceType is the rank of a piece.
type PieceType int8

const (
	// NoPieceType signifies a lack of a piece type.
	NoPieceType PieceType = iota
	// Man moves and captures diagonally forward only.
	Man
	// King moves and captures in all four diagonal directions at any distance.
	King
)

func (p PieceType) String() string {
	switch p {
	case Man:
		return "man"
	case King:
		return "king"
	}
	return ""
}

// Piece is a piece type with a color.
type Piece int8

const (
	// NoPiece represents no piece.
	NoPiece Piece = iota
	WhiteMan
	WhiteKing
	BlackMan
	BlackKing
)

var allPieces = []Piece{WhiteMan, WhiteKing, BlackMan, BlackKing}

// NewPiece returns the piece matching the color and type.
func NewPiece(c Color, t PieceType) Piece {
	for _, p := range allPieces {
		if p.Color() == c && p.Type() == t {
			return p
		}
	}
	return NoPiece
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	switch p {
	case WhiteMan, WhiteKing:
		return White
	case BlackMan, BlackKing:
		return Black
	}
	return NoColor
}

// Type returns the type of the piece.
func (p Piece) Type() PieceType {
	switch p {
	case WhiteMan, BlackMan:
		return Man
	case WhiteKing, BlackKing:
		return King
	}
	return NoPieceType
}

// promoted returns the king of the piece's color.
func (p Piece) promoted() Piece {
	return NewPiece(p.Color(), King)
}

// String returns the board-diagram letter of the piece: lower case
// for men and upper case for kings.
func (p Piece) String() string {
	switch p {
	case WhiteMan:
		return "w"
	case WhiteKing:
		return "W"
	case BlackMan:
		return "b"
	case BlackKing:
		return "B"
	}
	return " "
}
