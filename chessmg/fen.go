package chessmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch rune) (Piece, Color) {
	switch ch {
	case 'K':
		return King, White
	case 'Q':
		return Queen, White
	case 'R':
		return Rook, White
	case 'B':
		return Bishop, White
	case 'N':
		return Knight, White
	case 'P':
		return Pawn, White
	case 'k':
		return King, Black
	case 'q':
		return Queen, Black
	case 'r':
		return Rook, Black
	case 'b':
		return Bishop, Black
	case 'n':
		return Knight, Black
	case 'p':
		return Pawn, Black
	}
	return NoPiece, White
}

// ParseFEN parses a FEN record into a Position plus the half-move clock
// (plies since the last capture or pawn move) and the full-move number.
// FEN names the square behind a double-pushed pawn as the en passant
// target; the returned position stores the pawn itself, so the square is
// translated here. The parsed position is validated before being returned.
func ParseFEN(fen string) (Position, int, int, error) {
	var p Position
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return p, 0, 0, errors.New("invalid FEN: not enough fields")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return p, 0, 0, errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, color := pieceFromChar(ch)
			if kind == NoPiece {
				return p, 0, 0, fmt.Errorf("invalid FEN: unrecognized piece %q", ch)
			}
			if file >= 8 {
				return p, 0, 0, errors.New("invalid FEN: too many squares in rank")
			}
			p.pieces[color][kind] |= SquareBB(Square(rank*8 + file))
			file++
		}
		if file != 8 {
			return p, 0, 0, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return p, 0, 0, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castling |= SquareBB(7)
			case 'Q':
				p.castling |= SquareBB(0)
			case 'k':
				p.castling |= SquareBB(63)
			case 'q':
				p.castling |= SquareBB(56)
			default:
				return p, 0, 0, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return p, 0, 0, errors.New("invalid FEN: invalid en passant square")
		}
		fileChar, rankChar := fields[3][0], fields[3][1]
		if fileChar < 'a' || fileChar > 'h' || rankChar < '1' || rankChar > '8' {
			return p, 0, 0, errors.New("invalid FEN: en passant square out of range")
		}
		behind := Square(int(rankChar-'1')*8 + int(fileChar-'a'))
		// The pawn sits in front of the named square from the pusher's view.
		if p.sideToMove == White {
			p.enPassant = SquareBB(behind).Step(South)
		} else {
			p.enPassant = SquareBB(behind).Step(North)
		}
	}

	halfmove := 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return p, 0, 0, errors.New("invalid FEN: halfmove clock is not a number")
		}
		halfmove = n
	}
	fullmove := 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return p, 0, 0, errors.New("invalid FEN: fullmove number is not a number")
		}
		fullmove = n
	}

	p.rebuildOccupied()
	if err := p.Validate(); err != nil {
		return p, 0, 0, err
	}
	return p, halfmove, fullmove, nil
}

// ToFEN renders the position as a FEN record using the supplied counters,
// translating the stored en passant pawn back to the standard
// behind-the-pawn square.
func (p *Position) ToFEN(halfmove, fullmove int) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			kind, c := p.PieceAt(Square(rank*8 + file))
			if kind == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			s := kind.String()
			if c == Black {
				s = strings.ToLower(s)
			}
			sb.WriteString(s)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&SquareBB(7) != 0 {
			sb.WriteByte('K')
		}
		if p.castling&SquareBB(0) != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&SquareBB(63) != 0 {
			sb.WriteByte('k')
		}
		if p.castling&SquareBB(56) != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.enPassant == 0 {
		sb.WriteByte('-')
	} else {
		behind := p.enPassant.Step(North)
		if p.sideToMove == Black {
			behind = p.enPassant.Step(South)
		}
		sb.WriteString(squareName(behind.first()))
	}

	fmt.Fprintf(&sb, " %d %d", halfmove, fullmove)
	return sb.String()
}
