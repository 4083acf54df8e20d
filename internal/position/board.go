//
// Sharp Rustic - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2025-2026 Sharp Rustic contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package position

import (
	"fmt"
	"strconv"
	"strings"

	. "sharprustic/pkg/types"
)

// undoEntry captures everything DoMove mutates that Unmake cannot recompute
// from the board alone.
type undoEntry struct {
	move           Move
	captured       Piece
	castling       CastlingRights
	epSquare       Square
	halfmoveClock  int
	zobrist        Key
	capturedSquare Square // differs from move.To() only for en passant
}

// Board is a small array-of-64-pieces mover. It is not a magic-bitboard
// engine; sliding attacks are computed by ray-walking, which is the
// straightforward, correct approach for a component the search core treats
// as an opaque collaborator.
type Board struct {
	squares      [64]Piece
	sideToMove   Color
	castling     CastlingRights
	epSquare     Square
	halfmoveClk  int
	fullmoveNo   int
	kingSquare   [ColorLength]Square
	zobrist      Key
	history      []undoEntry
	rootPlyCount int // ply of the root position when the search started
	repHistory   []Key
}

// NewBoard returns the standard chess starting position.
func NewBoard() *Board {
	b, err := NewBoardFromFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is returned by NewBoardFromFEN for malformed input.
var ErrInvalidFEN = fmt.Errorf("invalid FEN")

// NewBoardFromFEN parses a FEN string into a Board.
func NewBoardFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: %q (need at least 4 fields)", ErrInvalidFEN, fen)
	}
	b := &Board{epSquare: SqNone, fullmoveNo: 1}
	for i := range b.squares {
		b.squares[i] = PieceNone
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: %q (need 8 ranks)", ErrInvalidFEN, fen)
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			if file > FileH {
				return nil, fmt.Errorf("%w: rank overflow in %q", ErrInvalidFEN, fen)
			}
			p := PieceFromChar(string(c))
			if p == PieceNone {
				return nil, fmt.Errorf("%w: bad piece char %q", ErrInvalidFEN, string(c))
			}
			sq := SquareOf(file, rank)
			b.squares[sq] = p
			if p.TypeOf() == King {
				b.kingSquare[p.ColorOf()] = sq
			}
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			b.castling |= CastlingWhiteOO
		case 'Q':
			b.castling |= CastlingWhiteOOO
		case 'k':
			b.castling |= CastlingBlackOO
		case 'q':
			b.castling |= CastlingBlackOOO
		case '-':
		default:
			return nil, fmt.Errorf("%w: bad castling field %q", ErrInvalidFEN, fields[2])
		}
	}

	if fields[3] == "-" {
		b.epSquare = SqNone
	} else {
		b.epSquare = MakeSquare(fields[3])
		if b.epSquare == SqNone {
			return nil, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFEN, fields[3])
		}
	}

	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfmoveClk = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.fullmoveNo = n
		}
	}

	b.zobrist = b.computeZobrist()
	return b, nil
}

// Clone returns an independent copy of b, including its own undo history
// and repetition history, so a helper searcher thread can Make/Unmake on it
// without disturbing the original.
func (b *Board) Clone() Position {
	nb := *b
	nb.history = append([]undoEntry(nil), b.history...)
	nb.repHistory = append([]Key(nil), b.repHistory...)
	return &nb
}

func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Zobrist returns the board's 64-bit position fingerprint.
func (b *Board) Zobrist() Key { return b.zobrist }

// PlyFromRoot returns how many plies have been played since the search
// started (i.e. since this Board was handed to the driver).
func (b *Board) PlyFromRoot() int { return len(b.history) - b.rootPlyCount }

// HalfmoveClock returns the 50-move-rule counter in half-moves.
func (b *Board) HalfmoveClock() int { return b.halfmoveClk }

// MaterialPhase returns a 0..24 tapered-eval phase counter.
func (b *Board) MaterialPhase() int {
	phase := 0
	for _, p := range b.squares {
		if p == PieceNone {
			continue
		}
		phase += p.TypeOf().GamePhaseValue()
	}
	if phase > 24 {
		phase = 24
	}
	return phase
}

// PieceCount returns the number of non-king, non-pawn pieces on the board,
// used by the time manager's phase thresholds.
func (b *Board) PieceCount() int {
	n := 0
	for _, p := range b.squares {
		if p == PieceNone {
			continue
		}
		pt := p.TypeOf()
		if pt != King && pt != Pawn {
			n++
		}
	}
	return n
}

// MarkRoot records the current ply count as "ply 0" for PlyFromRoot, and
// seeds the repetition history the search will extend with SearchPath keys.
func (b *Board) MarkRoot(history []Key) {
	b.rootPlyCount = len(b.history)
	b.repHistory = append([]Key(nil), history...)
}

// IsRepetition reports whether the current position's key occurs earlier in
// the supplied search-path history (threefold-adjacent check is the
// caller's responsibility; this reports "occurs at least once").
func (b *Board) IsRepetition(searchPath []Key) bool {
	for _, k := range b.repHistory {
		if k == b.zobrist {
			return true
		}
	}
	for _, k := range searchPath {
		if k == b.zobrist {
			return true
		}
	}
	return false
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sb.WriteString(b.squares[SquareOf(File(f), Rank(r))].String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
