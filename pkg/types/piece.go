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

package types

import "strings"

// PieceType is a piece kind independent of color.
type PieceType uint8

const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// IsValid reports whether pt is one of the six real piece types.
func (pt PieceType) IsValid() bool { return pt < PtLength }

// mvvLvaValue is the victim/aggressor value table for capture ordering:
// P,N,B,R,Q,K -> 100,320,330,500,900,20000. Index 0 (PtNone) is unused.
var mvvLvaValue = [PtLength]int{0, 20000, 100, 320, 330, 500, 900}

// MvvLvaValue returns the victim/attacker value used by MVV-LVA ordering.
func (pt PieceType) MvvLvaValue() int {
	return mvvLvaValue[pt]
}

// gamePhaseValue is the tapered-eval phase weight per piece type, doubled
// across both colors and capped at 24 (knight/bishop=1, rook=2, queen=4).
var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns the phase weight contributed by one piece of this type.
func (pt PieceType) GamePhaseValue() int { return gamePhaseValue[pt] }

var pieceTypeChar = "-KPNBRQ"

// Char returns a single upper-case letter for the piece type ('-' for none).
func (pt PieceType) Char() string { return string(pieceTypeChar[pt]) }

func (pt PieceType) String() string {
	names := [PtLength]string{"None", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}
	return names[pt]
}

// Piece is a colored piece: the low 3 bits are the PieceType, bit 3 is the
// color (0 = White, 1 = Black). PieceNone is the zero value.
type Piece int8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// MakePiece composes a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

// ColorOf returns the color of p.
func (p Piece) ColorOf() Color { return Color(p >> 3) }

// TypeOf returns the piece type of p.
func (p Piece) TypeOf() PieceType { return PieceType(p & 7) }

var pieceLetters = " KPNBRQ- kpnbrq-"

// PieceFromChar maps a FEN piece letter to a Piece, or PieceNone.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	idx := strings.Index(pieceLetters, s)
	if idx == -1 {
		return PieceNone
	}
	return Piece(idx)
}

func (p Piece) String() string {
	return string(pieceLetters[p])
}
