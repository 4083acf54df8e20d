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

import (
	"fmt"
	"strings"
)

// MoveType distinguishes how a move changes the board beyond from/to.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
	moveTypeLength
)

// IsValid reports whether mt is one of the four defined move types.
func (mt MoveType) IsValid() bool { return mt < moveTypeLength }

func (mt MoveType) String() string {
	names := [moveTypeLength]string{"n", "p", "e", "c"}
	return names[mt]
}

// Move packs one chess move plus a transient ordering score into a single
// 32-bit word:
//
//	bits 0-5    to square
//	bits 6-11   from square
//	bits 12-13  promotion piece type, offset so Knight==0 .. Queen==3
//	bits 14-15  move type
//	bits 16-31  signed sort value (ValueOf/SetValue), meaningless once the
//	            move has been consumed by the caller - see MoveList.
//
// Equality of two Move values that differ only in the value bits is tested
// via MoveOf, never via ==.
type Move uint32

// MoveNone is the zero Move, never a legal move.
const MoveNone Move = 0

const (
	fromShift     = 6
	promTypeShift = 12
	typeShift     = 14
	valueShift    = 16

	squareBits Move = 0x3F
	toMask          = squareBits
	fromMask        = squareBits << fromShift
	promTypeMask    = Move(3) << promTypeShift
	moveTypeMask    = Move(3) << typeShift
	moveMask        = Move(0xFFFF)
	valueMask       = Move(0xFFFF) << valueShift
)

// NewMove encodes from, to, a move type and (for promotions) the promoted-to
// piece type, with no sort value attached.
func NewMove(from, to Square, mt MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(mt)<<typeShift
}

// NewMoveScored is NewMove plus an attached sort value, used by move
// generators that can cheaply pre-score a move (e.g. captures by MVV-LVA).
func NewMoveScored(from, to Square, mt MoveType, promType PieceType, value Value) Move {
	return NewMove(from, to, mt, promType).SetValue(value)
}

// MoveType reports the move's kind.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType reports the promoted-to piece; meaningless unless MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// To returns the destination square.
func (m Move) To() Square { return Square(m & toMask) }

// From returns the origin square.
func (m Move) From() Square { return Square((m & fromMask) >> fromShift) }

// MoveOf strips the sort-value bits, leaving only the positional fields.
// Two moves compare equal iff their MoveOf() values are equal.
func (m Move) MoveOf() Move { return m & moveMask }

// ValueOf returns the move's attached sort value, or ValueNA if none was set.
func (m Move) ValueOf() Value {
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// SetValue returns a copy of m carrying the given sort value. Calling it on
// MoveNone is a no-op (there is nothing to score).
func (m Move) SetValue(v Value) Move {
	if m == MoveNone {
		return m
	}
	return m&moveMask | Move(v-ValueNA)<<valueShift
}

// IsValid reports whether m has well-formed fields. MoveNone is not valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid()
}

// UciString renders m the way UCI expects on the wire, e.g. "e2e4", "e7e8q".
func (m Move) UciString() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	return fmt.Sprintf("%s[%s val=%s]", m.UciString(), m.MoveType(), m.ValueOf())
}
