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

import . "sharprustic/pkg/types"

// Make applies m to the board. When the resulting position leaves the
// mover's own king in check the move is illegal: the board is restored and
// Make returns false.
func (b *Board) Make(m Move) bool {
	mover := b.squares[m.From()]
	us := mover.ColorOf()

	entry := undoEntry{
		move:          m,
		captured:      PieceNone,
		castling:      b.castling,
		epSquare:      b.epSquare,
		halfmoveClock: b.halfmoveClk,
		zobrist:       b.zobrist,
	}

	from, to := m.From(), m.To()
	b.epSquare = SqNone

	switch m.MoveType() {
	case EnPassant:
		capSq := SquareOf(to.FileOf(), from.RankOf())
		entry.captured = b.squares[capSq]
		entry.capturedSquare = capSq
		b.removePiece(capSq)
		b.movePiece(from, to)
	case Castling:
		b.movePiece(from, to)
		rookFrom, rookTo := castlingRookSquares(to)
		b.movePiece(rookFrom, rookTo)
	case Promotion:
		entry.captured = b.squares[to]
		if entry.captured != PieceNone {
			b.removePiece(to)
		}
		b.removePiece(from)
		b.putPiece(MakePiece(us, m.PromotionType()), to)
	default:
		entry.captured = b.squares[to]
		if entry.captured != PieceNone {
			b.removePiece(to)
		}
		b.movePiece(from, to)
	}

	if mover.TypeOf() == King {
		b.kingSquare[us] = to
		if us == White {
			b.castling.Remove(CastlingWhite)
		} else {
			b.castling.Remove(CastlingBlack)
		}
	}
	b.updateCastlingRightsOnMove(from, to)

	if mover.TypeOf() == Pawn && (int(to)-int(from) == 16 || int(from)-int(to) == 16) {
		b.epSquare = SquareOf(from.FileOf(), (from.RankOf()+to.RankOf())/2)
	} else {
		b.epSquare = SqNone
	}

	if mover.TypeOf() == Pawn || entry.captured != PieceNone {
		b.halfmoveClk = 0
	} else {
		b.halfmoveClk++
	}

	b.sideToMove = us.Flip()
	b.zobrist = b.computeZobrist()
	b.history = append(b.history, entry)

	if b.attackedBy(b.kingSquare[us], us.Flip()) {
		b.Unmake()
		return false
	}
	return true
}

// Unmake reverts the most recent Make.
func (b *Board) Unmake() {
	n := len(b.history)
	entry := b.history[n-1]
	b.history = b.history[:n-1]

	m := entry.move
	from, to := m.From(), m.To()
	us := b.sideToMove.Flip()

	switch m.MoveType() {
	case EnPassant:
		b.movePiece(to, from)
		b.putPiece(entry.captured, entry.capturedSquare)
	case Castling:
		b.movePiece(to, from)
		rookFrom, rookTo := castlingRookSquares(to)
		b.movePiece(rookTo, rookFrom)
	case Promotion:
		b.removePiece(to)
		b.putPiece(MakePiece(us, Pawn), from)
		if entry.captured != PieceNone {
			b.putPiece(entry.captured, to)
		}
	default:
		b.movePiece(to, from)
		if entry.captured != PieceNone {
			b.putPiece(entry.captured, to)
		}
	}

	if b.squares[from].TypeOf() == King {
		b.kingSquare[us] = from
	}

	b.castling = entry.castling
	b.epSquare = entry.epSquare
	b.halfmoveClk = entry.halfmoveClock
	b.zobrist = entry.zobrist
	b.sideToMove = us
}

func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		return SqNone, SqNone
	}
}

func (b *Board) updateCastlingRightsOnMove(from, to Square) {
	switch from {
	case SqA1:
		b.castling.Remove(CastlingWhiteOOO)
	case SqH1:
		b.castling.Remove(CastlingWhiteOO)
	case SqA8:
		b.castling.Remove(CastlingBlackOOO)
	case SqH8:
		b.castling.Remove(CastlingBlackOO)
	}
	switch to {
	case SqA1:
		b.castling.Remove(CastlingWhiteOOO)
	case SqH1:
		b.castling.Remove(CastlingWhiteOO)
	case SqA8:
		b.castling.Remove(CastlingBlackOOO)
	case SqH8:
		b.castling.Remove(CastlingBlackOO)
	}
}

func (b *Board) movePiece(from, to Square) {
	p := b.squares[from]
	b.squares[from] = PieceNone
	b.squares[to] = p
}

func (b *Board) putPiece(p Piece, sq Square) {
	b.squares[sq] = p
}

func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	b.squares[sq] = PieceNone
	return p
}
