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
	"sharprustic/internal/moveslice"
	. "sharprustic/pkg/types"
)

// GenerateLegal fills out with every legal move in the current position.
// Moves are generated pseudo-legally and filtered by a trial Make/Unmake,
// which is the straightforward (if not fastest) way to respect pins and
// discovered checks without a pin-detection pass of its own.
func (b *Board) GenerateLegal(out *moveslice.MoveList) {
	var pseudo moveslice.MoveList
	b.generatePseudoLegal(&pseudo, false)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if b.Make(m) {
			out.PushBack(m)
			b.Unmake()
		}
	}
}

// GenerateCaptures fills out with every legal capture and promotion in the
// current position, the move source for quiescence search.
func (b *Board) GenerateCaptures(out *moveslice.MoveList) {
	var pseudo moveslice.MoveList
	b.generatePseudoLegal(&pseudo, true)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if b.Make(m) {
			out.PushBack(m)
			b.Unmake()
		}
	}
}

// generatePseudoLegal appends every pseudo-legal move (legality of the
// king's safety is not yet checked) to out. When capturesOnly is set, only
// captures, en-passant captures and promotions are generated.
func (b *Board) generatePseudoLegal(out *moveslice.MoveList, capturesOnly bool) {
	us := b.sideToMove
	them := us.Flip()
	for sq := SqA1; sq < SqNone; sq++ {
		p := b.squares[sq]
		if p == PieceNone || p.ColorOf() != us {
			continue
		}
		switch p.TypeOf() {
		case Pawn:
			b.genPawnMoves(sq, us, out, capturesOnly)
		case Knight:
			b.genStepMoves(sq, knightOffsets[:], us, them, out, capturesOnly)
		case King:
			b.genStepMoves(sq, kingOffsets[:], us, them, out, capturesOnly)
			if !capturesOnly {
				b.genCastling(us, out)
			}
		case Bishop:
			b.genSliderMoves(sq, bishopDirs[:], us, them, out, capturesOnly)
		case Rook:
			b.genSliderMoves(sq, rookDirs[:], us, them, out, capturesOnly)
		case Queen:
			b.genSliderMoves(sq, bishopDirs[:], us, them, out, capturesOnly)
			b.genSliderMoves(sq, rookDirs[:], us, them, out, capturesOnly)
		}
	}
}

func (b *Board) genStepMoves(sq Square, offsets [][2]int, us, them Color, out *moveslice.MoveList, capturesOnly bool) {
	for _, o := range offsets {
		to, ok := offsetSquare(sq, o[0], o[1])
		if !ok {
			continue
		}
		target := b.squares[to]
		if target != PieceNone && target.ColorOf() == us {
			continue
		}
		if capturesOnly && target == PieceNone {
			continue
		}
		out.PushBack(NewMove(sq, to, Normal, PtNone))
	}
}

func (b *Board) genSliderMoves(sq Square, dirs []Direction, us, them Color, out *moveslice.MoveList, capturesOnly bool) {
	for _, d := range dirs {
		cur := sq
		for {
			next, ok := step(cur, d)
			if !ok {
				break
			}
			target := b.squares[next]
			if target == PieceNone {
				if !capturesOnly {
					out.PushBack(NewMove(sq, next, Normal, PtNone))
				}
				cur = next
				continue
			}
			if target.ColorOf() != us {
				out.PushBack(NewMove(sq, next, Normal, PtNone))
			}
			break
		}
	}
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func (b *Board) genPawnMoves(sq Square, us Color, out *moveslice.MoveList, capturesOnly bool) {
	fwd := North
	startRank := Rank2
	promoRank := Rank8
	if us == Black {
		fwd = South
		startRank = Rank7
		promoRank = Rank1
	}

	addPawnMove := func(to Square, mt MoveType) {
		if to.RankOf() == promoRank {
			for _, pt := range promotionPieces {
				out.PushBack(NewMove(sq, to, Promotion, pt))
			}
			return
		}
		out.PushBack(NewMove(sq, to, mt, PtNone))
	}

	// Forward pushes are quiet, except a push onto the promotion rank,
	// which the capture generator still has to produce (quiescence search
	// extends on promotions as well as captures).
	if one, ok := step(sq, fwd); ok && b.squares[one] == PieceNone {
		if !capturesOnly || one.RankOf() == promoRank {
			addPawnMove(one, Normal)
		}
		if !capturesOnly && sq.RankOf() == startRank {
			if two, ok2 := step(one, fwd); ok2 && b.squares[two] == PieceNone {
				addPawnMove(two, Normal)
			}
		}
	}

	for _, capDir := range [2]Direction{Northeast, Northwest} {
		d := capDir
		if us == Black {
			if capDir == Northeast {
				d = Southeast
			} else {
				d = Southwest
			}
		}
		to, ok := step(sq, d)
		if !ok {
			continue
		}
		if to == b.epSquare && b.epSquare != SqNone {
			addPawnMove(to, EnPassant)
			continue
		}
		target := b.squares[to]
		if target != PieceNone && target.ColorOf() != us {
			addPawnMove(to, Normal)
		}
	}
}

// MoveFromUci resolves a UCI move token (e.g. "e2e4", "e7e8q") against the
// position's currently legal moves, returning MoveNone if the token does
// not name a legal move. This is how the UCI adapter turns "position ...
// moves ..." and the protocol's own move tokens into a searchable Move,
// since a bare from/to/promotion triple is not enough to disambiguate
// castling or en-passant encoding on its own.
func (b *Board) MoveFromUci(token string) Move {
	var legal moveslice.MoveList
	b.GenerateLegal(&legal)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.UciString() == token {
			return m.MoveOf()
		}
	}
	return MoveNone
}

func (b *Board) genCastling(us Color, out *moveslice.MoveList) {
	if b.attackedBy(b.kingSquare[us], us.Flip()) {
		return
	}
	if us == White {
		if b.castling.Has(CastlingWhiteOO) &&
			b.squares[SqF1] == PieceNone && b.squares[SqG1] == PieceNone &&
			!b.attackedBy(SqF1, Black) && !b.attackedBy(SqG1, Black) {
			out.PushBack(NewMove(SqE1, SqG1, Castling, PtNone))
		}
		if b.castling.Has(CastlingWhiteOOO) &&
			b.squares[SqD1] == PieceNone && b.squares[SqC1] == PieceNone && b.squares[SqB1] == PieceNone &&
			!b.attackedBy(SqD1, Black) && !b.attackedBy(SqC1, Black) {
			out.PushBack(NewMove(SqE1, SqC1, Castling, PtNone))
		}
	} else {
		if b.castling.Has(CastlingBlackOO) &&
			b.squares[SqF8] == PieceNone && b.squares[SqG8] == PieceNone &&
			!b.attackedBy(SqF8, White) && !b.attackedBy(SqG8, White) {
			out.PushBack(NewMove(SqE8, SqG8, Castling, PtNone))
		}
		if b.castling.Has(CastlingBlackOOO) &&
			b.squares[SqD8] == PieceNone && b.squares[SqC8] == PieceNone && b.squares[SqB8] == PieceNone &&
			!b.attackedBy(SqD8, White) && !b.attackedBy(SqC8, White) {
			out.PushBack(NewMove(SqE8, SqC8, Castling, PtNone))
		}
	}
}
