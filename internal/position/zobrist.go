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
	"math/rand"

	. "sharprustic/pkg/types"
)

var (
	zobristPieceSquare [PieceLength][64]Key
	zobristSideToMove  Key
	zobristCastling    [16]Key
	zobristEpFile      [9]Key // index 8 = no en passant file
)

// Zobrist keys only need to be internally consistent within one process,
// so a fixed-seed PRNG (rather than true randomness) keeps keys stable
// across runs, which is convenient for reproducing a search trace.
func init() {
	r := rand.New(rand.NewSource(0x5eed5eed5eed5eed))
	for p := Piece(0); p < PieceLength; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPieceSquare[p][sq] = Key(r.Uint64())
		}
	}
	zobristSideToMove = Key(r.Uint64())
	for i := range zobristCastling {
		zobristCastling[i] = Key(r.Uint64())
	}
	for i := range zobristEpFile {
		zobristEpFile[i] = Key(r.Uint64())
	}
}

func (b *Board) computeZobrist() Key {
	var k Key
	for sq := SqA1; sq < SqNone; sq++ {
		p := b.squares[sq]
		if p != PieceNone {
			k ^= zobristPieceSquare[p][sq]
		}
	}
	if b.sideToMove == Black {
		k ^= zobristSideToMove
	}
	k ^= zobristCastling[b.castling&0xF]
	if b.epSquare == SqNone {
		k ^= zobristEpFile[8]
	} else {
		k ^= zobristEpFile[b.epSquare.FileOf()]
	}
	return k
}
