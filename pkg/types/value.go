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
	"strconv"
	"strings"
)

// Value is a centipawn score, always expressed from the perspective of the
// side named by the surrounding context (White POV for Evaluator.Eval,
// side-to-move POV everywhere inside the search).
type Value int16

// MaxPly bounds the recursion depth of the searcher and the size of any
// per-ply scratch array (killers, PV buffers). Design Notes recommend 128.
const MaxPly = 128

const (
	ValueZero Value = 0
	ValueDraw Value = 0

	// ValueInf is larger than any real evaluation; used to seed alpha/beta
	// at the root and as the "sentinel" TT-move ordering score.
	ValueInf Value = 32000

	// ValueNA marks "no value" in contexts (e.g. an empty MoveList slot)
	// where 0 would be a legitimate score.
	ValueNA Value = -ValueInf - 1

	// Mate is the mate ceiling: a position that delivers mate in k plies
	// for the side to move scores Mate-k.
	Mate Value = 30000

	// MateInMax is the threshold above which a score is treated as a mate
	// score for the purposes of TT mate-distance adjustment.
	MateInMax = Mate - MaxPly
)

// IsValid reports whether v is within the representable centipawn/mate range.
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// IsMateValue reports whether v represents a proven mate (for or against
// the side the value is expressed for).
func (v Value) IsMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a >= MateInMax && a <= Mate
}

// String renders v the way a UCI "score" token would: "mate N" or "cp N".
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v == ValueNA:
		b.WriteString("N/A")
	case v.IsMateValue():
		b.WriteString("mate ")
		if v < 0 {
			b.WriteString("-")
		}
		plies := int(Mate) - abs16(v)
		b.WriteString(strconv.Itoa((plies + 1) / 2))
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

func abs16(v Value) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}

// ValueType records how a TT-stored score bounds the true value of the
// node that produced it.
type ValueType int8

const (
	// Vnone marks an empty/unused TT slot.
	Vnone ValueType = iota
	// Exact means score is the true minimax value.
	Exact
	// LowerBound means the true value is >= score (a beta cutoff occurred).
	LowerBound
	// UpperBound means the true value is <= score (nothing beat alpha).
	UpperBound
	vtLength
)

// IsValid reports whether vt is one of the four defined value types.
func (vt ValueType) IsValid() bool { return vt < vtLength }

func (vt ValueType) String() string {
	names := [vtLength]string{"None", "Exact", "LowerBound", "UpperBound"}
	return names[vt]
}
