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

package config

import "fmt"

// searchConfig holds the search-related tunables.
type searchConfig struct {
	Hash              int // MB; TT size, rounded down to a power-of-two bucket count
	Threads           int // searcher thread count; TT is shared regardless
	TTLocalCacheSize  int
	TTBatchSize       int
	MoveOverheadMs    int64
	MaxDepth          int // == MaxPly
	EmergencyMaxDepth int
	Quiet             bool
}

func init() {
	Settings.Search = searchConfig{
		Hash:              32,
		Threads:           1,
		TTLocalCacheSize:  1024,
		TTBatchSize:       16,
		MoveOverheadMs:    30,
		MaxDepth:          128,
		EmergencyMaxDepth: 8,
		Quiet:             false,
	}
}

// ErrInvalidHash and ErrInvalidThreads are configuration errors surfaced
// synchronously, before any search is allowed to start.
var (
	ErrInvalidHash    = fmt.Errorf("invalid hash size")
	ErrInvalidThreads = fmt.Errorf("invalid thread count")
)

// Validate rejects a non-power-of-two or too-small hash and an invalid
// thread count.
func (s *searchConfig) Validate() error {
	if s.Hash < 1 || s.Hash&(s.Hash-1) != 0 {
		return fmt.Errorf("%w: %d MB (must be a power of two)", ErrInvalidHash, s.Hash)
	}
	if s.Threads < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidThreads, s.Threads)
	}
	return nil
}
