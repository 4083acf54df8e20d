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

// Package uci implements the protocol adapter between a UCI-speaking chess
// GUI and the search core: parsing "position"/"go"/"stop" commands into a
// search.SearchRequest, driving search.Driver, and formatting its
// SearchReport/best-move results back onto the wire.
package uci

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sharprustic/internal/config"
	"sharprustic/internal/enginelog"
	"sharprustic/internal/position"
	"sharprustic/internal/search"
	. "sharprustic/pkg/types"
)

const engineName = "Sharp Rustic"
const engineVersion = "0.1.0"

var log = enginelog.SetupUciLog()

// out formats human-readable diagnostic numbers (nodes, nps) with
// thousands separators; the wire-format "info" line itself stays plain
// UCI-numeric and never goes through this printer.
var out = message.NewPrinter(language.English)

// Handler owns one UCI session: the current position, the shared search
// driver, and I/O. One Handler is created per engine process.
type Handler struct {
	In  *bufio.Scanner
	Out *bufio.Writer

	driver *search.Driver
	board  *position.Board

	mu        sync.Mutex
	searching bool
	gamePly   int
}

// NewHandler builds a Handler reading from stdin and writing to stdout,
// with a driver/TT sized from config.Settings.Search.Hash.
func NewHandler() *Handler {
	h := &Handler{
		In:     bufio.NewScanner(os.Stdin),
		Out:    bufio.NewWriter(os.Stdout),
		driver: search.NewDriver(config.Settings.Search.Hash),
		board:  position.NewBoard(),
	}
	h.In.Buffer(make([]byte, 0, 1<<20), 1<<20)
	h.driver.Report = h.sendIterationReport
	return h
}

// Loop reads commands from In until "quit" is received.
func (h *Handler) Loop() {
	for h.In.Scan() {
		if h.handle(h.In.Text()) {
			return
		}
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// handle processes one line of input, returning true iff the session
// should end.
func (h *Handler) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	log.Debugf("<< %s", line)
	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		h.driver.Stop.ForceStop()
		h.waitIdle()
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "setoption":
		h.setOptionCommand(tokens)
	case "ucinewgame":
		h.newGameCommand()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.driver.Stop.ForceStop()
	case "ponderhit":
		// Pondering is not implemented; a ponderhit simply lets whatever
		// search is already running continue.
	case "register":
		h.send("registration ok")
	case "debug":
	default:
		log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name " + engineName + " " + engineVersion)
	h.send("id author Sharp Rustic contributors")
	for _, line := range optionLines() {
		h.send(line)
	}
	h.send("uciok")
}

func (h *Handler) setOptionCommand(tokens []string) {
	if len(tokens) < 4 || tokens[1] != "name" {
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteString(" ")
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens) && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	if !applyOption(name.String(), value) {
		log.Warningf("unknown option: %s", name.String())
		return
	}
	if name.String() == "Hash" {
		h.driver.Table.Resize(config.Settings.Search.Hash)
	}
}

// SetStartPosition installs fen as the session's starting position, for
// the CLI's -f/--fen and -k/--kiwipete flags: both are configuration the
// protocol layer passes through before the UCI loop starts reading
// "position" commands of its own.
func (h *Handler) SetStartPosition(fen string) error {
	b, err := position.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	h.board = b
	h.board.MarkRoot(nil)
	return nil
}

// newGameCommand resets the board and the shared TT/killer state.
func (h *Handler) newGameCommand() {
	h.board = position.NewBoard()
	h.gamePly = 0
	h.driver.NewGame()
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		return
	}
	i := 1
	var b *position.Board
	var err error
	switch tokens[i] {
	case "startpos":
		b = position.NewBoard()
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		b, err = position.NewBoardFromFEN(strings.TrimSpace(fenb.String()))
		if err != nil {
			h.sendInfoString(fmt.Sprintf("bad position: %v", err))
			log.Warningf("bad position command: %v", err)
			return
		}
	default:
		h.sendInfoString("malformed position command")
		return
	}

	var history []Key
	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := b.MoveFromUci(tokens[i])
			if m == MoveNone {
				h.sendInfoString(fmt.Sprintf("illegal move in position command: %s", tokens[i]))
				log.Warningf("illegal move in position command: %s", tokens[i])
				return
			}
			history = append(history, b.Zobrist())
			b.Make(m)
		}
	}

	h.board = b
	h.gamePly = len(history)
	b.MarkRoot(history)
}

func (h *Handler) goCommand(tokens []string) {
	req, ok := h.parseGoTokens(tokens)
	if !ok {
		return
	}
	req.PlyFromGameStart = h.gamePly

	h.mu.Lock()
	if h.searching {
		h.mu.Unlock()
		h.sendInfoString("search already in progress")
		return
	}
	h.searching = true
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			h.searching = false
			h.mu.Unlock()
		}()
		move, err := h.driver.Search(h.board, req)
		switch {
		case err == nil:
			h.send("bestmove " + move.UciString())
		case errors.Is(err, search.ErrNoLegalMoves):
			// Checkmate or stalemate on the board already; there is
			// nothing legal to report, so answer with the UCI null move.
			h.send("bestmove 0000")
		default:
			log.Errorf("search failed: %v", err)
			h.sendInfoString(fmt.Sprintf("search internal error: %v", err))
		}
	}()
}

func (h *Handler) parseGoTokens(tokens []string) (search.SearchRequest, bool) {
	req := search.SearchRequest{Mode: search.ModeGameClock, MoveOverhead: config.Settings.Search.MoveOverheadMs}
	haveClock := false
	i := 1
	next := func() (string, bool) {
		if i >= len(tokens) {
			return "", false
		}
		t := tokens[i]
		i++
		return t, true
	}
	for i < len(tokens) {
		tok, _ := next()
		switch tok {
		case "infinite":
			req.Mode = search.ModeInfinite
		case "ponder":
			req.Ponder = true
		case "depth":
			if v, ok := next(); ok {
				n, err := strconv.Atoi(v)
				if err != nil {
					h.sendInfoString("go malformed: depth not a number: " + v)
					return req, false
				}
				req.Mode = search.ModeDepth
				req.Depth = n
			}
		case "nodes":
			if v, ok := next(); ok {
				n, err := strconv.ParseInt(v, 10, 64)
				if err != nil {
					h.sendInfoString("go malformed: nodes not a number: " + v)
					return req, false
				}
				req.Mode = search.ModeNodes
				req.Nodes = n
			}
		case "movetime", "moveTime":
			if v, ok := next(); ok {
				n, err := strconv.ParseInt(v, 10, 64)
				if err != nil {
					h.sendInfoString("go malformed: movetime not a number: " + v)
					return req, false
				}
				req.Mode = search.ModeMoveTime
				req.MoveTimeMs = n
			}
		case "wtime":
			if v, ok := next(); ok {
				n, err := strconv.ParseInt(v, 10, 64)
				if err == nil {
					req.Clock.WhiteMs = n
					haveClock = true
				}
			}
		case "btime":
			if v, ok := next(); ok {
				n, err := strconv.ParseInt(v, 10, 64)
				if err == nil {
					req.Clock.BlackMs = n
					haveClock = true
				}
			}
		case "winc":
			if v, ok := next(); ok {
				n, _ := strconv.ParseInt(v, 10, 64)
				req.Clock.WhiteIncMs = n
			}
		case "binc":
			if v, ok := next(); ok {
				n, _ := strconv.ParseInt(v, 10, 64)
				req.Clock.BlackIncMs = n
			}
		case "movestogo":
			if v, ok := next(); ok {
				n, _ := strconv.Atoi(v)
				req.Clock.MovesToGo = n
			}
		case "searchmoves":
			// Root move restriction is not supported; consume and ignore.
			for i < len(tokens) {
				i++
			}
		}
	}
	if req.Mode == search.ModeGameClock && !haveClock {
		req.Mode = search.ModeInfinite
	}
	return req, true
}

// sendIterationReport is the search.ReportFunc hook wired to the driver:
// the "info depth ... seldepth ... nodes ... nps ... score ... time ...
// pv ..." line, emitted at every completed iteration.
func (h *Handler) sendIterationReport(r search.SearchReport) {
	if config.Settings.Search.Quiet {
		return
	}
	h.send(fmt.Sprintf(
		"info depth %d seldepth %d nodes %d nps %d score %s time %d hashfull %d pv %s",
		r.Depth, r.SelDepth, r.Nodes, r.Nps, r.Score.String(), r.TimeMs, r.Hashfull, r.PV.StringUci(),
	))
	if r.Emergency {
		h.sendInfoString(out.Sprintf(
			"time emergency: soft=%dms hard=%dms nodes=%d", r.SoftMs, r.HardMs, r.Nodes,
		))
	}
}

func (h *Handler) sendInfoString(s string) {
	h.send("info string " + s)
}

func (h *Handler) send(s string) {
	log.Debugf(">> %s", s)
	_, _ = h.Out.WriteString(s)
	_, _ = h.Out.WriteString("\n")
	_ = h.Out.Flush()
}

// waitIdle blocks until no search is in progress; used by tests and by a
// clean shutdown path that wants "quit" to not race a running search.
func (h *Handler) waitIdle() {
	for {
		h.mu.Lock()
		s := h.searching
		h.mu.Unlock()
		if !s {
			return
		}
		time.Sleep(time.Millisecond)
	}
}
