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

// Command sharprustic is the engine's process entrypoint: it loads
// configuration, applies CLI flag overrides, and starts the UCI loop.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sharprustic/internal/config"
	"sharprustic/internal/enginelog"
	"sharprustic/internal/uci"
)

const engineVersion = "0.1.0"

// kiwipeteFEN is the -k/--kiwipete convenience position: the well-known
// perft-stress FEN with rich castling/en-passant/promotion interactions.
const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

var out = message.NewPrinter(language.English)

func main() {
	var (
		comm     string
		fen      string
		kiwipete bool
		hash     int
		threads  int
		perft    int
		quiet    bool
	)
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	flag.StringVar(&comm, "c", "uci", "communication protocol: only uci is supported (xboard is rejected)")
	flag.StringVar(&comm, "comm", "uci", "long form of -c")
	flag.StringVar(&fen, "f", "", "starting position FEN")
	flag.StringVar(&fen, "fen", "", "long form of -f")
	flag.BoolVar(&kiwipete, "k", false, "convenience: start from the Kiwipete FEN")
	flag.BoolVar(&kiwipete, "kiwipete", false, "long form of -k")
	flag.IntVar(&hash, "h", 32, "transposition table size in MB")
	flag.IntVar(&hash, "hash", 32, "long form of -h")
	flag.IntVar(&threads, "t", 1, "number of searcher threads sharing the transposition table")
	flag.IntVar(&threads, "threads", 1, "long form of -t")
	flag.IntVar(&perft, "p", 0, "perft depth (bypasses search; not part of this core)")
	flag.IntVar(&perft, "perft", 0, "long form of -p")
	flag.BoolVar(&quiet, "q", false, "suppress periodic \"info\" lines, reporting only bestmove")
	flag.BoolVar(&quiet, "quiet", false, "long form of -q")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if perft > 0 {
		fmt.Fprintln(os.Stderr, "perft is a move-generation diagnostic, not implemented by this engine core")
		os.Exit(1)
	}
	if comm != "uci" {
		fmt.Fprintf(os.Stderr, "unsupported -c/--comm %q: only uci is implemented\n", comm)
		os.Exit(1)
	}

	if err := config.Setup(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// CLI flags override whatever the config file set.
	if isFlagSet("h") || isFlagSet("hash") {
		config.Settings.Search.Hash = hash
	}
	if isFlagSet("t") || isFlagSet("threads") {
		config.Settings.Search.Threads = threads
	}
	if quiet {
		config.Settings.Search.Quiet = true
	}
	if err := config.Settings.Search.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := enginelog.Get("main")
	log.Infof("starting sharprustic %s, hash=%dMB threads=%d", engineVersion, config.Settings.Search.Hash, config.Settings.Search.Threads)

	h := uci.NewHandler()
	startFEN := ""
	switch {
	case kiwipete:
		startFEN = kiwipeteFEN
	case fen != "":
		startFEN = fen
	}
	if startFEN != "" {
		if err := h.SetStartPosition(startFEN); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	h.Loop()
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func printVersionInfo() {
	out.Printf("Sharp Rustic %s\n", engineVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
