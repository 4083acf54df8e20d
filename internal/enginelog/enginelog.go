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

// Package enginelog wires up github.com/op/go-logging for the engine: a
// Stdout backend always on, with an optional second file backend for
// search-trace detail, both behind one leveled, formatted backend.
package enginelog

import (
	"os"

	"github.com/op/go-logging"

	"sharprustic/internal/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile} %{level:7s}: %{message}`,
)

// Get returns a named logger backed by Stdout, leveled from
// config.Settings.Log.Level.
func Get(name string) *logging.Logger {
	log := logging.MustGetLogger(name)
	stdout := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(stdout, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(levelFromString(config.Settings.Log.Level), "")
	logging.SetBackend(leveled)
	return log
}

// SetupSearchLog returns the search logger: console always on, plus the
// trace file backend when the configuration enables file logging.
func SetupSearchLog() *logging.Logger {
	return getWithTrace("search")
}

// SetupUciLog returns the UCI protocol logger, with the same opt-in trace
// file backend as the search logger.
func SetupUciLog() *logging.Logger {
	return getWithTrace("uci")
}

// getWithTrace is Get, plus a second file backend when the configuration
// enables search-trace logging. A failure to open the trace file degrades
// to Stdout-only rather than aborting engine startup.
func getWithTrace(name string) *logging.Logger {
	log := logging.MustGetLogger(name)
	stdout := logging.NewLogBackend(os.Stdout, "", 0)
	stdoutLeveled := logging.AddModuleLevel(logging.NewBackendFormatter(stdout, format))
	stdoutLeveled.SetLevel(levelFromString(config.Settings.Log.Level), "")

	if !config.Settings.Log.LogToFile {
		logging.SetBackend(stdoutLeveled)
		return log
	}

	f, err := os.OpenFile(config.Settings.Log.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logging.SetBackend(stdoutLeveled)
		return log
	}
	fileBackend := logging.NewLogBackend(f, "", 0)
	fileLeveled := logging.AddModuleLevel(logging.NewBackendFormatter(fileBackend, format))
	fileLeveled.SetLevel(logging.DEBUG, "")

	logging.SetBackend(stdoutLeveled, fileLeveled)
	return log
}

func levelFromString(s string) logging.Level {
	lvl, err := logging.LogLevel(s)
	if err != nil {
		return logging.INFO
	}
	return lvl
}
