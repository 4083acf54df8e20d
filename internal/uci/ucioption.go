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

package uci

import (
	"strconv"

	"sharprustic/internal/config"
)

// option describes one UCI "option name ... type ..." announcement and how
// to apply a "setoption" value to config.Settings.
type option struct {
	name    string
	uciType string
	def     string
	min     string
	max     string
	set     func(value string)
}

func options() []option {
	return []option{
		{
			name: "Hash", uciType: "spin", def: "32", min: "1", max: "4096",
			set: func(v string) {
				if n, err := strconv.Atoi(v); err == nil && n >= 1 {
					config.Settings.Search.Hash = n
				}
			},
		},
		{
			name: "Threads", uciType: "spin", def: "1", min: "1", max: "64",
			set: func(v string) {
				if n, err := strconv.Atoi(v); err == nil && n >= 1 {
					config.Settings.Search.Threads = n
				}
			},
		},
		{
			name: "Move Overhead", uciType: "spin", def: "30", min: "0", max: "5000",
			set: func(v string) {
				if n, err := strconv.Atoi(v); err == nil && n >= 0 {
					config.Settings.Search.MoveOverheadMs = int64(n)
				}
			},
		},
		{
			name: "Quiet", uciType: "check", def: "false",
			set: func(v string) {
				config.Settings.Search.Quiet = v == "true"
			},
		},
	}
}

// optionLines renders every declared option as a UCI "option name ..." line.
func optionLines() []string {
	var lines []string
	for _, o := range options() {
		line := "option name " + o.name + " type " + o.uciType + " default " + o.def
		if o.min != "" {
			line += " min " + o.min + " max " + o.max
		}
		lines = append(lines, line)
	}
	return lines
}

// applyOption finds the named option and applies value, reporting whether
// the option name was recognised.
func applyOption(name, value string) bool {
	for _, o := range options() {
		if o.name == name {
			o.set(value)
			return true
		}
	}
	return false
}
