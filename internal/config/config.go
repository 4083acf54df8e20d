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

// Package config loads the engine's TOML configuration file into a
// package-level Settings struct with three-layer precedence: compiled-in
// defaults (set in each sub-config's init), then a config file if present,
// then CLI flag overrides applied by the caller after Setup returns.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings is the process-wide configuration instance, populated by Setup.
var Settings = &conf{}

type conf struct {
	Log    logConfig
	Search searchConfig
}

type logConfig struct {
	Level     string // one of op/go-logging's level names
	LogToFile bool
	LogPath   string
}

func init() {
	Settings.Log = logConfig{Level: "INFO", LogToFile: false, LogPath: "./logs/search.log"}
}

// String renders the full settings tree via reflection, for startup/debug
// reports.
func (c *conf) String() string {
	var b strings.Builder
	dumpStruct(&b, reflect.ValueOf(*c), 0)
	return b.String()
}

func dumpStruct(b *strings.Builder, v reflect.Value, indent int) {
	t := v.Type()
	pad := strings.Repeat("  ", indent)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if fv.Kind() == reflect.Struct {
			fmt.Fprintf(b, "%s%s:\n", pad, f.Name)
			dumpStruct(b, fv, indent+1)
			continue
		}
		fmt.Fprintf(b, "%s%s: %v\n", pad, f.Name, fv.Interface())
	}
}

// ErrConfigFile is returned when configFile is set but cannot be parsed.
var ErrConfigFile = fmt.Errorf("config file error")

// Setup loads configFile (if non-empty and present) over the compiled-in
// defaults. A missing file is not an error - the engine starts with
// defaults.
func Setup(configFile string) error {
	if configFile == "" {
		return nil
	}
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(configFile, Settings); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigFile, err)
	}
	return Settings.Search.Validate()
}
