//
// pcsolver - four-wide perfect-clear reachability and search engine
//
// MIT License
//
// Copyright (c) 2026 pcsolver contributors
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

// Package config holds globally available configuration variables which
// are either set by defaults, read from a config file, or set by command
// line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tmikkel/pcsolver/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd line options or config file.
	LogLevel = 5

	// GenLogLevel defines the log level of the PC-catalog generator and DP - can be overwritten
	// by cmd line options or config file.
	GenLogLevel = 5

	// TestLogLevel defines the test log level.
	TestLogLevel = 5

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

// LogLevels maps the go-logging level names usable in config.toml to the
// numeric levels the op/go-logging package expects.
var LogLevels = map[string]int{
	"CRITICAL": 0,
	"ERROR":    1,
	"WARNING":  2,
	"NOTICE":   3,
	"INFO":     4,
	"DEBUG":    5,
}

type conf struct {
	Log  logConfiguration
	Data dataConfiguration
	Gen  genConfiguration
}

// Setup reads the configuration file and sets settings from this file or
// defaults for the data paths and generation bounds used throughout the
// application.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	// setup log level - first check cmd line, then config file, finally leave defaults
	setupLogLvl()
	// setup data config after reading from configuration file if necessary
	setupData()
	// setup generation config after reading from configuration file if necessary
	setupGen()
	initialized = true
}

func setupLogLvl() {
	if lvl, ok := LogLevels[strings.ToUpper(Settings.Log.Level)]; ok {
		LogLevel = lvl
	}
	if lvl, ok := LogLevels[strings.ToUpper(Settings.Log.GenLevel)]; ok {
		GenLogLevel = lvl
	}
	if lvl, ok := LogLevels[strings.ToUpper(Settings.Log.TestLevel)]; ok {
		TestLogLevel = lvl
	}
}

// String prints out the current configuration settings and values.
// This uses reflection to read variables and their values.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Data Config:\n")
	s := reflect.ValueOf(&settings.Data).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	c.WriteString("\nGeneration Config:\n")
	s = reflect.ValueOf(&settings.Gen).Elem()
	typeOfT = s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
