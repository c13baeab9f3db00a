/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced with --quiet.
package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	output  io.Writer = os.Stderr
	logger            = log.New(output, "", 0)
	verbose bool
)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = log.New(output, "", 0)
}

// SetVerbose enables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

func current() (*log.Logger, bool) {
	mu.Lock()
	defer mu.Unlock()
	return logger, verbose
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	l, _ := current()
	l.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	l, _ := current()
	l.Printf(format, args...)
}

// Debug logs a message only when verbose output is enabled.
func Debug(format string, args ...any) {
	if l, v := current(); v {
		l.Printf(format, args...)
	}
}
