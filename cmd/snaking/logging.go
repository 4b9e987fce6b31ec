package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/snaking/constant"
)

const (
	logDir      = constant.LogDir
	logFileName = constant.LogFileName
	maxLogSize  = constant.MaxLogSize
)

// setupLogging routes the standard logger to logs/snaking.log when debug is
// set and discards it otherwise. The terminal is in raw mode for the whole
// run, so nothing is ever logged to stdout or stderr.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snaking_%s.log", time.Now().Format("20060102_150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("Logging started")
	return f
}
