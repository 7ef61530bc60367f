// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger implements a simple logger with a few error levels.
// All output goes to the diagnostic stream, since standard output may carry
// the transformed module.
package logger

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
)

// Level represents the amount of detail in which the log is output.
type Level int

const (
	fatal Level = iota
	// ERROR only log errors
	ERROR
	// WARN only log warnings and errors
	WARN
	// INFO log information, warnings and errors
	INFO
	// DEBUG log as much as possible
	DEBUG
)

var (
	logger *bufio.Writer
	level  = ERROR
)

func init() {
	logger = bufio.NewWriter(os.Stderr)
}

// SetOutput sets the writer to which the output is sent.
// If w is nil, no output is shown.
func SetOutput(w io.Writer) {
	if w == nil {
		logger = nil
		return
	}
	logger = bufio.NewWriter(w)
}

// SetLevel reconfigures the error level of the logger.
func SetLevel(l Level) {
	level = l
}

// GetLevel returns the current error level.
func GetLevel() Level {
	return level
}

// ParseLevel maps a level name to a Level. Unknown names map to ERROR.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	default:
		return ERROR
	}
}

// Fatal works as Println, but aborts the program.
func Fatal(args ...any) {
	Println(args...)
	os.Exit(1)
}

// Fatalf works as Printf, but aborts the program.
func Fatalf(format string, args ...any) {
	Printf(format, args...)
	Println()
	os.Exit(1)
}

// Error works as fmt.Print, but it adds a newline at the end of the format string.
func Error(args ...any) {
	if logger == nil || level < ERROR {
		return
	}
	Println(args...)
}

// Errorf works as fmt.Printf, but it adds a newline at the end of the format string.
func Errorf(format string, args ...any) {
	if logger == nil || level < ERROR {
		return
	}
	Printf(format, args...)
	Println()
}

// Warn works as fmt.Print when error level is WARN. It adds a newline at the end of the format string.
func Warn(args ...any) {
	if logger == nil || level < WARN {
		return
	}
	Println(args...)
}

// Warnf works as fmt.Printf when error level is WARN. It adds a newline at the end of the format string.
func Warnf(format string, args ...any) {
	if logger == nil || level < WARN {
		return
	}
	Printf(format, args...)
	Println()
}

// Info works as fmt.Print when error level is INFO. It adds a newline at the end of the format string.
func Info(args ...any) {
	if logger == nil || level < INFO {
		return
	}
	Println(args...)
}

// Infof works as fmt.Printf when error level is INFO. It adds a newline at the end of the format string.
func Infof(format string, args ...any) {
	if logger == nil || level < INFO {
		return
	}
	Printf(format, args...)
	Println()
}

// Debug works as fmt.Print when error level is DEBUG. It adds a newline at the end of the format string.
func Debug(args ...any) {
	if logger == nil || level < DEBUG {
		return
	}
	Println(args...)
}

// Debugf works as fmt.Printf when error level is DEBUG. It adds a newline at the end of the format string.
func Debugf(format string, args ...any) {
	if logger == nil || level < DEBUG {
		return
	}
	Printf(format, args...)
	Println()
}

// Print works as fmt.Print, but flushes the writer.
func Print(args ...any) {
	fprint(args...)
}

// Println works as fmt.Println, but flushes the writer.
func Println(args ...any) {
	fprintln(args...)
}

// Printf works as fmt.Printf, but flushes the writer.
func Printf(format string, args ...any) {
	fprintf(format, args...)
}

var fstr = fmt.Sprintf

func fprint(args ...any) {
	if logger == nil {
		return
	}
	if _, err := fmt.Fprint(logger, args...); err != nil {
		fail()
	}
	flush()
}

func fprintln(args ...any) {
	if logger == nil {
		return
	}
	if _, err := fmt.Fprintln(logger, args...); err != nil {
		fail()
	}
	flush()
}

func fprintf(format string, args ...any) {
	fprint(fstr(format, args...))
}

func flush() {
	if logger.Flush() != nil {
		fail()
	}
}

func fail() {
	// use fatal instead of panic to make linter happy
	log.Fatal()
}
