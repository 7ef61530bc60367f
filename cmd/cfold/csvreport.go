// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"cfold/logger"
)

const fileMode = 0600

type csvReport struct {
	input    string
	output   string
	opcodes  string
	duration time.Duration
	folded   int
	skipped  int
	err      error
}

const (
	dateTime = "2006-01-02 15:04:05"
)

func (csv csvReport) save(filename string) {
	if filename == "" {
		return
	}
	withHeader := false
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		withHeader = true
	}

	fp, err := os.OpenFile(filename,
		os.O_APPEND|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		logger.Warnf("could not open file: %v", filename)
		return
	}
	defer func() {
		if err := fp.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()

	if withHeader {
		fmt.Fprintln(fp, "# date, input, output, opcodes, duration, folded, skipped, error_type, exit_code")
	}

	fmt.Fprintf(fp, "%s, %s, %s, %s, %v, %d, %d, %s, %d\n",
		time.Now().Format(dateTime),
		csv.input,
		csv.output,
		strings.ReplaceAll(csv.opcodes, ",", "|"),
		csv.duration,
		csv.folded,
		csv.skipped,
		getErrorType(csv.err),
		getErrorCode(csv.err))
}
