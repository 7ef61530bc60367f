// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"cfold/checker"
)

type errorType int

//go:generate go run golang.org/x/tools/cmd/stringer -type=errorType
const (
	noError errorType = iota
	usageError
	readError
	parseError
	stdoutError
	writeError
	verifyError
	internalError
)

type vError struct {
	typ    errorType
	status checker.CheckStatus
	err    error
}

func vfail(s checker.CheckStatus, err error) *vError {
	return &vError{
		typ:    verifyError,
		status: s,
		err:    err,
	}
}

func verror(typ errorType, err error) *vError {
	return &vError{
		typ: typ,
		err: err,
	}
}

func (e *vError) Error() string {
	switch e.typ {
	case usageError:
		return "Invalid command line!"
	case parseError:
		return "Invalid module detected!"
	case stdoutError:
		return "Failed to write module to stdout!"
	case writeError:
		return fmt.Sprintf("Failed to write module to file: %v", e.err)
	case verifyError:
		return fmt.Sprintf("Verification failed: %v", e.status)
	default:
		if e.err == nil {
			return e.typ.String()
		}
		return e.err.Error()
	}
}

func (e *vError) Unwrap() error {
	return e.err
}

// Code returns the exit code of the program. Every failure exits with 1.
func (e *vError) Code() int {
	if e.typ == noError {
		return 0
	}
	return 1
}

func getErrorType(err error) string {
	if err == nil {
		return noError.String()
	}
	var e *vError
	if errors.As(err, &e) {
		return e.typ.String()
	}
	return internalError.String()
}

func getErrorCode(err error) int {
	if err == nil {
		return 0
	}
	var e *vError
	if errors.As(err, &e) {
		return e.Code()
	}
	return 1
}

func getErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
