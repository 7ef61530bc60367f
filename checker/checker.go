// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package checker contains a series of checkers that determine whether a transformed module is
// still a valid LLVM IR module before it is written out.
package checker

import (
	"context"
	"fmt"
)

// DumpableModule represents the interface of modules required by the checkers.
type DumpableModule interface {
	String() string
}

// Tool interface consists of one function to check the module and return a result.
type Tool interface {
	Check(ctx context.Context, m DumpableModule) (CheckResult, error)
	GetVersion() string
}

// CheckStatus represents the outcome of a check run
type CheckStatus int

//go:generate go run golang.org/x/tools/cmd/stringer -type=CheckStatus -trimprefix=Check
const (
	// CheckUndefined represents a check with outcome Undefined
	CheckUndefined CheckStatus = iota
	// CheckOK represents a check with outcome OK
	CheckOK
	// CheckInvalid represents a check with outcome Invalid
	CheckInvalid
	// CheckTimeout represents a check with outcome Timeout
	CheckTimeout
)

// CheckResult is a pair of CheckStatus and output string
type CheckResult struct {
	Status CheckStatus
	Output string
}

// ID identifies a checker.
type ID int

//go:generate go run golang.org/x/tools/cmd/stringer -type=ID
const (
	// UnknownID is an invalid checker
	UnknownID ID = iota
	// NoneID disables the verification
	NoneID
	// ReparseID parses the printed module back
	ReparseID
	// LLVMAsID runs the llvm-as assembler
	LLVMAsID
	// MockID checker
	MockID
)

// ParseID returns the checker ID with the given name.
func ParseID(s string) ID {
	switch s {
	case "none", "":
		return NoneID
	case "reparse":
		return ReparseID
	case "llvm-as":
		return LLVMAsID
	case "mock":
		return MockID
	default:
		return UnknownID
	}
}

// New returns the checker with the given ID. NoneID returns a nil Tool.
func New(id ID) (Tool, error) {
	switch id {
	case NoneID:
		return nil, nil
	case ReparseID:
		return NewReparse(), nil
	case LLVMAsID:
		return NewLLVMAs(), nil
	case MockID:
		return GetMock(), nil
	default:
		return nil, fmt.Errorf("unknown checker: %v", id)
	}
}
