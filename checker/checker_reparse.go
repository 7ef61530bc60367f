// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/llir/llvm/asm"

	"cfold/logger"
)

// Reparse prints the module and parses it back. Dangling references and
// broken local numbering are reported as invalid.
type Reparse struct{}

// NewReparse creates a new re-parsing checker.
func NewReparse() *Reparse {
	return &Reparse{}
}

// Check parses the printed module.
func (c *Reparse) Check(ctx context.Context, m DumpableModule) (cr CheckResult, err error) {
	if err := ctx.Err(); err != nil {
		return CheckResult{Status: CheckTimeout}, nil
	}
	defer func() {
		if r := recover(); r != nil {
			cr, err = CheckResult{Status: CheckInvalid, Output: fmt.Sprint(r)}, nil
		}
	}()
	if _, err := asm.ParseString("<verify>", m.String()); err != nil {
		logger.Debugf("reparse failed: %v", err)
		return CheckResult{Status: CheckInvalid, Output: err.Error()}, nil
	}
	return CheckResult{Status: CheckOK}, nil
}

const llirPath = "github.com/llir/llvm"

// GetVersion returns the version of the IR library.
func (c *Reparse) GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range bi.Deps {
			if dep.Path == llirPath {
				return llirPath + " " + dep.Version
			}
		}
	}
	return llirPath
}
