// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"cfold/logger"
	"cfold/tools"
)

func init() {
	tools.RegEnv("LLVM_AS_CMD", "llvm-as", "Path to llvm-as binary used by --verify=llvm-as")
}

// LLVMAs checks the module with the LLVM assembler, which also runs the
// LLVM verifier on the parsed module.
type LLVMAs struct {
	cmd []string
}

// NewLLVMAs creates a new checker using the llvm-as command.
func NewLLVMAs() *LLVMAs {
	return &LLVMAs{cmd: tools.FindCmd("LLVM_AS_CMD", "llvm-as")}
}

// Check assembles the module and discards the bitcode.
func (c *LLVMAs) Check(ctx context.Context, m DumpableModule) (cr CheckResult, err error) {
	fn, err := tools.Touch("", "cfold-*.ll")
	if err != nil {
		return cr, err
	}
	defer func() {
		if err := tools.Remove(fn); err != nil {
			logger.Warnf("error removing file: %v", err)
		}
	}()

	if err = tools.Dump(m, fn); err != nil {
		return cr, err
	}

	args := append(c.cmd[1:len(c.cmd):len(c.cmd)], fn, "-o", os.DevNull)
	out, err := tools.RunCmdContext(ctx, c.cmd[0], args, nil)
	logger.Debug(out)

	var execErr *exec.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return CheckResult{Status: CheckTimeout, Output: out}, nil
	case errors.Is(err, context.Canceled):
		return cr, err
	case errors.As(err, &execErr):
		return cr, err
	case err != nil:
		return CheckResult{Status: CheckInvalid, Output: out}, nil
	default:
		return CheckResult{Status: CheckOK, Output: out}, nil
	}
}

// GetVersion returns the first line of llvm-as --version that mentions
// a version.
func (c *LLVMAs) GetVersion() string {
	args := append(c.cmd[1:len(c.cmd):len(c.cmd)], "--version")
	out, err := tools.RunCmd(c.cmd[0], args, nil)
	if err != nil {
		return "unknown"
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "version") {
			return strings.TrimSpace(line)
		}
	}
	return "unknown"
}
