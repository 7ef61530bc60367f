// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"strings"

	"github.com/llir/llvm/ir"

	"cfold/core"
)

// Config selects which parts of a LLVM IR module are transformed.
type Config struct {
	Opcodes      core.OpcodeSet // opcodes that may be folded
	Funcs        []string       // if not empty, only these functions are visited
	SkipFuncPref []string       // a list of function prefixes to leave untouched
}

// DefaultConfig returns a default configuration for loading a module
func DefaultConfig() Config {
	return Config{
		Opcodes: core.AllOpcodes,
	}
}

func (cfg Config) selected(f *ir.Func) bool {
	name := f.Name()
	for _, prefix := range cfg.SkipFuncPref {
		if strings.HasPrefix(name, prefix) {
			return false
		}
	}
	if len(cfg.Funcs) == 0 {
		return true
	}
	for _, fn := range cfg.Funcs {
		if fn == name {
			return true
		}
	}
	return false
}
