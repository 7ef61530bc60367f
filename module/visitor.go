// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"fmt"

	"github.com/llir/llvm/ir"

	"cfold/logger"
)

var verboseVisitor = false

// DebugVisitor turns on several debugging prints in the visitor.
func DebugVisitor() {
	verboseVisitor = true
}

// Action tells the visitor what to do with the instruction it just visited.
type Action int

const (
	// Keep leaves the instruction in its block
	Keep Action = iota
	// Detach removes the instruction from its block
	Detach
)

// Site locates an instruction in the module.
type Site struct {
	Func  *ir.Func
	Block *ir.Block
}

// Visitor receives the instructions of a module in program order.
type Visitor interface {
	// EnterFunc is called before the first instruction of each visited function.
	EnterFunc(f *ir.Func)
	// VisitInst is called once on every instruction still in its block.
	VisitInst(inst ir.Instruction, site Site) Action
}

// Visit walks the functions in module order, their blocks in layout order
// and the instructions of each block in program order. Declarations and
// functions not selected by the module configuration are not visited.
//
// Instructions for which v returns Detach are removed from their block
// during the walk. Afterwards, the unnamed local values of every function
// that lost instructions are renumbered.
func (m *Module) Visit(v Visitor) error {
	for _, f := range m.Funcs {
		if len(f.Blocks) == 0 {
			continue
		}
		if !m.cfg.selected(f) {
			logger.Debugf("Skip function %s", f.Ident())
			continue
		}
		if n := visitFunc(f, v); n > 0 {
			logger.Debugf("Detached %d instructions from %s", n, f.Ident())
			if err := renumber(f); err != nil {
				return fmt.Errorf("could not renumber %s: %w", f.Ident(), err)
			}
		}
	}
	return nil
}

func visitFunc(f *ir.Func, v Visitor) int {
	v.EnterFunc(f)
	detached := 0
	for _, block := range f.Blocks {
		site := Site{Func: f, Block: block}
		// kept shares the backing array and never overtakes the cursor
		kept := block.Insts[:0]
		for _, inst := range block.Insts {
			if verboseVisitor {
				logger.Debugf("Inst: %s", inst.LLString())
			}
			if v.VisitInst(inst, site) == Detach {
				detached++
				continue
			}
			kept = append(kept, inst)
		}
		for i := len(kept); i < len(block.Insts); i++ {
			block.Insts[i] = nil
		}
		block.Insts = kept
	}
	return detached
}
