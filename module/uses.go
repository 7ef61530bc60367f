// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/metadata"
	"github.com/llir/llvm/ir/value"
)

type operander interface {
	Operands() []*value.Value
}

// slot is a field referencing an instruction: either an operand or the
// value wrapped in a metadata argument.
type slot struct {
	v  *value.Value
	md *metadata.Metadata
}

func (s slot) set(c constant.Constant) {
	if s.md != nil {
		*s.md = c
		return
	}
	*s.v = c
}

// Uses maps each instruction of a function to the slots that reference it.
type Uses map[ir.Instruction][]slot

// NewUses collects the uses of all instructions in f. Operands of
// instructions and terminators are considered, including call arguments
// with attributes and values wrapped in metadata arguments (eg, of
// llvm.dbg.value calls).
func NewUses(f *ir.Func) Uses {
	u := make(Uses)
	for _, block := range f.Blocks {
		for _, inst := range block.Insts {
			u.add(inst)
		}
		if block.Term != nil {
			u.add(block.Term)
		}
	}
	return u
}

func (u Uses) add(user interface{}) {
	ops, ok := user.(operander)
	if !ok {
		return
	}
	for _, op := range ops.Operands() {
		u.addValue(op)
	}
}

func (u Uses) addValue(op *value.Value) {
	if op == nil || *op == nil {
		return
	}
	switch v := (*op).(type) {
	case ir.Instruction:
		u[v] = append(u[v], slot{v: op})
	case *ir.Arg:
		// call argument carrying parameter attributes
		u.addValue(&v.Value)
	case *metadata.Value:
		u.addMetadata(&v.Value)
	}
}

func (u Uses) addMetadata(md *metadata.Metadata) {
	switch v := (*md).(type) {
	case ir.Instruction:
		u[v] = append(u[v], slot{md: md})
	case *metadata.DIArgList:
		for i := range v.Fields {
			u.addValue(&v.Fields[i])
		}
	}
}

// Count returns the number of slots referencing inst.
func (u Uses) Count(inst ir.Instruction) int {
	return len(u[inst])
}

// Redirect makes every slot referencing inst reference c instead and
// returns the number of slots changed. Afterwards inst has no uses.
func (u Uses) Redirect(inst ir.Instruction, c constant.Constant) int {
	slots := u[inst]
	for _, s := range slots {
		s.set(c)
	}
	delete(u, inst)
	return len(slots)
}
