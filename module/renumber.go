// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import "github.com/llir/llvm/ir"

type localID interface {
	IsUnnamed() bool
	SetID(id int64)
}

func resetID(v interface{}) {
	if l, ok := v.(localID); ok && l.IsUnnamed() {
		l.SetID(0)
	}
}

// renumber assigns sequential IDs to the unnamed locals of f. Detaching
// instructions leaves gaps in the %0, %1, ... sequence, which the assembly
// format rejects.
func renumber(f *ir.Func) error {
	for _, p := range f.Params {
		resetID(p)
	}
	for _, block := range f.Blocks {
		resetID(block)
		for _, inst := range block.Insts {
			resetID(inst)
		}
		if block.Term != nil {
			resetID(block.Term)
		}
	}
	return f.AssignIDs()
}
