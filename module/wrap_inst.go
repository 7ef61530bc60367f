// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/value"

	"cfold/core"
)

// BinaryOp is a binary arithmetic instruction decomposed into its opcode,
// flags and operands.
type BinaryOp struct {
	Inst   ir.Instruction
	Opcode core.Opcode
	Flags  core.Flags
	X, Y   value.Value
}

// AsBinaryOp decomposes inst if it is one of the binary arithmetic
// instructions. Comparisons, casts, memory operations, calls and unary
// operations are not binary ops.
func AsBinaryOp(inst ir.Instruction) (BinaryOp, bool) {
	op := BinaryOp{Inst: inst}
	switch in := inst.(type) {
	case *ir.InstAdd:
		op.Opcode, op.X, op.Y, op.Flags = core.Add, in.X, in.Y, overflowFlags(in.OverflowFlags)
	case *ir.InstSub:
		op.Opcode, op.X, op.Y, op.Flags = core.Sub, in.X, in.Y, overflowFlags(in.OverflowFlags)
	case *ir.InstMul:
		op.Opcode, op.X, op.Y, op.Flags = core.Mul, in.X, in.Y, overflowFlags(in.OverflowFlags)
	case *ir.InstShl:
		op.Opcode, op.X, op.Y, op.Flags = core.Shl, in.X, in.Y, overflowFlags(in.OverflowFlags)
	case *ir.InstUDiv:
		op.Opcode, op.X, op.Y, op.Flags = core.UDiv, in.X, in.Y, core.Flags{Exact: in.Exact}
	case *ir.InstSDiv:
		op.Opcode, op.X, op.Y, op.Flags = core.SDiv, in.X, in.Y, core.Flags{Exact: in.Exact}
	case *ir.InstLShr:
		op.Opcode, op.X, op.Y, op.Flags = core.LShr, in.X, in.Y, core.Flags{Exact: in.Exact}
	case *ir.InstAShr:
		op.Opcode, op.X, op.Y, op.Flags = core.AShr, in.X, in.Y, core.Flags{Exact: in.Exact}
	case *ir.InstURem:
		op.Opcode, op.X, op.Y = core.URem, in.X, in.Y
	case *ir.InstSRem:
		op.Opcode, op.X, op.Y = core.SRem, in.X, in.Y
	case *ir.InstAnd:
		op.Opcode, op.X, op.Y = core.And, in.X, in.Y
	case *ir.InstOr:
		op.Opcode, op.X, op.Y = core.Or, in.X, in.Y
	case *ir.InstXor:
		op.Opcode, op.X, op.Y = core.Xor, in.X, in.Y
	case *ir.InstFAdd:
		op.Opcode, op.X, op.Y, op.Flags = core.FAdd, in.X, in.Y, fastMathFlags(in.FastMathFlags)
	case *ir.InstFSub:
		op.Opcode, op.X, op.Y, op.Flags = core.FSub, in.X, in.Y, fastMathFlags(in.FastMathFlags)
	case *ir.InstFMul:
		op.Opcode, op.X, op.Y, op.Flags = core.FMul, in.X, in.Y, fastMathFlags(in.FastMathFlags)
	case *ir.InstFDiv:
		op.Opcode, op.X, op.Y, op.Flags = core.FDiv, in.X, in.Y, fastMathFlags(in.FastMathFlags)
	case *ir.InstFRem:
		op.Opcode, op.X, op.Y, op.Flags = core.FRem, in.X, in.Y, fastMathFlags(in.FastMathFlags)
	default:
		return BinaryOp{}, false
	}
	return op, true
}

func overflowFlags(flags []enum.OverflowFlag) core.Flags {
	var f core.Flags
	for _, flag := range flags {
		switch flag {
		case enum.OverflowFlagNSW:
			f.NSW = true
		case enum.OverflowFlagNUW:
			f.NUW = true
		}
	}
	return f
}

func fastMathFlags(flags []enum.FastMathFlag) core.Flags {
	var f core.Flags
	for _, flag := range flags {
		switch flag {
		case enum.FastMathFlagNNaN:
			f.NoNaNs = true
		case enum.FastMathFlagNInf:
			f.NoInfs = true
		case enum.FastMathFlagFast:
			f.NoNaNs, f.NoInfs = true, true
		}
	}
	return f
}
