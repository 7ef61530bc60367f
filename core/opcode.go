// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package core contains the most basic objects of cfold.
// These are the foldable opcodes, opcode selections and the numeric model
// that evaluates an opcode on two constants.
package core

// Opcode represents one of the binary arithmetic operations that can be folded.
type Opcode int

const (
	// InvalidOpcode is any operation outside the foldable set
	InvalidOpcode Opcode = iota
	// Add is integer addition
	Add
	// FAdd is floating-point addition
	FAdd
	// Sub is integer subtraction
	Sub
	// FSub is floating-point subtraction
	FSub
	// Mul is integer multiplication
	Mul
	// FMul is floating-point multiplication
	FMul
	// UDiv is unsigned integer division
	UDiv
	// SDiv is signed integer division
	SDiv
	// FDiv is floating-point division
	FDiv
	// URem is unsigned integer remainder
	URem
	// SRem is signed integer remainder
	SRem
	// FRem is floating-point remainder
	FRem
	// Shl is logical shift left
	Shl
	// LShr is logical shift right
	LShr
	// AShr is arithmetic shift right
	AShr
	// And is bitwise and
	And
	// Or is bitwise or
	Or
	// Xor is bitwise xor
	Xor

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	InvalidOpcode: "invalid",
	Add:           "add",
	FAdd:          "fadd",
	Sub:           "sub",
	FSub:          "fsub",
	Mul:           "mul",
	FMul:          "fmul",
	UDiv:          "udiv",
	SDiv:          "sdiv",
	FDiv:          "fdiv",
	URem:          "urem",
	SRem:          "srem",
	FRem:          "frem",
	Shl:           "shl",
	LShr:          "lshr",
	AShr:          "ashr",
	And:           "and",
	Or:            "or",
	Xor:           "xor",
}

// String returns the LLVM mnemonic of the opcode.
func (op Opcode) String() string {
	if op < 0 || op >= numOpcodes {
		return opcodeNames[InvalidOpcode]
	}
	return opcodeNames[op]
}

// ParseOpcode returns the opcode with the given LLVM mnemonic or InvalidOpcode.
func ParseOpcode(s string) Opcode {
	for op := Add; op < numOpcodes; op++ {
		if opcodeNames[op] == s {
			return op
		}
	}
	return InvalidOpcode
}

// Valid reports whether op belongs to the foldable set.
func (op Opcode) Valid() bool {
	return op > InvalidOpcode && op < numOpcodes
}

// Float reports whether op operates on floating-point values.
func (op Opcode) Float() bool {
	switch op {
	case FAdd, FSub, FMul, FDiv, FRem:
		return true
	default:
		return false
	}
}

// Opcodes returns all foldable opcodes in declaration order.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, numOpcodes-1)
	for op := Add; op < numOpcodes; op++ {
		ops = append(ops, op)
	}
	return ops
}
