// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"math/big"
)

// Reasons for the numeric model to refuse a fold. The instruction is then
// left untouched.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("signed division overflow")
	ErrShiftRange     = errors.New("shift amount out of range")
	ErrPoison         = errors.New("result is poison")
	ErrNaN            = errors.New("NaN operand or result")
	ErrUnsupported    = errors.New("unsupported operand type")
)

// Flags are the instruction attributes that change the result of an operation.
type Flags struct {
	NSW    bool // no signed wrap
	NUW    bool // no unsigned wrap
	Exact  bool // no remainder / no shifted-out bits
	NoNaNs bool // nnan fast-math flag
	NoInfs bool // ninf fast-math flag
}

// FloatKind identifies the IEEE 754 format of a floating-point operand.
type FloatKind int

const (
	// InvalidFloat is any format the numeric model cannot evaluate
	InvalidFloat FloatKind = iota
	// Half is IEEE 754 binary16
	Half
	// Single is IEEE 754 binary32
	Single
	// Double is IEEE 754 binary64
	Double
)

func (k FloatKind) String() string {
	switch k {
	case Half:
		return "half"
	case Single:
		return "float"
	case Double:
		return "double"
	default:
		return "invalid"
	}
}

// Int is an integer constant of a given bit width. X may hold either the
// signed or the unsigned interpretation of the bits.
type Int struct {
	Bits uint64
	X    *big.Int
}

// NewInt returns an integer constant of width bits.
func NewInt(bits uint64, x int64) Int {
	return Int{Bits: bits, X: big.NewInt(x)}
}

// Evaluator computes the constant result of an opcode on two constants.
// A non-nil error means the operation must not be folded.
type Evaluator interface {
	EvalInt(op Opcode, f Flags, x, y Int) (Int, error)
	EvalFloat(op Opcode, f Flags, k FloatKind, x, y float64) (float64, error)
}

// Numeric is the default Evaluator. It implements two's complement
// wrapping integers of any width and IEEE 754 half, single and double
// precision arithmetic.
type Numeric struct{}

// DefaultEvaluator returns the default numeric model.
func DefaultEvaluator() Evaluator {
	return Numeric{}
}
