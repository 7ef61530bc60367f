// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"math"

	"github.com/mewmew/float/binary16"
)

// EvalFloat evaluates op on two floating-point constants of kind k. Operands
// are given as float64 values that are exactly representable in k, and so is
// the result.
func (Numeric) EvalFloat(op Opcode, f Flags, k FloatKind, x, y float64) (float64, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, ErrNaN
	}
	if f.NoInfs && (math.IsInf(x, 0) || math.IsInf(y, 0)) {
		return 0, ErrPoison
	}

	var (
		r   float64
		err error
	)
	switch k {
	case Double:
		r, err = evalFloat64(op, x, y)
	case Single:
		var r32 float32
		r32, err = evalFloat32(op, float32(x), float32(y))
		r = float64(r32)
	case Half:
		// binary32 has more than twice the precision of binary16, so rounding
		// the binary32 result again does not introduce double-rounding errors
		var r32 float32
		r32, err = evalFloat32(op, float32(x), float32(y))
		if err == nil {
			h, _ := binary16.NewFromFloat64(float64(r32))
			r, _ = h.Float64()
		}
	default:
		return 0, ErrUnsupported
	}
	if err != nil {
		return 0, err
	}

	if math.IsNaN(r) {
		if f.NoNaNs {
			return 0, ErrPoison
		}
		return 0, ErrNaN
	}
	if f.NoInfs && math.IsInf(r, 0) {
		return 0, ErrPoison
	}
	return r, nil
}

func evalFloat64(op Opcode, x, y float64) (float64, error) {
	switch op {
	case FAdd:
		return x + y, nil
	case FSub:
		return x - y, nil
	case FMul:
		return x * y, nil
	case FDiv:
		return x / y, nil
	case FRem:
		return math.Mod(x, y), nil
	default:
		return 0, ErrUnsupported
	}
}

func evalFloat32(op Opcode, x, y float32) (float32, error) {
	switch op {
	case FAdd:
		return x + y, nil
	case FSub:
		return x - y, nil
	case FMul:
		return x * y, nil
	case FDiv:
		return x / y, nil
	case FRem:
		// fmod is exact, so the float64 result is representable in float32
		return float32(math.Mod(float64(x), float64(y))), nil
	default:
		return 0, ErrUnsupported
	}
}
