// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"fmt"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"cfold/core"
)

// IsLiteral reports whether v is a literal integer, a literal
// floating-point value or a vector of those. Symbolic constants such as
// globals, constant expressions, undef, poison and zeroinitializer are not
// literals.
func IsLiteral(v value.Value) bool {
	switch c := v.(type) {
	case *constant.Int:
		return c.X != nil
	case *constant.Float:
		return c.X != nil || c.NaN
	case *constant.Vector:
		if len(c.Elems) == 0 {
			return false
		}
		for _, e := range c.Elems {
			if _, ok := e.(*constant.Vector); ok || !IsLiteral(e) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Constant returns whether both operands of op are literals.
func (op BinaryOp) Constant() bool {
	return IsLiteral(op.X) && IsLiteral(op.Y)
}

// Eval computes the constant result of op with ev. Vector operations are
// evaluated elementwise and fail if any element fails.
func Eval(ev core.Evaluator, op BinaryOp) (constant.Constant, error) {
	return eval(ev, op.Opcode, op.Flags, op.X, op.Y)
}

func eval(ev core.Evaluator, opc core.Opcode, f core.Flags, x, y value.Value) (constant.Constant, error) {
	switch x := x.(type) {
	case *constant.Int:
		y, ok := y.(*constant.Int)
		if !ok {
			return nil, core.ErrUnsupported
		}
		r, err := ev.EvalInt(opc, f,
			core.Int{Bits: x.Typ.BitSize, X: x.X},
			core.Int{Bits: y.Typ.BitSize, X: y.X})
		if err != nil {
			return nil, err
		}
		return &constant.Int{Typ: x.Typ, X: r.X}, nil
	case *constant.Float:
		y, ok := y.(*constant.Float)
		if !ok {
			return nil, core.ErrUnsupported
		}
		if x.NaN || y.NaN {
			return nil, core.ErrNaN
		}
		k := floatKind(x.Typ)
		if k != floatKind(y.Typ) {
			return nil, core.ErrUnsupported
		}
		fx, _ := x.X.Float64()
		fy, _ := y.X.Float64()
		r, err := ev.EvalFloat(opc, f, k, fx, fy)
		if err != nil {
			return nil, err
		}
		return constant.NewFloat(x.Typ, r), nil
	case *constant.Vector:
		y, ok := y.(*constant.Vector)
		if !ok || len(x.Elems) != len(y.Elems) {
			return nil, core.ErrUnsupported
		}
		elems := make([]constant.Constant, len(x.Elems))
		for i := range x.Elems {
			e, err := eval(ev, opc, f, x.Elems[i], y.Elems[i])
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = e
		}
		return &constant.Vector{Typ: x.Typ, Elems: elems}, nil
	default:
		return nil, core.ErrUnsupported
	}
}

func floatKind(t *types.FloatType) core.FloatKind {
	switch t.Kind {
	case types.FloatKindHalf:
		return core.Half
	case types.FloatKindFloat:
		return core.Single
	case types.FloatKindDouble:
		return core.Double
	default:
		return core.InvalidFloat
	}
}
