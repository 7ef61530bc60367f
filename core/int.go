// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import "math/big"

var bigOne = big.NewInt(1)

func modulus(bits uint64) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(bits))
}

// Unsigned returns the unsigned interpretation of the bits of v.
func (v Int) Unsigned() *big.Int {
	// Mod is euclidean, the result is never negative
	return new(big.Int).Mod(v.X, modulus(v.Bits))
}

// Signed returns the two's complement interpretation of the bits of v.
func (v Int) Signed() *big.Int {
	u := v.Unsigned()
	if u.Bit(int(v.Bits-1)) == 1 {
		u.Sub(u, modulus(v.Bits))
	}
	return u
}

// Equals reports whether v and w have the same width and bits.
func (v Int) Equals(w Int) bool {
	return v.Bits == w.Bits && v.Unsigned().Cmp(w.Unsigned()) == 0
}

func (v Int) String() string {
	if v.X == nil {
		return "<nil>"
	}
	return v.X.String()
}

// wrap truncates x to bits. The result holds the signed interpretation,
// except for i1 which LLVM prints as true/false.
func wrap(bits uint64, x *big.Int) Int {
	v := Int{Bits: bits, X: x}
	if bits == 1 {
		return Int{Bits: bits, X: v.Unsigned()}
	}
	return Int{Bits: bits, X: v.Signed()}
}

func fitsSigned(bits uint64, x *big.Int) bool {
	limit := new(big.Int).Lsh(bigOne, uint(bits-1))
	lowest := new(big.Int).Neg(limit)
	return x.Cmp(lowest) >= 0 && x.Cmp(limit) < 0
}

func fitsUnsigned(bits uint64, x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(modulus(bits)) < 0
}

func isMinSigned(bits uint64, x *big.Int) bool {
	lowest := new(big.Int).Neg(new(big.Int).Lsh(bigOne, uint(bits-1)))
	return x.Cmp(lowest) == 0
}

// shiftAmount returns the shift amount in y or ErrShiftRange when it is not
// smaller than the bit width.
func shiftAmount(bits uint64, y *big.Int) (uint, error) {
	if y.Cmp(new(big.Int).SetUint64(bits)) >= 0 {
		return 0, ErrShiftRange
	}
	return uint(y.Uint64()), nil
}

// EvalInt evaluates op on two integer constants of the same width.
func (Numeric) EvalInt(op Opcode, f Flags, x, y Int) (Int, error) {
	if x.X == nil || y.X == nil || x.Bits == 0 || x.Bits != y.Bits {
		return Int{}, ErrUnsupported
	}
	var (
		bits   = x.Bits
		ux, uy = x.Unsigned(), y.Unsigned()
		sx, sy = x.Signed(), y.Signed()
		r      = new(big.Int)
	)

	switch op {
	case Add:
		if f.NSW && !fitsSigned(bits, new(big.Int).Add(sx, sy)) {
			return Int{}, ErrPoison
		}
		r.Add(ux, uy)
		if f.NUW && !fitsUnsigned(bits, r) {
			return Int{}, ErrPoison
		}
	case Sub:
		if f.NSW && !fitsSigned(bits, new(big.Int).Sub(sx, sy)) {
			return Int{}, ErrPoison
		}
		r.Sub(ux, uy)
		if f.NUW && r.Sign() < 0 {
			return Int{}, ErrPoison
		}
	case Mul:
		if f.NSW && !fitsSigned(bits, new(big.Int).Mul(sx, sy)) {
			return Int{}, ErrPoison
		}
		r.Mul(ux, uy)
		if f.NUW && !fitsUnsigned(bits, r) {
			return Int{}, ErrPoison
		}
	case UDiv, URem:
		if uy.Sign() == 0 {
			return Int{}, ErrDivisionByZero
		}
		q, m := new(big.Int).QuoRem(ux, uy, new(big.Int))
		if op == URem {
			r = m
			break
		}
		if f.Exact && m.Sign() != 0 {
			return Int{}, ErrPoison
		}
		r = q
	case SDiv, SRem:
		if sy.Sign() == 0 {
			return Int{}, ErrDivisionByZero
		}
		if isMinSigned(bits, sx) && sy.Cmp(big.NewInt(-1)) == 0 {
			return Int{}, ErrOverflow
		}
		// QuoRem truncates towards zero, the remainder takes the sign of x
		q, m := new(big.Int).QuoRem(sx, sy, new(big.Int))
		if op == SRem {
			r = m
			break
		}
		if f.Exact && m.Sign() != 0 {
			return Int{}, ErrPoison
		}
		r = q
	case Shl:
		s, err := shiftAmount(bits, uy)
		if err != nil {
			return Int{}, err
		}
		r.Lsh(ux, s)
		res := wrap(bits, r)
		if f.NUW && new(big.Int).Rsh(res.Unsigned(), s).Cmp(ux) != 0 {
			return Int{}, ErrPoison
		}
		if f.NSW && new(big.Int).Rsh(res.Signed(), s).Cmp(sx) != 0 {
			return Int{}, ErrPoison
		}
	case LShr:
		s, err := shiftAmount(bits, uy)
		if err != nil {
			return Int{}, err
		}
		r.Rsh(ux, s)
		if f.Exact && new(big.Int).Lsh(r, s).Cmp(ux) != 0 {
			return Int{}, ErrPoison
		}
	case AShr:
		s, err := shiftAmount(bits, uy)
		if err != nil {
			return Int{}, err
		}
		// Rsh of a negative big.Int rounds towards negative infinity
		r.Rsh(sx, s)
		if f.Exact && new(big.Int).Lsh(r, s).Cmp(sx) != 0 {
			return Int{}, ErrPoison
		}
	case And:
		r.And(ux, uy)
	case Or:
		r.Or(ux, uy)
	case Xor:
		r.Xor(ux, uy)
	default:
		return Int{}, ErrUnsupported
	}
	return wrap(bits, r), nil
}
