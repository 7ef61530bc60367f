// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeNames(t *testing.T) {
	for _, op := range Opcodes() {
		t.Run(op.String(), func(t *testing.T) {
			assert.True(t, op.Valid())
			assert.Equal(t, op, ParseOpcode(op.String()))
		})
	}
	assert.Equal(t, InvalidOpcode, ParseOpcode("icmp"))
	assert.Equal(t, InvalidOpcode, ParseOpcode("invalid"))
	assert.False(t, InvalidOpcode.Valid())
	assert.Equal(t, "invalid", Opcode(99).String())
	assert.Len(t, Opcodes(), 18)
}

func TestOpcodeFloat(t *testing.T) {
	assert.True(t, FAdd.Float())
	assert.True(t, FRem.Float())
	assert.False(t, Add.Float())
	assert.False(t, Xor.Float())
}

func TestOpcodeSet(t *testing.T) {
	testCases := []struct {
		in  string
		out []Opcode
		err bool
	}{
		{in: "add", out: []Opcode{Add}},
		{in: "add,mul", out: []Opcode{Add, Mul}},
		{in: " MUL , add ", out: []Opcode{Add, Mul}},
		{in: "shift", out: []Opcode{Shl, LShr, AShr}},
		{in: "float,xor", out: []Opcode{FAdd, FSub, FMul, FDiv, FRem, Xor}},
		{in: "all", out: Opcodes()},
		{in: "", out: nil},
		{in: "add,icmp", err: true},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			s, err := ParseOpcodeSet(tc.in)
			if tc.err {
				assert.NotNil(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.out, s.Group())
		})
	}
}

func TestOpcodeSetString(t *testing.T) {
	assert.Equal(t, "all", AllOpcodes.String())
	assert.Equal(t, "add,fmul", NewOpcodeSet(FMul, Add).String())
	assert.Equal(t, "", NoOpcodes.String())
	assert.False(t, AllOpcodes.Has(InvalidOpcode))
	assert.False(t, NewOpcodeSet(InvalidOpcode).Has(InvalidOpcode))
	assert.True(t, AllOpcodes.Has(Xor))
}
