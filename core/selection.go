// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"
)

// OpcodeSet represents a selection of foldable opcodes.
type OpcodeSet uint32

const (
	// NoOpcodes selects no operation
	NoOpcodes OpcodeSet = 0
	// AllOpcodes selects every foldable operation
	AllOpcodes OpcodeSet = (1<<numOpcodes - 1) &^ 1
)

// Group names accepted by ParseOpcodeSet in addition to single mnemonics.
var groups = map[string][]Opcode{
	"all":   Opcodes(),
	"int":   {Add, Sub, Mul, UDiv, SDiv, URem, SRem, Shl, LShr, AShr, And, Or, Xor},
	"float": {FAdd, FSub, FMul, FDiv, FRem},
	"shift": {Shl, LShr, AShr},
	"bit":   {And, Or, Xor},
}

// NewOpcodeSet returns a set containing ops.
func NewOpcodeSet(ops ...Opcode) OpcodeSet {
	var s OpcodeSet
	for _, op := range ops {
		s = s.With(op)
	}
	return s
}

// With returns a copy of s that also contains op.
func (s OpcodeSet) With(op Opcode) OpcodeSet {
	if !op.Valid() {
		return s
	}
	return s | 1<<uint(op)
}

// Has reports whether op is selected.
func (s OpcodeSet) Has(op Opcode) bool {
	return op.Valid() && s&(1<<uint(op)) != 0
}

// Group extracts the selected opcodes in declaration order.
func (s OpcodeSet) Group() []Opcode {
	var ops []Opcode
	for _, op := range Opcodes() {
		if s.Has(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

// String is the comma-separated list of selected mnemonics.
func (s OpcodeSet) String() string {
	if s == AllOpcodes {
		return "all"
	}
	var names []string
	for _, op := range s.Group() {
		names = append(names, op.String())
	}
	return strings.Join(names, ",")
}

// ParseOpcodeSet parses a comma-separated list of mnemonics and group names
// (all, int, float, shift, bit).
func ParseOpcodeSet(str string) (OpcodeSet, error) {
	return ParseOpcodeList(strings.Split(str, ","))
}

// ParseOpcodeList works as ParseOpcodeSet on an already split list.
func ParseOpcodeList(names []string) (OpcodeSet, error) {
	var s OpcodeSet
	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		if g, ok := groups[name]; ok {
			s |= NewOpcodeSet(g...)
			continue
		}
		op := ParseOpcode(name)
		if op == InvalidOpcode {
			return NoOpcodes, fmt.Errorf("unknown opcode %q", name)
		}
		s = s.With(op)
	}
	return s, nil
}
