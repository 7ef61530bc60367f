// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/metadata"
)

type meta interface {
	MDAttachments() []*metadata.Attachment
}

// Fold records an instruction that was replaced by a constant.
type Fold struct {
	Func   string // function identifier, eg, @main
	Block  string // block identifier, eg, %entry
	Inst   string // the instruction as it was before folding
	Result string // the constant that replaced it
	Uses   int    // number of operand slots redirected
	Loc    Loc
}

// NewFold records the folding of inst at site into c. It must be called
// while inst is still attached to its block.
func NewFold(inst ir.Instruction, site Site, c constant.Constant, uses int) *Fold {
	fold := &Fold{
		Inst:   inst.LLString(),
		Result: c.String(),
		Uses:   uses,
	}
	if site.Func != nil {
		fold.Func = site.Func.Ident()
	}
	if site.Block != nil {
		fold.Block = site.Block.Ident()
	}
	if md, ok := inst.(meta); ok {
		fold.Loc = readLoc(md)
	}
	return fold
}

// Loc represents a code location extracted from the IR.
type Loc struct {
	Filename  string
	Directory string
	Line      int64
	Column    int64
}

// Valid returns whether the location points to a source line.
func (loc Loc) Valid() bool {
	return loc.Filename != "" && loc.Line != 0
}

func (loc *Loc) update(line, col int64, filename string, directory string) bool {
	if loc.Line == 0 {
		loc.Line = line
	}
	if loc.Column == 0 {
		loc.Column = col
	}
	if loc.Filename == "" {
		loc.Filename = filename
	}
	if loc.Directory == "" {
		loc.Directory = directory
	}
	return loc.Valid()
}

func fileName(f *metadata.DIFile) (string, string) {
	if f == nil {
		return "", ""
	}
	if f.Directory == "" {
		return f.Filename, ""
	}
	return f.Directory + "/" + f.Filename, f.Directory
}

// readLoc follows the !dbg attachment of md up its scopes until both a file
// and a line are known.
func readLoc(md meta) Loc {
	var (
		loc  Loc
		node interface{}
		done bool
	)
	for _, ma := range md.MDAttachments() {
		if ma.Name == "dbg" {
			node = ma.Node
			break
		}
	}
	for node != nil && !done {
		var (
			line      int64
			col       int64
			filename  string
			directory string
		)
		switch n := node.(type) {
		case *metadata.DILocation:
			line = n.Line
			col = n.Column
			node = n.Scope
		case *metadata.DILexicalBlock:
			filename, directory = fileName(n.File)
			line = n.Line
			col = n.Column
			node = n.Scope
		case *metadata.DISubprogram:
			filename, directory = fileName(n.File)
			line = n.Line
			node = n.Scope
		case *metadata.DIFile:
			filename, directory = fileName(n)
			node = nil
		default:
			node = nil
		}
		done = loc.update(line, col, filename, directory)
	}
	return loc
}
