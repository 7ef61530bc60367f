// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/llir/ll"
	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"

	"cfold/logger"
	"cfold/tools"
)

// ErrInvalidModule is returned when the input cannot be decoded as a module.
var ErrInvalidModule = errors.New("invalid module")

// Module is a LLVM IR module loaded in memory.
type Module struct {
	*ir.Module
	name string
	cfg  Config
}

// Load reads and parses the LLVM IR module in file fn.
func Load(fn string, cfg Config) (*Module, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	return Read(f, fn, cfg)
}

// Read parses a LLVM IR module from r. The name is only used in messages.
func Read(r io.Reader, name string, cfg Config) (*Module, error) {
	logger.Infof("Read '%s'", name)
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	logger.Infof("Parse '%s' (%d bytes)", name, len(buf))
	mod, err := parse(name, buf)
	if err != nil {
		return nil, err
	}
	return &Module{Module: mod, name: name, cfg: cfg}, nil
}

func parse(name string, buf []byte) (mod *ir.Module, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			mod, err = nil, fmt.Errorf("%w: %v", ErrInvalidModule, r)
		}
	}()
	if err := lex(buf); err != nil {
		return nil, err
	}
	mod, err = asm.ParseBytes(name, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModule, firstLine(err.Error()))
	}
	return mod, nil
}

// lex rejects input with characters that form no token. The parser skips
// such characters and would decode arbitrary text into an empty module.
func lex(buf []byte) error {
	var l ll.Lexer
	l.Init(string(buf))
	for tok := l.Next(); tok != ll.EOI; tok = l.Next() {
		if tok == ll.INVALID_TOKEN {
			return fmt.Errorf("%w: invalid token %q at line %d", ErrInvalidModule, l.Text(), l.Line())
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Name returns the name the module was loaded with.
func (m *Module) Name() string {
	return m.name
}

// Config returns the configuration the module was loaded with.
func (m *Module) Config() Config {
	return m.cfg
}

// Write prints the module in LLVM IR assembly to w.
func (m *Module) Write(w io.Writer) error {
	_, err := io.WriteString(w, m.Module.String())
	return err
}

// Save writes the module to file fn. The file is only replaced once the
// whole module has been written.
func (m *Module) Save(fn string) error {
	return tools.DumpAtomic(m.Module, fn)
}
