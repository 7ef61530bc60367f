// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfold/core"
)

const chainModule = `define i32 @main() {
entry:
  %a = add i32 2, 3
  %b = mul i32 %a, 4
  ret i32 %b
}
`

func read(t *testing.T, src string, cfg Config) *Module {
	t.Helper()
	m, err := Read(strings.NewReader(src), "test.ll", cfg)
	require.NoError(t, err)
	return m
}

func TestRead(t *testing.T) {
	m := read(t, chainModule, DefaultConfig())
	assert.Equal(t, "test.ll", m.Name())
	assert.Equal(t, core.AllOpcodes, m.Config().Opcodes)
	require.Len(t, m.Funcs, 1)
	assert.Len(t, m.Funcs[0].Blocks[0].Insts, 2)
}

func TestReadInvalid(t *testing.T) {
	for _, src := range []string{
		"this is not a module",
		"garbage",
		"hello world",
		"define i32 @main() {\nentry:\n  ret i32 5\n}\n`",
		"define i32 @main() {\n",
		"define i32 @main() {\nentry:\n  ret i32 %undefined\n}\n",
	} {
		_, err := Read(strings.NewReader(src), "bad.ll", DefaultConfig())
		assert.ErrorIs(t, err, ErrInvalidModule, src)
		assert.NotContains(t, err.Error(), "\n")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device not ready") }

func TestReadFailure(t *testing.T) {
	_, err := Read(failingReader{}, "-", DefaultConfig())
	assert.EqualError(t, err, "device not ready")
	assert.NotErrorIs(t, err, ErrInvalidModule)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ll"), DefaultConfig())
	assert.True(t, os.IsNotExist(err))
}

func TestLoadWriteSave(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ll")
	require.NoError(t, os.WriteFile(in, []byte(chainModule), 0o600))

	m, err := Load(in, DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))
	assert.Contains(t, buf.String(), "@main")

	out := filepath.Join(dir, "out.ll")
	require.NoError(t, m.Save(out))
	saved, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(saved))

	// the saved module is a valid module again
	_, err = Load(out, DefaultConfig())
	assert.NoError(t, err)
}

func TestSaveUnwritable(t *testing.T) {
	m := read(t, chainModule, DefaultConfig())
	fn := filepath.Join(t.TempDir(), "missing", "out.ll")
	assert.Error(t, m.Save(fn))
}

type recorder struct {
	funcs  []string
	insts  []string
	detach func(inst ir.Instruction) bool
}

func (r *recorder) EnterFunc(f *ir.Func) {
	r.funcs = append(r.funcs, f.Name())
}

func (r *recorder) VisitInst(inst ir.Instruction, site Site) Action {
	r.insts = append(r.insts, site.Func.Name()+":"+inst.(interface{ Ident() string }).Ident())
	if r.detach != nil && r.detach(inst) {
		return Detach
	}
	return Keep
}

const visitModule = `declare i32 @ext(i32)

define i32 @one(i32 %x) {
entry:
  %a = add i32 %x, 1
  br label %next

next:
  %b = add i32 %a, 2
  ret i32 %b
}

define i32 @two(i32 %x) {
entry:
  %c = add i32 %x, 3
  ret i32 %c
}

define i32 @llvm_skip(i32 %x) {
entry:
  %d = add i32 %x, 4
  ret i32 %d
}
`

func TestVisitOrder(t *testing.T) {
	m := read(t, visitModule, DefaultConfig())
	r := &recorder{}
	require.NoError(t, m.Visit(r))
	assert.Equal(t, []string{"one", "two", "llvm_skip"}, r.funcs)
	assert.Equal(t, []string{"one:%a", "one:%b", "two:%c", "llvm_skip:%d"}, r.insts)
}

func TestVisitSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkipFuncPref = []string{"llvm_"}
	r := &recorder{}
	require.NoError(t, read(t, visitModule, cfg).Visit(r))
	assert.Equal(t, []string{"one", "two"}, r.funcs)

	cfg = DefaultConfig()
	cfg.Funcs = []string{"two", "ext"}
	r = &recorder{}
	require.NoError(t, read(t, visitModule, cfg).Visit(r))
	assert.Equal(t, []string{"two"}, r.funcs)
}

func TestVisitDetach(t *testing.T) {
	m := read(t, visitModule, DefaultConfig())
	r := &recorder{detach: func(inst ir.Instruction) bool {
		// detach the first instruction of each block, visiting continues with the next one
		ident := inst.(interface{ Ident() string }).Ident()
		return ident == "%a" || ident == "%b"
	}}
	require.NoError(t, m.Visit(r))
	assert.Equal(t, []string{"one:%a", "one:%b", "two:%c", "llvm_skip:%d"}, r.insts)
	assert.Empty(t, m.Funcs[1].Blocks[0].Insts)
	assert.Empty(t, m.Funcs[1].Blocks[1].Insts)
	assert.Len(t, m.Funcs[2].Blocks[0].Insts, 1)
}

const unnamedModule = `define i32 @f(i32 %x) {
  %1 = add i32 1, 2
  %2 = add i32 %x, %1
  ret i32 %2
}
`

func TestRenumber(t *testing.T) {
	m := read(t, unnamedModule, DefaultConfig())
	f := m.Funcs[0]
	first := f.Blocks[0].Insts[0]
	uses := NewUses(f)
	require.Equal(t, 1, uses.Count(first))

	r := &recorder{detach: func(inst ir.Instruction) bool {
		if inst == first {
			op, ok := AsBinaryOp(inst)
			require.True(t, ok)
			c, err := Eval(core.DefaultEvaluator(), op)
			require.NoError(t, err)
			uses.Redirect(inst, c)
			return true
		}
		return false
	}}
	require.NoError(t, m.Visit(r))

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))
	out := buf.String()
	assert.Contains(t, out, "%1 = add i32 %x, 3")
	assert.Contains(t, out, "ret i32 %1")
	assert.NotContains(t, out, "%2")

	_, err := asm.ParseString("renumbered.ll", out)
	assert.NoError(t, err)
}
