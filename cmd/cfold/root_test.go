// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfold/checker"
	"cfold/logger"
)

const chainModule = `define i32 @main() {
entry:
  %a = add i32 2, 3
  %b = mul i32 %a, 4
  ret i32 %b
}
`

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runCfold(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	logger.SetOutput(&stderr)
	logger.SetLevel(logger.ERROR)
	defer logger.SetOutput(os.Stderr)

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	code := execute(cmd)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, dir, fn, content string) string {
	t.Helper()
	path := filepath.Join(dir, fn)
	require.NoError(t, os.WriteFile(path, []byte(content), fileMode))
	return path
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"-"},
		{"-", "-", "-"},
		{"--no-such-flag", "-", "-"},
	} {
		r := runCfold(t, chainModule, args...)
		assert.Equal(t, 1, r.code, args)
		assert.Equal(t, "Invalid command line!\n", r.stderr, args)
		assert.Empty(t, r.stdout, args)
	}
}

func TestStdinToStdout(t *testing.T) {
	r := runCfold(t, chainModule, "-", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "ret i32 20")
	assert.NotContains(t, r.stdout, "add")
	assert.Empty(t, r.stderr)
}

func TestFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.ll", chainModule)
	out := filepath.Join(dir, "out.ll")

	r := runCfold(t, "", in, out)
	require.Equal(t, 0, r.code, r.stderr)
	assert.Empty(t, r.stdout)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ret i32 20")

	// the input is left untouched
	content, err = os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, chainModule, string(content))
}

func TestInPlace(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "m.ll", chainModule)
	r := runCfold(t, "", fn, fn)
	require.Equal(t, 0, r.code, r.stderr)
	content, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ret i32 20")
}

func TestReadFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ll")
	r := runCfold(t, "", missing, "-")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "no such file or directory")
	assert.Empty(t, r.stdout)
}

func TestInvalidModule(t *testing.T) {
	r := runCfold(t, "this is not LLVM IR", "-", "-")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "Invalid module detected!\n", r.stderr)
	assert.Empty(t, r.stdout)

	r = runCfold(t, "this is not LLVM IR", "--debug", "-", "-")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "parseError: invalid module")

	out := filepath.Join(t.TempDir(), "out.ll")
	require.NoError(t, os.WriteFile(out, []byte("old"), 0o600))
	r = runCfold(t, "hello world", "-", out)
	assert.Equal(t, 1, r.code)
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
}

func TestWriteFailure(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "missing", "out.ll")
	r := runCfold(t, chainModule, "-", out)
	assert.Equal(t, 1, r.code)
	assert.True(t, strings.HasPrefix(r.stderr, "Failed to write module to file: "), r.stderr)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestStdoutFailure(t *testing.T) {
	var stderr bytes.Buffer
	logger.SetOutput(&stderr)
	defer logger.SetOutput(os.Stderr)

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(chainModule))
	cmd.SetOut(failingWriter{})
	cmd.SetArgs([]string{"-", "-"})
	assert.Equal(t, 1, execute(cmd))
	assert.Equal(t, "Failed to write module to stdout!\n", stderr.String())
}

func TestOpcodes(t *testing.T) {
	r := runCfold(t, chainModule, "--opcodes", "mul", "-", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "add i32 2, 3")

	r = runCfold(t, chainModule, "--opcodes", "icmp", "-", "-")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "Invalid command line!\n", r.stderr)

	t.Setenv("CFOLD_OPCODES", "float")
	r = runCfold(t, chainModule, "-", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "add i32 2, 3")
}

func TestVerify(t *testing.T) {
	r := runCfold(t, chainModule, "--verify", "reparse", "-", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "ret i32 20")

	r = runCfold(t, chainModule, "--verify", "genmc", "-", "-")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "Invalid command line!\n", r.stderr)

	mock := checker.GetMock()
	defer func() {
		mock.Result = checker.CheckResult{Status: checker.CheckOK}
		mock.Err = nil
	}()
	mock.Result = checker.CheckResult{Status: checker.CheckInvalid, Output: "bad"}
	out := filepath.Join(t.TempDir(), "out.ll")
	r = runCfold(t, chainModule, "--verify", "mock", "-", out)
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "Verification failed: Invalid\n", r.stderr)
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "output written despite failed verification")
}

func TestReportAndStats(t *testing.T) {
	r := runCfold(t, chainModule, "--report", "--stats", "-", "-")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stderr, "=> i32 5")
	assert.Contains(t, r.stderr, "=> i32 20")
	assert.Contains(t, r.stderr, "2 instruction(s) folded")
	assert.Contains(t, r.stderr, "Folded: 2")
	assert.NotContains(t, r.stdout, "FOLDS")
}

func TestQuiet(t *testing.T) {
	r := runCfold(t, "garbage", "-q", "-", "-")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stderr)
}

func TestVersion(t *testing.T) {
	r := runCfold(t, "", "--version")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "cfold latest\n", r.stdout)
}
