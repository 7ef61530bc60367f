// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type text string

func (t text) String() string { return string(t) }

const validModule = `define i32 @main() {
entry:
  ret i32 5
}
`

func TestParseID(t *testing.T) {
	testCases := []struct {
		in  string
		out ID
	}{
		{"", NoneID},
		{"none", NoneID},
		{"reparse", ReparseID},
		{"llvm-as", LLVMAsID},
		{"mock", MockID},
		{"genmc", UnknownID},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.out, ParseID(tc.in), tc.in)
	}
}

func TestNew(t *testing.T) {
	c, err := New(NoneID)
	assert.NoError(t, err)
	assert.Nil(t, c)

	c, err = New(ReparseID)
	assert.NoError(t, err)
	assert.IsType(t, &Reparse{}, c)

	c, err = New(MockID)
	assert.NoError(t, err)
	assert.Same(t, GetMock(), c)

	_, err = New(UnknownID)
	assert.Error(t, err)
}

func TestCheckStatusString(t *testing.T) {
	assert.Equal(t, "OK", CheckOK.String())
	assert.Equal(t, "Invalid", CheckInvalid.String())
	assert.Equal(t, "CheckStatus(42)", CheckStatus(42).String())
	assert.Equal(t, "ReparseID", ReparseID.String())
}

func TestReparse(t *testing.T) {
	c := NewReparse()
	r, err := c.Check(context.Background(), text(validModule))
	require.NoError(t, err)
	assert.Equal(t, CheckOK, r.Status)

	r, err = c.Check(context.Background(), text("define i32 @main() {\n"))
	require.NoError(t, err)
	assert.Equal(t, CheckInvalid, r.Status)
	assert.NotEmpty(t, r.Output)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err = c.Check(ctx, text(validModule))
	require.NoError(t, err)
	assert.Equal(t, CheckTimeout, r.Status)
	assert.Contains(t, c.GetVersion(), "github.com/llir/llvm")
}

func TestLLVMAs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires POSIX true and false commands")
	}
	testCases := []struct {
		cmd    string
		status CheckStatus
		err    bool
	}{
		{cmd: "true", status: CheckOK},
		{cmd: "false", status: CheckInvalid},
		{cmd: "cfold-no-such-llvm-as", err: true},
	}
	for _, tc := range testCases {
		t.Run(tc.cmd, func(t *testing.T) {
			t.Setenv("LLVM_AS_CMD", tc.cmd)
			r, err := NewLLVMAs().Check(context.Background(), text(validModule))
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.status, r.Status)
		})
	}
}

func TestMock(t *testing.T) {
	m := &Mock{Result: CheckResult{Status: CheckInvalid}, Err: errors.New("boom")}
	r, err := m.Check(context.Background(), text(""))
	assert.EqualError(t, err, "boom")
	assert.Equal(t, CheckInvalid, r.Status)
	assert.Equal(t, 1, m.Calls)
	assert.Equal(t, "v0.0.0", m.GetVersion())
}
