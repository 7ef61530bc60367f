// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package checker

import (
	"context"
)

// Mock is a simple mock object for testing.
type Mock struct {
	Err    error
	Result CheckResult
	Calls  int
}

var mock = Mock{Result: CheckResult{Status: CheckOK}}

// GetMock return a Mock singleton.
func GetMock() *Mock {
	return &mock
}

// Check returns the desired check result and error
func (c *Mock) Check(_ context.Context, _ DumpableModule) (CheckResult, error) {
	c.Calls++
	return c.Result, c.Err
}

// GetVersion returns a fixed version string.
func (c *Mock) GetVersion() string {
	return "v0.0.0"
}
