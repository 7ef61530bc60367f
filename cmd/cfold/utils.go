// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const stdio = "-"

// isArgs2 ensures there are exactly an input and an output argument
func isArgs2(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return verror(usageError, fmt.Errorf("expected 2 arguments, got %d", len(args)))
	}
	return nil
}

func isStdio(fn string) bool {
	return fn == stdio
}
