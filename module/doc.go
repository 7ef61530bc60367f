// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package module provides a wrapper for LLVM-IR modules (loaded with github.com/llir). A module
// object can be visited instruction by instruction, have instructions detached and
// its values redirected, and be printed back to a stream or saved to a file.
package module
