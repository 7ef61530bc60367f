// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"cfold/checker"
	"cfold/core"
	"cfold/logger"
	"cfold/module"
	"cfold/optimizer"
)

func foldRun(cmd *cobra.Command, args []string, f *rootFlags) (err error) {
	var (
		ts     = time.Now()
		input  = args[0]
		output = args[1]
	)

	opts, err := loadOptions(cmd, f)
	if err != nil {
		return verror(usageError, err)
	}

	csv := csvReport{input: input, output: output, opcodes: opts.Opcodes}
	defer func() {
		csv.duration = time.Since(ts)
		csv.err = err
		csv.save(opts.CSVLog)
	}()

	cfg, tool, err := setup(opts)
	if err != nil {
		return verror(usageError, err)
	}

	m, err := load(cmd.InOrStdin(), input, cfg)
	if err != nil {
		return err
	}

	stats := optimizer.NewStats()
	res, err := optimizer.NewDriver(optimizer.DriverConfig{}, stats).Run(m)
	if err != nil {
		return verror(internalError, err)
	}
	csv.folded, csv.skipped = len(res.Folds), len(res.Skips)
	logger.Infof("Folded %d instructions, skipped %d", len(res.Folds), len(res.Skips))
	for _, s := range res.Skips {
		logger.Infof("Skipped %s in %s: %v", s.Inst, s.Func, s.Reason)
	}

	if opts.Report {
		module.PrintReport(res.Folds)
	}
	if opts.Stats {
		logger.Println("== STATISTICS ================================")
		logger.Println()
		logger.Print(stats)
	}

	if tool != nil {
		if err := verify(tool, m, opts.VerifyTimeout); err != nil {
			return err
		}
	}

	return save(cmd.OutOrStdout(), output, m)
}

func setup(opts options) (module.Config, checker.Tool, error) {
	cfg := module.DefaultConfig()
	set, err := core.ParseOpcodeSet(opts.Opcodes)
	if err != nil {
		return cfg, nil, err
	}
	cfg.Opcodes = set
	cfg.Funcs = opts.Funcs
	cfg.SkipFuncPref = opts.SkipFunc

	id := checker.ParseID(opts.Verify)
	if id == checker.UnknownID {
		return cfg, nil, fmt.Errorf("unknown verifier: %s", opts.Verify)
	}
	tool, err := checker.New(id)
	return cfg, tool, err
}

func load(stdin io.Reader, fn string, cfg module.Config) (*module.Module, error) {
	var (
		m   *module.Module
		err error
	)
	if isStdio(fn) {
		m, err = module.Read(stdin, "<stdin>", cfg)
	} else {
		m, err = module.Load(fn, cfg)
	}
	switch {
	case errors.Is(err, module.ErrInvalidModule):
		return nil, verror(parseError, err)
	case err != nil:
		return nil, verror(readError, err)
	default:
		return m, nil
	}
}

func verify(tool checker.Tool, m *module.Module, timeout time.Duration) error {
	ctx := context.Background()
	if timeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger.Infof("Verify with %s", tool.GetVersion())
	r, err := tool.Check(ctx, m)
	if err != nil {
		return verror(internalError, err)
	}
	if r.Status != checker.CheckOK {
		logger.Debug(r.Output)
		return vfail(r.Status, errors.New(r.Output))
	}
	return nil
}

func save(stdout io.Writer, fn string, m *module.Module) error {
	if !isStdio(fn) {
		if err := m.Save(fn); err != nil {
			return verror(writeError, err)
		}
		return nil
	}
	w := bufio.NewWriter(stdout)
	if err := m.Write(w); err != nil {
		return verror(stdoutError, err)
	}
	if err := w.Flush(); err != nil {
		return verror(stdoutError, err)
	}
	return nil
}
